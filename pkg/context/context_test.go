/**
 * Tencent is pleased to support the open source community by making polaris-go available.
 *
 * Copyright (C) 2019 THL A29 Limited, a Tencent company. All rights reserved.
 *
 * Licensed under the BSD 3-Clause License (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * https://opensource.org/licenses/BSD-3-Clause
 *
 * Unless required by applicable law or agreed to in writing, software distributed
 * under the License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR
 * CONDITIONS OF ANY KIND, either express or implied. See the License for the
 * specific language governing permissions and limitations under the License.
 */

package context

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/polarismesh/polaris-go/pkg/model"
	"github.com/polarismesh/polaris-go/pkg/plugin"
	"github.com/polarismesh/polaris-go/pkg/plugin/localregistry"
	"github.com/polarismesh/polaris-go/plugin/localregistry/inmemory"
)

func newTestLocalRegistry(t *testing.T, services ...localregistry.ServiceKey) localregistry.LocalRegistry {
	r := &inmemory.Registry{}
	assert.NoError(t, r.Init(&plugin.InitContext{}))
	for _, key := range services {
		r.SetInstances(key, model.NewDefaultServiceInstances(key.Service, key.Namespace, nil, nil))
	}
	return r
}

func TestContext_GetAllServiceContextIncrementsRef(t *testing.T) {
	key := localregistry.ServiceKey{Namespace: "default", Service: "echo"}
	c := &Context{
		Mode:          Private,
		LocalRegistry: newTestLocalRegistry(t, key),
		services:      make(map[localregistry.ServiceKey]*ServiceContext),
	}

	var out []*ServiceContext
	c.GetAllServiceContext(&out)
	assert.Len(t, out, 1)
	assert.Equal(t, key, out[0].Key)
	assert.Equal(t, int32(1), out[0].RefCount())

	var out2 []*ServiceContext
	c.GetAllServiceContext(&out2)
	assert.Same(t, out[0], out2[0])
	assert.Equal(t, int32(2), out[0].RefCount())

	out[0].DecrementRef()
	out2[0].DecrementRef()
	assert.Equal(t, int32(0), out[0].RefCount())
}

func TestContext_DestroyIsIdempotent(t *testing.T) {
	c := &Context{Mode: Private}
	assert.False(t, c.IsDestroyed())
	c.Destroy()
	assert.True(t, c.IsDestroyed())
	c.Destroy()
	assert.True(t, c.IsDestroyed())
}

func TestContext_ShareModeDestroyDoesNotTouchPlugins(t *testing.T) {
	destroyed := false
	c := &Context{
		Mode: Share,
		executors: []Executor{
			fakeExecutor{destroy: func() { destroyed = true }},
		},
	}
	c.Destroy()
	assert.False(t, destroyed, "Share mode must not tear down executors it doesn't own")
}

type fakeExecutor struct {
	destroy func()
}

func (f fakeExecutor) SetupWork() {}
func (f fakeExecutor) Destroy()   { f.destroy() }
