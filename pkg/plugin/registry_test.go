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

package plugin

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/polarismesh/polaris-go/pkg/model"
	"github.com/polarismesh/polaris-go/pkg/plugin/common"
)

func newTestRegistry() *Registry {
	return &Registry{
		factories: make(map[pluginKey]Factory),
		lbByType:  make(map[LoadBalanceType]Factory),
	}
}

type fakePlugin struct {
	name string
	typ  common.Type
}

func (f *fakePlugin) Type() common.Type        { return f.typ }
func (f *fakePlugin) Name() string             { return f.name }
func (f *fakePlugin) Init(*InitContext) error  { return nil }
func (f *fakePlugin) Destroy() error           { return nil }

type fakeLoadBalancer struct {
	fakePlugin
	lbType LoadBalanceType
}

func (f *fakeLoadBalancer) LBType() LoadBalanceType { return f.lbType }

func TestRegistry_RegisterAndGetRoundTrips(t *testing.T) {
	r := newTestRegistry()
	factory := func() Plugin { return &fakePlugin{name: "a", typ: common.TypeLocalRegistry} }

	assert.NoError(t, r.Register("a", common.TypeLocalRegistry, factory))

	got, err := r.Get("a", common.TypeLocalRegistry)
	assert.NoError(t, err)
	assert.Equal(t, "a", got.Name())
}

func TestRegistry_ReRegisteringSameFactoryIsANoop(t *testing.T) {
	r := newTestRegistry()
	factory := func() Plugin { return &fakePlugin{name: "a", typ: common.TypeLocalRegistry} }

	assert.NoError(t, r.Register("a", common.TypeLocalRegistry, factory))
	assert.NoError(t, r.Register("a", common.TypeLocalRegistry, factory))
}

func TestRegistry_ConflictingFactoryErrors(t *testing.T) {
	r := newTestRegistry()
	first := func() Plugin { return &fakePlugin{name: "a", typ: common.TypeLocalRegistry} }
	second := func() Plugin { return &fakePlugin{name: "a", typ: common.TypeLocalRegistry} }

	assert.NoError(t, r.Register("a", common.TypeLocalRegistry, first))
	assert.Error(t, r.Register("a", common.TypeLocalRegistry, second))
}

func TestRegistry_UnknownPluginErrors(t *testing.T) {
	r := newTestRegistry()
	_, err := r.Get("missing", common.TypeLocalRegistry)
	assert.Error(t, err)
}

func TestRegistry_LoadBalancerIndexedByType(t *testing.T) {
	r := newTestRegistry()
	factory := func() Plugin {
		return &fakeLoadBalancer{fakePlugin: fakePlugin{name: "rh", typ: common.TypeLoadBalancer}, lbType: 2}
	}

	assert.NoError(t, r.Register("rh", common.TypeLoadBalancer, factory))

	got, err := r.GetLoadBalancer(2)
	assert.NoError(t, err)
	assert.Equal(t, "rh", got.Name())
}

func TestRegistry_LoadBalancerMustImplementLoadBalanceTyped(t *testing.T) {
	r := newTestRegistry()
	factory := func() Plugin { return &fakePlugin{name: "untyped", typ: common.TypeLoadBalancer} }

	assert.Error(t, r.Register("untyped", common.TypeLoadBalancer, factory))
	_, err := r.Get("untyped", common.TypeLoadBalancer)
	assert.Error(t, err, "a rejected registration must not leave a stale factory entry behind")
}

func TestRegistry_PreUpdateHandlersRunInRegistrationOrder(t *testing.T) {
	r := newTestRegistry()
	var order []string

	h1 := func(old, new []model.Instance) { order = append(order, "h1") }
	h2 := func(old, new []model.Instance) { order = append(order, "h2") }

	assert.NoError(t, r.RegisterInstancePreUpdateHandler(h1, false))
	assert.NoError(t, r.RegisterInstancePreUpdateHandler(h2, false))

	r.OnPreUpdateServiceData(nil, nil)
	assert.Equal(t, []string{"h1", "h2"}, order)
}

func TestRegistry_PreUpdateHandlerAtFrontRunsFirst(t *testing.T) {
	r := newTestRegistry()
	var order []string

	h1 := func(old, new []model.Instance) { order = append(order, "h1") }
	h2 := func(old, new []model.Instance) { order = append(order, "h2") }

	assert.NoError(t, r.RegisterInstancePreUpdateHandler(h1, false))
	assert.NoError(t, r.RegisterInstancePreUpdateHandler(h2, true))

	r.OnPreUpdateServiceData(nil, nil)
	assert.Equal(t, []string{"h2", "h1"}, order)
}

func TestRegistry_DeregisterPreUpdateHandlerStopsFutureCalls(t *testing.T) {
	r := newTestRegistry()
	calls := 0
	h := func(old, new []model.Instance) { calls++ }

	assert.NoError(t, r.RegisterInstancePreUpdateHandler(h, false))
	assert.NoError(t, r.DeregisterInstancePreUpdateHandler(h))

	r.OnPreUpdateServiceData(nil, nil)
	assert.Equal(t, 0, calls)
}

func TestRegistry_DeregisterUnknownHandlerErrors(t *testing.T) {
	r := newTestRegistry()
	h := func(old, new []model.Instance) {}
	assert.Error(t, r.DeregisterInstancePreUpdateHandler(h))
}
