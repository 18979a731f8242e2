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

package outlier

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/polarismesh/polaris-go/pkg/config"
	polariscontext "github.com/polarismesh/polaris-go/pkg/context"
	"github.com/polarismesh/polaris-go/pkg/model"
	"github.com/polarismesh/polaris-go/pkg/plugin"
	"github.com/polarismesh/polaris-go/pkg/plugin/common"
	"github.com/polarismesh/polaris-go/pkg/plugin/localregistry"
	"github.com/polarismesh/polaris-go/pkg/plugin/outlierdetection"
	"github.com/polarismesh/polaris-go/plugin/localregistry/inmemory"
)

// fakeDetector always reports the same verdict for every instance it probes.
type fakeDetector struct {
	status model.RetStatus
	skip   bool
}

func (f *fakeDetector) Type() common.Type              { return common.TypeOutlierDetector }
func (f *fakeDetector) Name() string                   { return "fake" }
func (f *fakeDetector) Init(*plugin.InitContext) error { return nil }
func (f *fakeDetector) Destroy() error                 { return nil }

func (f *fakeDetector) DetectInstance(inst model.Instance) (outlierdetection.DetectResult, error) {
	if f.skip {
		return nil, nil
	}
	return &outlierdetection.DetectResultImp{
		DetectType:     "fake",
		RetStatus:      f.status,
		DetectTime:     time.Now(),
		DetectInstance: inst,
	}, nil
}

func newTestRegistry(t *testing.T, key localregistry.ServiceKey, instances ...model.Instance) localregistry.LocalRegistry {
	r := &inmemory.Registry{}
	assert.NoError(t, r.Init(&plugin.InitContext{}))
	r.SetInstances(key, model.NewDefaultServiceInstances("", "", nil, instances))
	return r
}

func TestExecutor_DetectOneAppliesFailStatus(t *testing.T) {
	key := localregistry.ServiceKey{Namespace: "ns", Service: "svc"}
	inst := &model.DefaultInstance{ID: "i1"}
	registry := newTestRegistry(t, key, inst)

	cfg := config.NewDefaultConfiguration()
	ctx := &polariscontext.Context{
		Config:          cfg,
		LocalRegistry:   registry,
		OutlierDetector: &outlierdetection.Chain{Detectors: []outlierdetection.OutlierDetector{&fakeDetector{status: model.RetFail}}},
	}
	e := New(ctx)
	e.detectOne(key)

	got, ok := registry.GetInstances(key)
	assert.True(t, ok)
	assert.Equal(t, model.RetFail, got.GetInstance("i1").(*model.DefaultInstance).GetDetectStatus())
}

func TestExecutor_DetectOneSkipsWhenChainIsUnopinionated(t *testing.T) {
	key := localregistry.ServiceKey{Namespace: "ns", Service: "svc"}
	inst := &model.DefaultInstance{ID: "i1"}
	registry := newTestRegistry(t, key, inst)

	cfg := config.NewDefaultConfiguration()
	ctx := &polariscontext.Context{
		Config:          cfg,
		LocalRegistry:   registry,
		OutlierDetector: &outlierdetection.Chain{Detectors: []outlierdetection.OutlierDetector{&fakeDetector{skip: true}}},
	}
	e := New(ctx)
	e.detectOne(key)

	got, _ := registry.GetInstances(key)
	assert.Equal(t, model.RetStatus(0), got.GetInstance("i1").(*model.DefaultInstance).GetDetectStatus())
}

func TestExecutor_DetectOneUnknownServiceIsANoop(t *testing.T) {
	registry := newTestRegistry(t, localregistry.ServiceKey{Namespace: "ns", Service: "known"})
	cfg := config.NewDefaultConfiguration()
	ctx := &polariscontext.Context{
		Config:          cfg,
		LocalRegistry:   registry,
		OutlierDetector: &outlierdetection.Chain{},
	}
	e := New(ctx)
	assert.NotPanics(t, func() {
		e.detectOne(localregistry.ServiceKey{Namespace: "ns", Service: "missing"})
	})
}
