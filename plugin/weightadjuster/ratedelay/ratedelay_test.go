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

package ratedelay

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/polarismesh/polaris-go/pkg/model"
	"github.com/polarismesh/polaris-go/pkg/plugin"
)

type fakeGauge struct {
	model.EmptyInstanceGauge
	instance model.Instance
	status   model.RetStatus
}

func (g *fakeGauge) GetCalledInstance() model.Instance { return g.instance }
func (g *fakeGauge) GetRetStatus() model.RetStatus      { return g.status }

func newAdjuster(t *testing.T) *Adjuster {
	a := &Adjuster{}
	assert.NoError(t, a.Init(&plugin.InitContext{}))
	return a
}

func feed(t *testing.T, a *Adjuster, id string, status model.RetStatus, n int) {
	inst := &model.DefaultInstance{ID: id}
	for i := 0; i < n; i++ {
		_, err := a.RealTimeAdjustDynamicWeight(&fakeGauge{instance: inst, status: status})
		assert.NoError(t, err)
	}
}

func TestAdjuster_HealthyInstanceKeepsBaseWeight(t *testing.T) {
	a := newAdjuster(t)
	feed(t, a, "i1", model.RetSuccess, 10)

	weights, err := a.TimingAdjustDynamicWeight(nil)
	assert.NoError(t, err)
	assert.Equal(t, uint32(baseDynamicWeight), weights[0].DynamicWeight)
}

func TestAdjuster_FailingInstanceIsScaledDown(t *testing.T) {
	a := newAdjuster(t)
	feed(t, a, "i1", model.RetFail, 8)
	feed(t, a, "i1", model.RetSuccess, 2)

	weights, err := a.TimingAdjustDynamicWeight(nil)
	assert.NoError(t, err)
	assert.Less(t, weights[0].DynamicWeight, uint32(baseDynamicWeight))
}

func TestAdjuster_NeverScalesWeightToZero(t *testing.T) {
	a := newAdjuster(t)
	feed(t, a, "i1", model.RetFail, 100)

	weights, err := a.TimingAdjustDynamicWeight(nil)
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, weights[0].DynamicWeight, uint32(1))
}

func TestAdjuster_TallyResetsAfterEachCycle(t *testing.T) {
	a := newAdjuster(t)
	feed(t, a, "i1", model.RetFail, 5)
	_, err := a.TimingAdjustDynamicWeight(nil)
	assert.NoError(t, err)

	weights, err := a.TimingAdjustDynamicWeight(nil)
	assert.NoError(t, err)
	assert.Empty(t, weights, "an instance with no calls since the last cycle should not be reported")
}

func TestAdjuster_NilCalledInstanceIsIgnored(t *testing.T) {
	a := newAdjuster(t)
	_, err := a.RealTimeAdjustDynamicWeight(&fakeGauge{instance: nil, status: model.RetFail})
	assert.NoError(t, err)
	assert.Empty(t, a.byID)
}
