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

package errorrate

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

func newBreaker(t *testing.T) *Breaker {
	b := &Breaker{
		requestVolumeThreshold: DefaultRequestVolumeThreshold,
		errorRatePercent:       DefaultErrorRatePercent,
		statTimeWindow:         DefaultMetricStatTimeWindow,
	}
	assert.NoError(t, b.Init(&plugin.InitContext{}))
	return b
}

func stat(t *testing.T, b *Breaker, id string, status model.RetStatus, n int) {
	inst := &model.DefaultInstance{ID: id}
	for i := 0; i < n; i++ {
		_, err := b.Stat(&fakeGauge{instance: inst, status: status})
		assert.NoError(t, err)
	}
}

func TestBreaker_BelowVolumeThresholdNeverOpens(t *testing.T) {
	b := newBreaker(t)
	stat(t, b, "i1", model.RetFail, DefaultRequestVolumeThreshold-1)

	result, err := b.CircuitBreak([]model.Instance{&model.DefaultInstance{ID: "i1"}})
	assert.NoError(t, err)
	assert.True(t, result.IsEmpty())
}

func TestBreaker_AboveRateThresholdOpens(t *testing.T) {
	b := newBreaker(t)
	stat(t, b, "i1", model.RetFail, 6)
	stat(t, b, "i1", model.RetSuccess, 4)

	result, err := b.CircuitBreak([]model.Instance{&model.DefaultInstance{ID: "i1"}})
	assert.NoError(t, err)
	assert.True(t, result.InstancesToOpen.Contains("i1"))
}

func TestBreaker_BelowRateThresholdStaysClosed(t *testing.T) {
	b := newBreaker(t)
	stat(t, b, "i1", model.RetFail, 4)
	stat(t, b, "i1", model.RetSuccess, 6)

	result, err := b.CircuitBreak([]model.Instance{&model.DefaultInstance{ID: "i1"}})
	assert.NoError(t, err)
	assert.False(t, result.InstancesToOpen.Contains("i1"))
}

func TestBreaker_StaleInstanceWindowIsDropped(t *testing.T) {
	b := newBreaker(t)
	stat(t, b, "gone", model.RetFail, DefaultRequestVolumeThreshold)

	_, err := b.CircuitBreak([]model.Instance{})
	assert.NoError(t, err)
	assert.NotContains(t, b.byInst, "gone")
}

func TestBreaker_NilCalledInstanceIsIgnored(t *testing.T) {
	b := newBreaker(t)
	_, err := b.Stat(&fakeGauge{instance: nil, status: model.RetFail})
	assert.NoError(t, err)
	assert.Empty(t, b.byInst)
}
