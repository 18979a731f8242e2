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

package random

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/polarismesh/polaris-go/pkg/model"
	"github.com/polarismesh/polaris-go/pkg/plugin"
	"github.com/polarismesh/polaris-go/pkg/plugin/loadbalancer"
)

func weightedInstances(weights ...int) model.ServiceInstances {
	list := make([]model.Instance, 0, len(weights))
	for i, w := range weights {
		list = append(list, &model.DefaultInstance{ID: string(rune('a' + i)), Weight: w})
	}
	return model.NewDefaultServiceInstances("svc", "ns", nil, list)
}

func TestBalancer_EmptyInstanceListErrors(t *testing.T) {
	b := &Balancer{}
	assert.NoError(t, b.Init(&plugin.InitContext{}))

	empty := weightedInstances()
	_, err := b.ChooseInstance(&loadbalancer.Criteria{}, empty)
	assert.Error(t, err)
}

func TestBalancer_SingleEligibleInstanceAlwaysWins(t *testing.T) {
	b := &Balancer{}
	assert.NoError(t, b.Init(&plugin.InitContext{}))

	instances := weightedInstances(100)
	for i := 0; i < 20; i++ {
		inst, err := b.ChooseInstance(&loadbalancer.Criteria{}, instances)
		assert.NoError(t, err)
		assert.Equal(t, "a", inst.GetId())
	}
}

func TestBalancer_AllZeroWeightFallsBackToUniformFloor(t *testing.T) {
	b := &Balancer{}
	assert.NoError(t, b.Init(&plugin.InitContext{}))

	instances := weightedInstances(0, 0)
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		inst, err := b.ChooseInstance(&loadbalancer.Criteria{}, instances)
		assert.NoError(t, err)
		seen[inst.GetId()] = true
	}
	assert.Len(t, seen, 2, "an all-zero-weight list must still distribute across every instance")
}

func TestBalancer_HeavierWeightIsChosenMoreOften(t *testing.T) {
	b := &Balancer{}
	assert.NoError(t, b.Init(&plugin.InitContext{}))

	instances := weightedInstances(1, 99)
	counts := map[string]int{}
	for i := 0; i < 500; i++ {
		inst, err := b.ChooseInstance(&loadbalancer.Criteria{}, instances)
		assert.NoError(t, err)
		counts[inst.GetId()]++
	}
	assert.Greater(t, counts["b"], counts["a"], "the weight-99 instance should be picked far more often than weight-1")
}

func TestBalancer_LazyInitWithoutInitStillWorks(t *testing.T) {
	b := &Balancer{}
	instances := weightedInstances(100)
	inst, err := b.ChooseInstance(&loadbalancer.Criteria{}, instances)
	assert.NoError(t, err)
	assert.Equal(t, "a", inst.GetId())
}
