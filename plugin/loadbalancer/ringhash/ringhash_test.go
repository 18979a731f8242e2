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

package ringhash

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/polarismesh/polaris-go/pkg/model"
	"github.com/polarismesh/polaris-go/pkg/plugin/loadbalancer"
)

func fiveInstances() model.ServiceInstances {
	list := []model.Instance{
		&model.DefaultInstance{ID: "i1", Port: 8001, Weight: 100},
		&model.DefaultInstance{ID: "i2", Port: 8002, Weight: 100},
		&model.DefaultInstance{ID: "i3", Port: 8003, Weight: 100},
		&model.DefaultInstance{ID: "i4", Port: 8004, Weight: 100},
		&model.DefaultInstance{ID: "i5", Port: 8005, Weight: 100},
	}
	return model.NewDefaultServiceInstances("svc", "ns", nil, list)
}

func TestBalancer_SameHashKeyLandsOnSameInstance(t *testing.T) {
	b := &Balancer{}
	instances := fiveInstances()
	criteria := &loadbalancer.Criteria{HashKey: []byte("user-42")}

	first, err := b.ChooseInstance(criteria, instances)
	assert.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := b.ChooseInstance(criteria, instances)
		assert.NoError(t, err)
		assert.Equal(t, first.GetId(), again.GetId())
	}
}

func TestBalancer_EmptyInstanceListErrors(t *testing.T) {
	b := &Balancer{}
	empty := model.NewDefaultServiceInstances("svc", "ns", nil, nil)
	_, err := b.ChooseInstance(&loadbalancer.Criteria{HashKey: []byte("x")}, empty)
	assert.Error(t, err)
}

func TestBalancer_ZeroWeightInstancesAreExcluded(t *testing.T) {
	b := &Balancer{}
	list := []model.Instance{&model.DefaultInstance{ID: "i1", Port: 8001, Weight: 0}}
	instances := model.NewDefaultServiceInstances("svc", "ns", nil, list)

	_, err := b.ChooseInstance(&loadbalancer.Criteria{HashKey: []byte("x")}, instances)
	assert.Error(t, err, "an all-zero-weight ring has no points to land on")
}

func TestBalancer_DistributesAcrossInstances(t *testing.T) {
	b := &Balancer{}
	instances := fiveInstances()

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		criteria := &loadbalancer.Criteria{HashValue: uint64(i) * 104729}
		inst, err := b.ChooseInstance(criteria, instances)
		assert.NoError(t, err)
		seen[inst.GetId()] = true
	}
	assert.Greater(t, len(seen), 1, "a spread of hash values should not all land on one instance")
}
