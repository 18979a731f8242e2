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

// Package random is the bundled weighted-random LoadBalancer plugin.
package random

import (
	"github.com/polarismesh/polaris-go/pkg/algorithm/rand"
	"github.com/polarismesh/polaris-go/pkg/algorithm/search"
	"github.com/polarismesh/polaris-go/pkg/model"
	"github.com/polarismesh/polaris-go/pkg/plugin"
	"github.com/polarismesh/polaris-go/pkg/plugin/common"
	"github.com/polarismesh/polaris-go/pkg/plugin/loadbalancer"
)

// PluginName is this plugin's registered name.
const PluginName = "random"

var _ loadbalancer.LoadBalancer = (*Balancer)(nil)

func init() {
	plugin.GlobalRegistry().Register(PluginName, common.TypeLoadBalancer, func() plugin.Plugin {
		return &Balancer{}
	})
}

// Balancer picks an instance with probability proportional to its weight.
type Balancer struct {
	scalableRand *rand.ScalableRand
}

func (b *Balancer) Type() common.Type { return common.TypeLoadBalancer }
func (b *Balancer) Name() string      { return PluginName }
func (b *Balancer) LBType() plugin.LoadBalanceType { return loadbalancer.LBRandom }
func (b *Balancer) Destroy() error                 { return nil }

func (b *Balancer) Init(ctx *plugin.InitContext) error {
	b.scalableRand = rand.NewScalableRand()
	return nil
}

// cumulativeWeights is a search.SearchableSlice/rand.WeightedSlice over a prefix-sum
// of instance weights, letting SelectWeightedRandItem binary-search a random draw
// instead of the linear scan a naive weighted pick would need.
type cumulativeWeights []uint64

func (c cumulativeWeights) GetValue(idx int) uint64 { return c[idx] }
func (c cumulativeWeights) Count() int               { return len(c) }
func (c cumulativeWeights) TotalWeight() int {
	if len(c) == 0 {
		return 0
	}
	return int(c[len(c)-1])
}

var _ rand.WeightedSlice = cumulativeWeights(nil)
var _ search.SearchableSlice = cumulativeWeights(nil)

// ChooseInstance performs weighted-random selection over the healthy, non-half-open
// (unless IgnoreHalfOpen allows it) instances in the list.
func (b *Balancer) ChooseInstance(criteria *loadbalancer.Criteria, instances model.ServiceInstances) (model.Instance, error) {
	all := instances.GetInstances()
	if len(all) == 0 {
		return nil, model.NewSDKError(model.ErrCodeAPIInstanceNotFound, nil, "no instances to choose from")
	}
	eligible := make([]model.Instance, 0, len(all))
	cumulative := make(cumulativeWeights, 0, len(all))
	var running uint64
	for _, inst := range all {
		if criteria != nil && !criteria.IgnoreHalfOpen {
			if status := inst.GetCircuitBreakerStatus(); status != nil && status.GetStatus() == model.HalfOpen {
				continue
			}
		}
		w := inst.GetWeight()
		if w <= 0 {
			continue
		}
		eligible = append(eligible, inst)
		running += uint64(w)
		cumulative = append(cumulative, running)
	}
	if len(eligible) == 0 {
		eligible = all
		cumulative = cumulative[:0]
		running = 0
		for _, inst := range all {
			w := inst.GetWeight()
			if w <= 0 {
				w = 1
			}
			running += uint64(w)
			cumulative = append(cumulative, running)
		}
	}
	if b.scalableRand == nil {
		b.scalableRand = rand.NewScalableRand()
	}
	idx := rand.SelectWeightedRandItem(b.scalableRand, cumulative)
	return eligible[idx], nil
}
