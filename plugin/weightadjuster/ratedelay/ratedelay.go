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

// Package ratedelay is the bundled WeightAdjuster plugin: it scales an instance's
// dynamic weight down as its recent error rate climbs, and restores it as the
// instance recovers.
package ratedelay

import (
	"sync"

	"github.com/polarismesh/polaris-go/pkg/model"
	"github.com/polarismesh/polaris-go/pkg/plugin"
	"github.com/polarismesh/polaris-go/pkg/plugin/common"
	"github.com/polarismesh/polaris-go/pkg/plugin/weightadjuster"
)

// PluginName is this plugin's registered name.
const PluginName = "rateDelayAdjuster"

// baseDynamicWeight is the weight reported for a fully healthy instance; callers
// interpret it on the same scale as static instance weight.
const baseDynamicWeight = 100

var _ weightadjuster.WeightAdjuster = (*Adjuster)(nil)

func init() {
	plugin.GlobalRegistry().Register(PluginName, common.TypeWeightAdjuster, func() plugin.Plugin {
		return &Adjuster{}
	})
}

type tally struct {
	total int
	fail  int
}

// Adjuster keeps a running per-instance total/fail count across calls fed in via
// RealTimeAdjustDynamicWeight, and turns it into a scaled weight on each timing
// cycle. It never shreds weight to zero: a consistently failing instance is better
// handled by the circuit breaker than by starving it of all traffic here.
type Adjuster struct {
	mu   sync.Mutex
	byID map[string]*tally
}

func (a *Adjuster) Type() common.Type { return common.TypeWeightAdjuster }
func (a *Adjuster) Name() string      { return PluginName }

func (a *Adjuster) Init(ctx *plugin.InitContext) error {
	a.byID = make(map[string]*tally)
	return nil
}

func (a *Adjuster) Destroy() error { return nil }

// RealTimeAdjustDynamicWeight folds one call's outcome into its instance's tally.
// It never requests an immediate out-of-cycle recompute.
func (a *Adjuster) RealTimeAdjustDynamicWeight(gauge model.InstanceGauge) (bool, error) {
	inst := gauge.GetCalledInstance()
	if inst == nil {
		return false, nil
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	t, ok := a.byID[inst.GetId()]
	if !ok {
		t = &tally{}
		a.byID[inst.GetId()] = t
	}
	t.total++
	if gauge.GetRetStatus() == model.RetFail {
		t.fail++
	}
	return false, nil
}

// TimingAdjustDynamicWeight recomputes every known instance's dynamic weight from
// its accumulated tally and resets the tally for the next cycle.
func (a *Adjuster) TimingAdjustDynamicWeight(service model.ServiceInstances) ([]*model.InstanceWeight, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	weights := make([]*model.InstanceWeight, 0, len(a.byID))
	for id, t := range a.byID {
		if t.total == 0 {
			continue
		}
		errorRate := float64(t.fail) / float64(t.total)
		scaled := uint32(float64(baseDynamicWeight) * (1 - errorRate))
		if scaled < 1 {
			scaled = 1
		}
		weights = append(weights, &model.InstanceWeight{InstanceID: id, DynamicWeight: scaled})
		t.total = 0
		t.fail = 0
	}
	return weights, nil
}
