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

// Package errorrate is the bundled InstanceCircuitBreaker plugin: it keeps a sliding
// window of success/failure counts per instance and opens the circuit once both the
// request volume and the error rate cross their configured thresholds.
package errorrate

import (
	"sync"
	"time"

	"github.com/polarismesh/polaris-go/pkg/model"
	"github.com/polarismesh/polaris-go/pkg/plugin"
	"github.com/polarismesh/polaris-go/pkg/plugin/circuitbreaker"
	"github.com/polarismesh/polaris-go/pkg/plugin/common"
)

// PluginName is this plugin's registered name.
const PluginName = "errorRate"

// Default threshold values, mirroring the tunables a deployment would normally
// override via config.Configuration.
const (
	DefaultRequestVolumeThreshold = 10
	DefaultErrorRatePercent       = 50
	DefaultMetricStatTimeWindow   = 60 * time.Second
)

var _ circuitbreaker.InstanceCircuitBreaker = (*Breaker)(nil)

func init() {
	plugin.GlobalRegistry().Register(PluginName, common.TypeCircuitBreaker, func() plugin.Plugin {
		return &Breaker{
			requestVolumeThreshold: DefaultRequestVolumeThreshold,
			errorRatePercent:       DefaultErrorRatePercent,
			statTimeWindow:         DefaultMetricStatTimeWindow,
		}
	})
}

type window struct {
	total int
	fail  int
	start time.Time
}

// Breaker tallies calls against each instance in a window that resets every
// statTimeWindow, and flags instances to open once they clear the volume floor and
// the rate ceiling in the same window.
type Breaker struct {
	requestVolumeThreshold int
	errorRatePercent       int
	statTimeWindow         time.Duration

	mu      sync.Mutex
	byInst  map[string]*window
}

func (b *Breaker) Type() common.Type { return common.TypeCircuitBreaker }
func (b *Breaker) Name() string      { return PluginName }

func (b *Breaker) Init(ctx *plugin.InitContext) error {
	b.byInst = make(map[string]*window)
	return nil
}

func (b *Breaker) Destroy() error { return nil }

// Stat folds one call's outcome into its instance's current window. It never
// triggers an immediate breaker open on its own; CircuitBreak does that on its
// own cadence once a fuller picture of the instance is available.
func (b *Breaker) Stat(gauge model.InstanceGauge) (bool, error) {
	id := gauge.GetCalledInstance()
	if id == nil {
		return false, nil
	}
	instanceID := id.GetId()

	b.mu.Lock()
	defer b.mu.Unlock()
	w := b.currentWindow(instanceID)
	w.total++
	if gauge.GetRetStatus() == model.RetFail {
		w.fail++
	}
	return false, nil
}

func (b *Breaker) currentWindow(instanceID string) *window {
	now := time.Now()
	w, ok := b.byInst[instanceID]
	if !ok || now.Sub(w.start) >= b.statTimeWindow {
		w = &window{start: now}
		b.byInst[instanceID] = w
	}
	return w
}

// CircuitBreak evaluates every known instance's current window against the
// volume/rate thresholds and reports which ones should flip open.
func (b *Breaker) CircuitBreak(instances []model.Instance) (*circuitbreaker.Result, error) {
	result := circuitbreaker.NewCircuitBreakerResult(time.Now())

	live := make(map[string]bool, len(instances))
	for _, inst := range instances {
		live[inst.GetId()] = true
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for id, w := range b.byInst {
		if !live[id] {
			delete(b.byInst, id)
			continue
		}
		if w.total < b.requestVolumeThreshold {
			continue
		}
		errorRate := w.fail * 100 / w.total
		if errorRate >= b.errorRatePercent {
			result.InstancesToOpen.Add(id)
		}
	}
	return result, nil
}
