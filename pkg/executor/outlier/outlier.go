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

// Package outlier runs the outlier-detection chain against every known service on a
// fixed cadence, on its own reactor thread, independently of any caller thread.
package outlier

import (
	"time"

	polariscontext "github.com/polarismesh/polaris-go/pkg/context"
	"github.com/polarismesh/polaris-go/pkg/log"
	"github.com/polarismesh/polaris-go/pkg/plugin/localregistry"
	"github.com/polarismesh/polaris-go/pkg/plugin/outlierdetection"
	"github.com/polarismesh/polaris-go/pkg/reactor"
)

// defaultDetectPeriod is used when the configuration didn't set one.
const defaultDetectPeriod = time.Second

// Executor drives the outlier-detection chain: once per cadence, it asks the Context
// for every service it currently tracks, probes each instance the chain has an
// opinion about, and folds the results back into the local registry as a property
// patch. It owns a single reactor and never runs more than one detection pass at once.
type Executor struct {
	ctx      *polariscontext.Context
	period   time.Duration
	reactor  *reactor.Reactor
}

// New builds an Executor bound to ctx. It does not start work; call SetupWork once
// the Context is otherwise ready.
func New(ctx *polariscontext.Context) *Executor {
	period := ctx.Config.Provider.OutlierDetector.CheckPeriod
	if period <= 0 {
		period = defaultDetectPeriod
	}
	return &Executor{
		ctx:     ctx,
		period:  period,
		reactor: reactor.New("outlier-detect"),
	}
}

// SetupWork submits the first detection pass immediately; every subsequent pass
// re-arms itself from inside TimingDetect.
func (e *Executor) SetupWork() {
	e.reactor.SubmitTask(e.timingDetect)
}

// Destroy stops the executor's reactor. Any pass in flight is allowed to finish; no
// further pass runs after this returns.
func (e *Executor) Destroy() {
	e.reactor.Shutdown()
}

// timingDetect is one detection pass: fetch every ServiceContext, probe each one's
// instances, release the reference, then re-arm regardless of what happened this
// pass. A failure probing one service must never skip the rest, and must never skip
// the re-arm — an executor that stops rearming itself after one bad cycle silently
// stops protecting every service it covers.
func (e *Executor) timingDetect() {
	defer e.reactor.AddTimingTask(e.timingDetect, e.period)

	if e.ctx.OutlierDetector == nil {
		return
	}

	var services []*polariscontext.ServiceContext
	e.ctx.GetAllServiceContext(&services)
	for _, sc := range services {
		e.detectOne(sc.Key)
		sc.DecrementRef()
	}
}

func (e *Executor) detectOne(key localregistry.ServiceKey) {
	defer func() {
		if r := recover(); r != nil {
			log.GetBaseLogger().Errorf("outlier detection panicked for service %s: %v", key, r)
		}
	}()

	instances, ok := e.ctx.LocalRegistry.GetInstances(key)
	if !ok {
		return
	}

	req := &localregistry.ServiceUpdateRequest{ServiceKey: key}
	for _, inst := range instances.GetInstances() {
		results := e.ctx.OutlierDetector.DetectInstance(inst)
		if len(results) == 0 {
			continue
		}
		// The result with the latest DetectTime decides the recorded status;
		// the circuit breaker decides what to do about it on its own cycle.
		status := latestStatus(results)
		req.Properties = append(req.Properties, localregistry.InstanceProperties{
			ID:         inst.GetId(),
			Properties: map[string]interface{}{localregistry.PropertyDetectStatus: status},
		})
	}
	if len(req.Properties) == 0 {
		return
	}
	if err := e.ctx.LocalRegistry.UpdateInstances(req); err != nil {
		log.GetBaseLogger().Errorf("outlier detection failed to apply results for service %s: %v", key, err)
	}
}

func latestStatus(results []outlierdetection.DetectResult) interface{} {
	var latest outlierdetection.DetectResult
	for _, r := range results {
		if latest == nil || r.GetDetectTime().After(latest.GetDetectTime()) {
			latest = r
		}
	}
	return latest.GetRetStatus()
}
