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

// Package errorrate is the bundled OutlierDetector plugin: it keeps a rolling window
// of recent call latencies per instance and flags an instance as an outlier once its
// latest latency lies too many standard deviations above the mean of that window.
package errorrate

import (
	"sync"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/polarismesh/polaris-go/pkg/model"
	"github.com/polarismesh/polaris-go/pkg/plugin"
	"github.com/polarismesh/polaris-go/pkg/plugin/common"
	"github.com/polarismesh/polaris-go/pkg/plugin/outlierdetection"
)

// PluginName is this plugin's registered name.
const PluginName = "errorRate"

// DetectType identifies results this plugin produces in the detection chain.
const DetectType = "errorRate"

const (
	// windowSize is how many recent samples each instance keeps.
	windowSize = 20
	// minSamples is the floor before a stddev-based judgement is trusted.
	minSamples = 5
	// deviationThreshold is how many standard deviations above the instance's own
	// mean a sample has to be before it counts as a failure for this cycle.
	deviationThreshold = 2.0
)

var _ outlierdetection.OutlierDetector = (*Detector)(nil)

func init() {
	plugin.GlobalRegistry().Register(PluginName, common.TypeOutlierDetector, func() plugin.Plugin {
		return &Detector{}
	})
}

// Detector tracks each instance's recent call latencies (fed in via Record, normally
// wired from the same gauges the stat recorder consumes) and reports an instance as
// unhealthy when its latest sample is a statistical outlier against its own history.
type Detector struct {
	mu      sync.Mutex
	samples map[string][]float64
}

func (d *Detector) Type() common.Type { return common.TypeOutlierDetector }
func (d *Detector) Name() string      { return PluginName }

func (d *Detector) Init(ctx *plugin.InitContext) error {
	d.samples = make(map[string][]float64)
	return nil
}

func (d *Detector) Destroy() error { return nil }

// Record appends one observed latency for an instance, trimming to windowSize.
func (d *Detector) Record(instanceID string, latency time.Duration) {
	d.mu.Lock()
	defer d.mu.Unlock()
	series := append(d.samples[instanceID], latency.Seconds())
	if len(series) > windowSize {
		series = series[len(series)-windowSize:]
	}
	d.samples[instanceID] = series
}

// DetectInstance judges the instance's most recent latency against the mean/stddev
// of its own window. Instances with too little history are left alone rather than
// forced into a spurious open/close decision.
func (d *Detector) DetectInstance(instance model.Instance) (outlierdetection.DetectResult, error) {
	d.mu.Lock()
	series := append([]float64(nil), d.samples[instance.GetId()]...)
	d.mu.Unlock()

	if len(series) < minSamples {
		return nil, nil
	}

	mean := stat.Mean(series, nil)
	stddev := stat.StdDev(series, nil)
	latest := series[len(series)-1]

	retStatus := model.RetSuccess
	if stddev > 0 && latest-mean > deviationThreshold*stddev {
		retStatus = model.RetFail
	}

	return &outlierdetection.DetectResultImp{
		DetectType:     DetectType,
		RetStatus:      retStatus,
		DetectTime:     time.Now(),
		DetectInstance: instance,
	}, nil
}
