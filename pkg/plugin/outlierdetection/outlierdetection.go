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

// Package outlierdetection is the OutlierDetector extension point: the chain the
// outlier-detection executor drives once per service, once per cadence.
package outlierdetection

import (
	"time"

	"github.com/polarismesh/polaris-go/pkg/model"
	"github.com/polarismesh/polaris-go/pkg/plugin"
)

// OutlierDetector probes a single instance and reports what it found. A plugin that
// decides this cycle doesn't need a probe (e.g. it isn't due yet) returns a nil
// DetectResult and a nil error rather than an error.
type OutlierDetector interface {
	plugin.Plugin
	DetectInstance(model.Instance) (DetectResult, error)
}

// DetectResult is what a single detector probe produced.
type DetectResult interface {
	GetDetectType() string
	GetRetStatus() model.RetStatus
	GetDetectTime() time.Time
	GetDetectInstance() model.Instance
}

// DetectResultImp is the plain DetectResult every bundled detector plugin returns.
type DetectResultImp struct {
	DetectType     string
	RetStatus      model.RetStatus
	DetectTime     time.Time
	DetectInstance model.Instance
}

func (r *DetectResultImp) GetDetectType() string            { return r.DetectType }
func (r *DetectResultImp) GetRetStatus() model.RetStatus     { return r.RetStatus }
func (r *DetectResultImp) GetDetectTime() time.Time          { return r.DetectTime }
func (r *DetectResultImp) GetDetectInstance() model.Instance { return r.DetectInstance }

// Chain runs every registered OutlierDetector plugin against an instance and collects
// whichever results weren't skipped, so the detection executor can drive several
// probing strategies side by side instead of one hardcoded detector.
type Chain struct {
	Detectors []OutlierDetector
}

// DetectInstance runs the full chain against a single instance.
func (c *Chain) DetectInstance(instance model.Instance) []DetectResult {
	results := make([]DetectResult, 0, len(c.Detectors))
	for _, d := range c.Detectors {
		result, err := d.DetectInstance(instance)
		if err != nil || result == nil {
			continue
		}
		results = append(results, result)
	}
	return results
}
