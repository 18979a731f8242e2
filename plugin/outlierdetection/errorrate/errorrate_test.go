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
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/polarismesh/polaris-go/pkg/model"
	"github.com/polarismesh/polaris-go/pkg/plugin"
)

func newDetector(t *testing.T) *Detector {
	d := &Detector{}
	assert.NoError(t, d.Init(&plugin.InitContext{}))
	return d
}

func TestDetector_TooFewSamplesSkipsJudgement(t *testing.T) {
	d := newDetector(t)
	inst := &model.DefaultInstance{ID: "i1"}
	for i := 0; i < minSamples-1; i++ {
		d.Record("i1", 10*time.Millisecond)
	}

	result, err := d.DetectInstance(inst)
	assert.NoError(t, err)
	assert.Nil(t, result, "an instance with too little history must not be judged")
}

func TestDetector_StableLatencyStaysHealthy(t *testing.T) {
	d := newDetector(t)
	inst := &model.DefaultInstance{ID: "i1"}
	for i := 0; i < windowSize; i++ {
		d.Record("i1", 10*time.Millisecond)
	}

	result, err := d.DetectInstance(inst)
	assert.NoError(t, err)
	assert.Equal(t, model.RetSuccess, result.GetRetStatus())
}

func TestDetector_LatencySpikeIsFlaggedAnOutlier(t *testing.T) {
	d := newDetector(t)
	inst := &model.DefaultInstance{ID: "i1"}
	for i := 0; i < windowSize-1; i++ {
		d.Record("i1", 10*time.Millisecond)
	}
	d.Record("i1", 500*time.Millisecond)

	result, err := d.DetectInstance(inst)
	assert.NoError(t, err)
	assert.Equal(t, model.RetFail, result.GetRetStatus())
	assert.Equal(t, DetectType, result.GetDetectType())
}

func TestDetector_WindowIsTrimmedToSize(t *testing.T) {
	d := newDetector(t)
	for i := 0; i < windowSize+10; i++ {
		d.Record("i1", time.Duration(i)*time.Millisecond)
	}
	d.mu.Lock()
	n := len(d.samples["i1"])
	d.mu.Unlock()
	assert.Equal(t, windowSize, n)
}

func TestDetector_InstancesAreTrackedIndependently(t *testing.T) {
	d := newDetector(t)
	for i := 0; i < windowSize; i++ {
		d.Record("stable", 10*time.Millisecond)
	}
	for i := 0; i < minSamples; i++ {
		d.Record("new", 10*time.Millisecond)
	}

	d.mu.Lock()
	stableLen, newLen := len(d.samples["stable"]), len(d.samples["new"])
	d.mu.Unlock()
	assert.Equal(t, windowSize, stableLen)
	assert.Equal(t, minSamples, newLen)
}
