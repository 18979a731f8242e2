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

// Package stat records the outcome of a single provider API call and forwards it to
// whatever StatReporter chain the Context resolved.
package stat

import (
	"time"

	"github.com/polarismesh/polaris-go/pkg/log"
	"github.com/polarismesh/polaris-go/pkg/model"
	"github.com/polarismesh/polaris-go/pkg/plugin/statreporter"
)

// Recorder is a scoped, single-use timer: constructing one starts the clock, and
// Record closes it out. A Recorder that Record is never called on reports nothing;
// calling Record more than once on the same Recorder is a caller bug the second call
// silently ignores rather than double-reporting.
type Recorder struct {
	reporters []statreporter.StatReporter
	api       model.ApiOperation
	begin     time.Time
	recorded  bool
}

// NewRecorder starts timing a call to api, to be reported through reporters once
// Record is called.
func NewRecorder(reporters []statreporter.StatReporter, api model.ApiOperation) *Recorder {
	return &Recorder{
		reporters: reporters,
		api:       api,
		begin:     time.Now(),
	}
}

// Record closes out the call with retCode, computes the elapsed latency, and
// forwards the result to every reporter in the chain. A reporter that returns an
// error is logged but never stops the remaining reporters from seeing the result.
func (r *Recorder) Record(retCode model.ErrCode) {
	if r.recorded {
		return
	}
	r.recorded = true

	result := &model.APICallResult{
		APICallKey: model.APICallKey{APIName: r.api, RetCode: retCode},
	}
	delay := time.Since(r.begin)
	if retCode == model.ErrCodeSuccess {
		result.SetSuccess(delay)
	} else {
		result.SetFail(retCode, delay)
	}

	for _, reporter := range r.reporters {
		if err := reporter.ReportStat(model.SDKAPIStat, result); err != nil {
			if logger := log.GetBaseLogger(); logger != nil {
				logger.Errorf("stat reporter %s failed to report %v: %v", reporter.Name(), r.api, err)
			}
		}
	}
}
