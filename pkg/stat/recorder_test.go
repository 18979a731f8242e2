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

package stat

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/polarismesh/polaris-go/pkg/model"
	"github.com/polarismesh/polaris-go/pkg/plugin"
	"github.com/polarismesh/polaris-go/pkg/plugin/common"
	"github.com/polarismesh/polaris-go/pkg/plugin/statreporter"
)

type fakeReporter struct {
	name string
	err  error
	got  []model.InstanceGauge
}

func (f *fakeReporter) Type() common.Type                 { return common.TypeStatReporter }
func (f *fakeReporter) Name() string                      { return f.name }
func (f *fakeReporter) Init(*plugin.InitContext) error     { return nil }
func (f *fakeReporter) Destroy() error                     { return nil }
func (f *fakeReporter) ReportStat(_ model.MetricType, gauge model.InstanceGauge) error {
	f.got = append(f.got, gauge)
	return f.err
}

func TestRecorder_RecordSuccessReachesAllReporters(t *testing.T) {
	a := &fakeReporter{name: "a"}
	b := &fakeReporter{name: "b"}
	r := NewRecorder([]statreporter.StatReporter{a, b}, model.ApiRegister)
	r.Record(model.ErrCodeSuccess)

	assert.Len(t, a.got, 1)
	assert.Len(t, b.got, 1)
	result := a.got[0].(*model.APICallResult)
	assert.Equal(t, model.RetSuccess, result.GetRetStatus())
}

func TestRecorder_RecordFailureSetsRetCode(t *testing.T) {
	a := &fakeReporter{name: "a"}
	r := NewRecorder([]statreporter.StatReporter{a}, model.ApiHeartbeat)
	r.Record(model.ErrCodeNetworkError)

	result := a.got[0].(*model.APICallResult)
	assert.Equal(t, model.RetFail, result.GetRetStatus())
	assert.Equal(t, int32(model.ErrCodeNetworkError), result.GetRetCodeValue())
}

func TestRecorder_RecordIsSingleUse(t *testing.T) {
	a := &fakeReporter{name: "a"}
	r := NewRecorder([]statreporter.StatReporter{a}, model.ApiDeregister)
	r.Record(model.ErrCodeSuccess)
	r.Record(model.ErrCodeNetworkError)

	assert.Len(t, a.got, 1, "a second Record call must not report again")
}

func TestRecorder_ReporterErrorDoesNotBlockOthers(t *testing.T) {
	a := &fakeReporter{name: "a", err: errors.New("boom")}
	b := &fakeReporter{name: "b"}
	r := NewRecorder([]statreporter.StatReporter{a, b}, model.ApiRegister)
	r.Record(model.ErrCodeSuccess)

	assert.Len(t, a.got, 1)
	assert.Len(t, b.got, 1)
}
