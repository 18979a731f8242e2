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

package provider

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/agiledragon/gomonkey"
	"github.com/stretchr/testify/assert"

	"github.com/polarismesh/polaris-go/pkg/config"
	polariscontext "github.com/polarismesh/polaris-go/pkg/context"
	"github.com/polarismesh/polaris-go/pkg/model"
	"github.com/polarismesh/polaris-go/pkg/plugin"
	"github.com/polarismesh/polaris-go/pkg/plugin/common"
)

// fakeConnector replays a fixed sequence of heartbeat outcomes, one per call, holding
// on the last entry once the sequence is exhausted.
type fakeConnector struct {
	outcomes []error
	calls    int32
}

func (f *fakeConnector) Type() common.Type             { return common.TypeServerConnector }
func (f *fakeConnector) Name() string                  { return "fake" }
func (f *fakeConnector) Init(*plugin.InitContext) error { return nil }
func (f *fakeConnector) Destroy() error                 { return nil }

func (f *fakeConnector) RegisterInstance(*model.InstanceRegisterRequest, time.Duration) (*model.InstanceRegisterResponse, error) {
	return nil, nil
}
func (f *fakeConnector) DeregisterInstance(*model.InstanceDeRegisterRequest, time.Duration) error {
	return nil
}

func (f *fakeConnector) InstanceHeartbeat(*model.InstanceHeartbeatRequest, time.Duration) error {
	n := atomic.AddInt32(&f.calls, 1) - 1
	if int(n) >= len(f.outcomes) {
		return f.outcomes[len(f.outcomes)-1]
	}
	return f.outcomes[n]
}

func (f *fakeConnector) callCount() int { return int(atomic.LoadInt32(&f.calls)) }

func newTestContext(connector *fakeConnector) *polariscontext.Context {
	cfg := config.NewDefaultConfiguration()
	cfg.Global.API.Timeout = time.Second
	cfg.Global.API.MaxRetryTimes = 3
	cfg.Global.API.RetryInterval = time.Millisecond
	return &polariscontext.Context{Config: cfg, ServerConnector: connector}
}

func validHeartbeat() *model.InstanceHeartbeatRequest {
	return &model.InstanceHeartbeatRequest{InstanceID: "inst-1", ServiceToken: "token"}
}

func TestProvider_HeartbeatSucceedsFirstAttempt(t *testing.T) {
	conn := &fakeConnector{outcomes: []error{nil}}
	p := New(newTestContext(conn))

	err := p.Heartbeat(validHeartbeat())
	assert.NoError(t, err)
	assert.Equal(t, 1, conn.callCount())
}

func TestProvider_HeartbeatNonRetryableFailsFast(t *testing.T) {
	conn := &fakeConnector{outcomes: []error{
		model.NewSDKError(model.ErrCodeAPIInvalidArgument, nil, "bad request"),
	}}
	p := New(newTestContext(conn))

	err := p.Heartbeat(validHeartbeat())
	assert.Error(t, err)
	assert.Equal(t, 1, conn.callCount(), "a non-retryable error must not be retried")
}

func TestProvider_HeartbeatRetriesOnNetworkErrorThenSucceeds(t *testing.T) {
	conn := &fakeConnector{outcomes: []error{
		model.NewSDKError(model.ErrCodeNetworkError, nil, "transient"),
		nil,
	}}
	p := New(newTestContext(conn))

	err := p.Heartbeat(validHeartbeat())
	assert.NoError(t, err)
	assert.Equal(t, 2, conn.callCount())
}

func TestProvider_HeartbeatExhaustsRetryBudget(t *testing.T) {
	conn := &fakeConnector{outcomes: []error{
		model.NewSDKError(model.ErrCodeNetworkError, nil, "down"),
	}}
	p := New(newTestContext(conn))

	err := p.Heartbeat(validHeartbeat())
	assert.Error(t, err)
	assert.Equal(t, 3, conn.callCount(), "must stop after MaxRetryTimes attempts")
}

func TestProvider_HeartbeatBackoffSleepsTheConfiguredInterval(t *testing.T) {
	conn := &fakeConnector{outcomes: []error{
		model.NewSDKError(model.ErrCodeNetworkError, nil, "transient"),
		nil,
	}}
	p := New(newTestContext(conn))

	var slept []time.Duration
	patches := gomonkey.ApplyFunc(time.Sleep, func(d time.Duration) {
		slept = append(slept, d)
	})
	defer patches.Reset()

	err := p.Heartbeat(validHeartbeat())
	assert.NoError(t, err)
	assert.Equal(t, []time.Duration{time.Millisecond}, slept,
		"the backoff between the failed and the successful attempt must match RetryInterval")
}

func TestProvider_HeartbeatValidationShortCircuitsBeforeConnector(t *testing.T) {
	conn := &fakeConnector{outcomes: []error{nil}}
	p := New(newTestContext(conn))

	err := p.Heartbeat(&model.InstanceHeartbeatRequest{})
	assert.Error(t, err)
	assert.Equal(t, 0, conn.callCount(), "an invalid request must never reach the connector")
}
