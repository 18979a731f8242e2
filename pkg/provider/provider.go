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

// Package provider drives the register/deregister/heartbeat pipeline: fail-fast
// request validation, then a synchronous, budget-bounded retry loop over the
// resolved ServerConnector, with every terminal outcome recorded through stat.
package provider

import (
	"time"

	polariscontext "github.com/polarismesh/polaris-go/pkg/context"
	"github.com/polarismesh/polaris-go/pkg/model"
	"github.com/polarismesh/polaris-go/pkg/stat"
)

// Provider runs the three provider-side operations against a Context.
type Provider struct {
	ctx *polariscontext.Context
}

// New builds a Provider bound to ctx.
func New(ctx *polariscontext.Context) *Provider {
	return &Provider{ctx: ctx}
}

// Register runs the registration pipeline for req.
func (p *Provider) Register(req *model.InstanceRegisterRequest) (*model.InstanceRegisterResponse, error) {
	if err := req.Validate(); err != nil {
		p.record(model.ApiRegister, errCodeOf(err))
		return nil, err
	}

	var resp *model.InstanceRegisterResponse
	code := p.runWithRetry(model.ApiRegister, req.Timeout, req.RetryCount, func(timeout time.Duration) error {
		r, err := p.ctx.ServerConnector.RegisterInstance(req, timeout)
		if err != nil {
			return err
		}
		resp = r
		return nil
	})
	p.record(model.ApiRegister, code)
	if code != model.ErrCodeSuccess {
		return nil, model.NewSDKError(code, nil, "fail to register instance %s", *req)
	}
	return resp, nil
}

// Deregister runs the deregistration pipeline for req.
func (p *Provider) Deregister(req *model.InstanceDeRegisterRequest) error {
	if err := req.Validate(); err != nil {
		p.record(model.ApiDeregister, errCodeOf(err))
		return err
	}

	code := p.runWithRetry(model.ApiDeregister, req.Timeout, req.RetryCount, func(timeout time.Duration) error {
		return p.ctx.ServerConnector.DeregisterInstance(req, timeout)
	})
	p.record(model.ApiDeregister, code)
	if code != model.ErrCodeSuccess {
		return model.NewSDKError(code, nil, "fail to deregister instance %s", *req)
	}
	return nil
}

// Heartbeat runs the heartbeat pipeline for req.
func (p *Provider) Heartbeat(req *model.InstanceHeartbeatRequest) error {
	if err := req.Validate(); err != nil {
		p.record(model.ApiHeartbeat, errCodeOf(err))
		return err
	}

	code := p.runWithRetry(model.ApiHeartbeat, req.Timeout, req.RetryCount, func(timeout time.Duration) error {
		return p.ctx.ServerConnector.InstanceHeartbeat(req, timeout)
	})
	p.record(model.ApiHeartbeat, code)
	if code != model.ErrCodeSuccess {
		return model.NewSDKError(code, nil, "fail to report heartbeat %s", *req)
	}
	return nil
}

// controlParamFor resolves a call's budget into a model.ControlParam: Timeout and
// MaxRetry come from the request's own overrides when present, otherwise from the
// Context's configured API defaults; RetryInterval is always the configured backoff.
func (p *Provider) controlParamFor(timeoutOverride *time.Duration, retryOverride *int) *model.ControlParam {
	apiCfg := p.ctx.Config.Global.API
	param := &model.ControlParam{
		Timeout:       apiCfg.Timeout,
		MaxRetry:      apiCfg.MaxRetryTimes,
		RetryInterval: apiCfg.RetryInterval,
	}
	if timeoutOverride != nil {
		param.Timeout = *timeoutOverride
	}
	if retryOverride != nil {
		param.MaxRetry = *retryOverride
	}
	return param
}

// runWithRetry is the generic budget/retry loop shared by all three operations.
// param.Timeout is drained as the remaining timeout budget and param.MaxRetry as the
// remaining attempt count. Every attempt spends part of the timeout budget on the
// call itself and, if it will retry, part of it on the backoff sleep between
// attempts; the sleep never exceeds what's left of the budget.
func (p *Provider) runWithRetry(api model.ApiOperation, timeoutOverride *time.Duration,
	retryOverride *int, attempt func(timeout time.Duration) error) model.ErrCode {

	param := p.controlParamFor(timeoutOverride, retryOverride)

	code := model.ErrCodeAPITimeoutError
	for param.MaxRetry > 0 && param.Timeout > 0 {
		begin := time.Now()
		err := attempt(param.Timeout)
		elapsed := time.Since(begin)
		if elapsed < 0 {
			elapsed = 0
		}

		if err == nil {
			return model.ErrCodeSuccess
		}
		code = errCodeOf(err)
		if !code.Retryable() || elapsed >= param.Timeout {
			return code
		}

		param.Timeout -= elapsed
		backoff := param.RetryInterval
		if backoff > param.Timeout {
			backoff = param.Timeout
		}
		time.Sleep(backoff)
		param.Timeout -= backoff
		param.MaxRetry--
	}
	return code
}

func (p *Provider) record(api model.ApiOperation, code model.ErrCode) {
	stat.NewRecorder(p.ctx.StatReporters, api).Record(code)
}

func errCodeOf(err error) model.ErrCode {
	if err == nil {
		return model.ErrCodeSuccess
	}
	if sdkErr, ok := err.(model.SDKError); ok {
		return sdkErr.ErrorCode()
	}
	return model.ErrCodeUnknown
}
