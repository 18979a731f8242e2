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

package common

import (
	"context"
	"sync/atomic"

	"github.com/modern-go/reflect2"

	"github.com/polarismesh/polaris-go/pkg/model"
)

// Type 插件类型，每个扩展点有自己独立的插件类型
type Type uint32

const (
	// TypePluginBase .
	TypePluginBase Type = 0x1000
	// TypeServerConnector 注册中心连接器扩展点
	TypeServerConnector Type = 0x1001
	// TypeLocalRegistry 本地缓存扩展点
	TypeLocalRegistry Type = 0x1002
	// TypeServiceRouter 服务路由扩展点
	TypeServiceRouter Type = 0x1003
	// TypeLoadBalancer 负载均衡扩展点
	TypeLoadBalancer Type = 0x1004
	// TypeCircuitBreaker 节点熔断扩展点
	TypeCircuitBreaker Type = 0x1005
	// TypeWeightAdjuster 动态权重调整扩展点
	TypeWeightAdjuster Type = 0x1006
	// TypeStatReporter 统计上报扩展点
	TypeStatReporter Type = 0x1007
	// TypeOutlierDetector 主动健康探测（outlier detection）扩展点
	TypeOutlierDetector Type = 0x1008
)

var typeToPresent = map[Type]string{
	TypePluginBase:      "TypePluginBase",
	TypeServerConnector: "serverConnector",
	TypeLocalRegistry:   "localRegistry",
	TypeServiceRouter:   "serviceRouter",
	TypeLoadBalancer:    "loadBalancer",
	TypeCircuitBreaker:  "circuitBreaker",
	TypeWeightAdjuster:  "weightAdjuster",
	TypeStatReporter:    "statReporter",
	TypeOutlierDetector: "outlierDetector",
}

// String 方法
func (t Type) String() string {
	return typeToPresent[t]
}

// RunContext 控制插件启动销毁的运行上下文
type RunContext struct {
	ctx    context.Context
	cancel context.CancelFunc
}

// NewRunContext 创建插件运行上下文
func NewRunContext() *RunContext {
	ctx := &RunContext{}
	ctx.ctx, ctx.cancel = context.WithCancel(context.Background())
	return ctx
}

// Destroy 销毁运行上下文
func (c *RunContext) Destroy() error {
	c.cancel()
	return nil
}

// IsDestroyed 判断是否已经销毁
func (c *RunContext) IsDestroyed() bool {
	select {
	case <-c.ctx.Done():
		return true
	default:
		return false
	}
}

// Done 获取控制channel
func (c *RunContext) Done() <-chan struct{} {
	return c.ctx.Done()
}

// Notifier 通知回调器的函数，用于localregistry等异步加载场景一次性唤醒等待方
type Notifier struct {
	sdkError atomic.Value
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewNotifier 创建通知器
func NewNotifier() *Notifier {
	notifier := &Notifier{}
	notifier.ctx, notifier.cancel = context.WithCancel(context.Background())
	return notifier
}

// GetError 获取回调错误
func (n *Notifier) GetError() model.SDKError {
	sdkErrValue := n.sdkError.Load()
	if reflect2.IsNil(sdkErrValue) {
		return nil
	}
	return sdkErrValue.(model.SDKError)
}

// GetContext 获取回调上下文
func (n *Notifier) GetContext() context.Context {
	return n.ctx
}

// Notify 执行回调通知，只会生效一次
func (n *Notifier) Notify(sdkErr model.SDKError) {
	if nil != sdkErr {
		n.sdkError.Store(sdkErr)
	}
	n.cancel()
}

// LoadedPluginTypes 核心进程会加载的插件类型
var LoadedPluginTypes = []Type{
	TypeServerConnector,
	TypeServiceRouter,
	TypeLoadBalancer,
	TypeCircuitBreaker,
	TypeWeightAdjuster,
	TypeStatReporter,
	TypeLocalRegistry,
	TypeOutlierDetector,
}
