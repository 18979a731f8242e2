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

package model

import (
	"sync"
	"time"

	"github.com/polarismesh/polaris-go/pkg/clock"
)

const (
	//SDK的唯一标识id
	ContextKeyToken = "SDKToken"
	//sdkContext创建开始时间
	ContextKeyTakeEffectTime = "SDKTakeEffectTime"
	//sdkContext创建结束时间
	ContextKeyFinishInitTime = "SDKFinishInitTime"
)

//SDKToken sdkContext的唯一标识
type SDKToken struct {
	IP       string
	PID      int32
	UID      string
	Client   string
	Version  string
	PodName  string
	HostName string
}

//ValueContext 用于主流程传递kv数据的上下文对象，线程安全
type ValueContext interface {
	//设置kv值
	SetValue(key string, value interface{})
	//获取kv值
	GetValue(key string) (interface{}, bool)
	//获取客户端ID
	GetClientId() string
	//获取当前时间戳
	Now() time.Time
	//计算时间间隔
	Since(time.Time) time.Duration
}

//NewValueContext 创建kv上下文对象
func NewValueContext() ValueContext {
	return &valueContext{
		coreMap: &sync.Map{},
		clock:   clock.GetClock(),
	}
}

//valueContext ValueContext的实现类
type valueContext struct {
	//时钟，用于获取当前时间戳
	clock clock.Clock
	//使用线程安全的map进行值的存储
	coreMap *sync.Map
}

//设置kv值
func (v *valueContext) SetValue(key string, value interface{}) {
	v.coreMap.Store(key, value)
}

//获取kv值
func (v *valueContext) GetValue(key string) (interface{}, bool) {
	return v.coreMap.Load(key)
}

//获取当前时间戳
func (v *valueContext) Now() time.Time {
	return v.clock.Now()
}

//计算时间间隔
func (v *valueContext) Since(startTime time.Time) time.Duration {
	return v.Now().Sub(startTime)
}

//获取客户端ID
func (v *valueContext) GetClientId() string {
	tokenValue, ok := v.GetValue(ContextKeyToken)
	if !ok {
		return ""
	}
	sdkToken := tokenValue.(SDKToken)
	return sdkToken.UID
}
