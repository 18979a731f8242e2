/**
 * Tencent is pleased to support the open source community by making Polaris available.
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

// Package polaris defines the public, provider-facing API surface.
package polaris

import (
	"github.com/polarismesh/polaris-go/api"
	"github.com/polarismesh/polaris-go/pkg/model"
)

// InstanceRegisterRequest 实例注册请求.
type InstanceRegisterRequest api.InstanceRegisterRequest

// InstanceDeRegisterRequest 实例注销请求.
type InstanceDeRegisterRequest api.InstanceDeRegisterRequest

// InstanceHeartbeatRequest 实例心跳请求.
type InstanceHeartbeatRequest api.InstanceHeartbeatRequest

// ProviderAPI is the main interface exposed to services registering themselves
// and reporting their own liveness.
type ProviderAPI interface {
	api.SDKOwner
	// RegisterInstance registers a service instance, filling in InstanceID on
	// success. The caller keeps the populated request to deregister or
	// heartbeat the same instance later.
	RegisterInstance(instance *InstanceRegisterRequest) (*model.InstanceRegisterResponse, error)
	// Deprecated: use RegisterInstance instead.
	Register(instance *InstanceRegisterRequest) (*model.InstanceRegisterResponse, error)
	// Deregister removes a previously registered instance.
	Deregister(instance *InstanceDeRegisterRequest) error
	// Heartbeat reports liveness for a registered instance. RegisterInstance starts
	// no background heartbeat, so liveness is kept only by calling Heartbeat.
	Heartbeat(instance *InstanceHeartbeatRequest) error
	// Destroy releases the API and everything it owns. No further calls are
	// valid afterwards.
	Destroy()
}
