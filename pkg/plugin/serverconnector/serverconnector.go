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

// Package serverconnector is the ServerConnector extension point: the synchronous,
// caller-timeout-bounded transport the provider pipeline calls into.
package serverconnector

import (
	"time"

	"github.com/polarismesh/polaris-go/pkg/model"
	"github.com/polarismesh/polaris-go/pkg/plugin"
)

// ServerConnector proxies the three provider-side operations against the registry
// server. Every method must return within the supplied timeout; implementations
// classify transport/server faults as model.ErrCodeNetworkError or
// model.ErrCodeServerException (retryable) and everything else as a terminal code.
type ServerConnector interface {
	plugin.Plugin
	// RegisterInstance registers an instance, returning its assigned ID.
	RegisterInstance(req *model.InstanceRegisterRequest, timeout time.Duration) (*model.InstanceRegisterResponse, error)
	// DeregisterInstance removes a previously registered instance.
	DeregisterInstance(req *model.InstanceDeRegisterRequest, timeout time.Duration) error
	// InstanceHeartbeat reports liveness for a previously registered instance.
	InstanceHeartbeat(req *model.InstanceHeartbeatRequest, timeout time.Duration) error
}
