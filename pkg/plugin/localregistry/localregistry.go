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

// Package localregistry is the LocalRegistry extension point: the in-process cache
// of each service's instance list that the Context hands out as ServiceContexts.
package localregistry

import (
	"fmt"

	"github.com/polarismesh/polaris-go/pkg/model"
	"github.com/polarismesh/polaris-go/pkg/plugin"
)

// ServiceKey identifies a service by namespace and name.
type ServiceKey struct {
	Namespace string
	Service   string
}

func (k ServiceKey) String() string {
	return fmt.Sprintf("{namespace: %s, service: %s}", k.Namespace, k.Service)
}

const (
	// PropertyCircuitBreakerStatus is the InstanceProperties key carrying circuit state.
	PropertyCircuitBreakerStatus = "CircuitBreakerStatus"
	// PropertyDetectStatus is the InstanceProperties key carrying outlier-detect status.
	PropertyDetectStatus = "DetectStatus"
)

// InstanceProperties is a single instance's property patch within a ServiceUpdateRequest.
type InstanceProperties struct {
	ID         string
	Properties map[string]interface{}
}

// ServiceUpdateRequest batches property updates (circuit state, dynamic weight, ...)
// for one service's instances.
type ServiceUpdateRequest struct {
	ServiceKey
	Properties []InstanceProperties
}

// InstancesRegistry is the read/write surface the Context and its executors use
// to access and refresh the cached instance lists.
type InstancesRegistry interface {
	// GetServices returns every service this registry currently tracks.
	GetServices() []ServiceKey
	// GetInstances returns the cached instance list for a service, if any.
	GetInstances(key ServiceKey) (model.ServiceInstances, bool)
	// SetInstances installs or replaces a service's cached instance list, running the
	// plugin registry's pre-update hook chain against the old and new lists first.
	SetInstances(key ServiceKey, instances model.ServiceInstances)
	// UpdateInstances applies out-of-band property patches (circuit state, dynamic
	// weight, detect status) without a full instance-list replacement.
	UpdateInstances(req *ServiceUpdateRequest) error
}

// LocalRegistry is the extension point itself.
type LocalRegistry interface {
	plugin.Plugin
	InstancesRegistry
}
