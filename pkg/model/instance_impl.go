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

import "sync/atomic"

// DefaultInstance is the plain in-memory Instance every bundled plugin works with: no
// protobuf wrapping, just the fields the provider pipeline and outlier executor need.
type DefaultInstance struct {
	Namespace         string
	Service           string
	ID                string
	Host              string
	Port              uint32
	Protocol          string
	Version           string
	Weight            int
	Priority          uint32
	Metadata          map[string]string
	LogicSet          string
	Healthy           bool
	Isolated          bool
	EnableHealthCheck bool
	Revision          string

	circuitBreakerStatus atomic.Value // CircuitBreakerStatus
	detectStatus         atomic.Value // RetStatus, written by the outlier-detection chain
}

func (i *DefaultInstance) GetNamespace() string         { return i.Namespace }
func (i *DefaultInstance) GetService() string           { return i.Service }
func (i *DefaultInstance) GetId() string                { return i.ID }
func (i *DefaultInstance) GetHost() string              { return i.Host }
func (i *DefaultInstance) GetPort() uint32               { return i.Port }
func (i *DefaultInstance) GetProtocol() string          { return i.Protocol }
func (i *DefaultInstance) GetVersion() string           { return i.Version }
func (i *DefaultInstance) GetWeight() int               { return i.Weight }
func (i *DefaultInstance) GetPriority() uint32          { return i.Priority }
func (i *DefaultInstance) GetMetadata() map[string]string { return i.Metadata }
func (i *DefaultInstance) GetLogicSet() string          { return i.LogicSet }
func (i *DefaultInstance) IsHealthy() bool              { return i.Healthy }
func (i *DefaultInstance) IsIsolated() bool              { return i.Isolated }
func (i *DefaultInstance) IsEnableHealthCheck() bool    { return i.EnableHealthCheck }
func (i *DefaultInstance) GetRevision() string          { return i.Revision }

// GetCircuitBreakerStatus returns the last status set by SetCircuitBreakerStatus, or
// nil if the circuit breaker chain has never touched this instance.
func (i *DefaultInstance) GetCircuitBreakerStatus() CircuitBreakerStatus {
	v := i.circuitBreakerStatus.Load()
	if v == nil {
		return nil
	}
	return v.(CircuitBreakerStatus)
}

// SetCircuitBreakerStatus installs the current circuit state, written by the
// CircuitBreaker plugin chain and read by load balancers filtering on it.
func (i *DefaultInstance) SetCircuitBreakerStatus(status CircuitBreakerStatus) {
	i.circuitBreakerStatus.Store(status)
}

// GetDetectStatus returns the last status the outlier-detection chain recorded, or
// zero if no detector has ever probed this instance.
func (i *DefaultInstance) GetDetectStatus() RetStatus {
	v := i.detectStatus.Load()
	if v == nil {
		return 0
	}
	return v.(RetStatus)
}

// SetDetectStatus installs the most recent outlier-detection verdict for this
// instance.
func (i *DefaultInstance) SetDetectStatus(status RetStatus) {
	i.detectStatus.Store(status)
}

// SetProperty is the narrow mutation surface UpdateInstances uses to apply
// out-of-band property patches (circuit state, dynamic weight, detect status)
// without replacing the whole instance.
func (i *DefaultInstance) SetProperty(key string, value interface{}) {
	switch key {
	case "Healthy":
		if v, ok := value.(bool); ok {
			i.Healthy = v
		}
	case "Isolated":
		if v, ok := value.(bool); ok {
			i.Isolated = v
		}
	case "Weight":
		if v, ok := value.(int); ok {
			i.Weight = v
		}
	case "CircuitBreakerStatus":
		if v, ok := value.(CircuitBreakerStatus); ok {
			i.SetCircuitBreakerStatus(v)
		}
	case "DetectStatus":
		if v, ok := value.(RetStatus); ok {
			i.SetDetectStatus(v)
		}
	}
}
