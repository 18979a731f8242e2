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

package context

import (
	"sync/atomic"

	"github.com/polarismesh/polaris-go/pkg/plugin/localregistry"
)

// ServiceContext is the per-service bundle GetAllServiceContext hands out: a
// reference-counted handle identifying one service whose instances the local
// registry currently caches. Callers that obtain one from GetAllServiceContext
// must call DecrementRef exactly once, on every path including failure.
type ServiceContext struct {
	Key localregistry.ServiceKey

	refCount int32
}

// IncrementRef bumps the reference count. Used internally when a ServiceContext is
// handed out; exported so an executor that needs to hold one across a suspension
// point can extend its own borrow.
func (s *ServiceContext) IncrementRef() {
	atomic.AddInt32(&s.refCount, 1)
}

// DecrementRef releases one reference.
func (s *ServiceContext) DecrementRef() {
	atomic.AddInt32(&s.refCount, -1)
}

// RefCount returns the current reference count, for tests and diagnostics.
func (s *ServiceContext) RefCount() int32 {
	return atomic.LoadInt32(&s.refCount)
}
