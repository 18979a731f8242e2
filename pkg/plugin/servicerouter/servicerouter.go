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

// Package servicerouter is the ServiceRouter extension point. The consumer-side
// discovery path this module doesn't implement would normally drive a full router
// chain; this interface is kept as a minimal contract so a provider-side rule-based
// filter still has a home.
package servicerouter

import (
	"github.com/polarismesh/polaris-go/pkg/model"
	"github.com/polarismesh/polaris-go/pkg/plugin"
)

// RouteCriteria carries the inputs a router uses to narrow an instance list.
type RouteCriteria struct {
	// Metadata restricts the result to instances whose metadata matches these key/values.
	Metadata map[string]string
}

// ServiceRouter filters a service's instance list down to the subset matching criteria.
type ServiceRouter interface {
	plugin.Plugin
	GetFilteredInstances(instances model.ServiceInstances, criteria RouteCriteria) (model.ServiceInstances, error)
}
