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

// DefaultServiceInstances is the plain in-memory ServiceInstances a ServiceContext keeps.
type DefaultServiceInstances struct {
	service     string
	namespace   string
	metadata    map[string]string
	instances   []Instance
	instanceMap map[string]Instance
	totalWeight int
}

// NewDefaultServiceInstances builds a ServiceInstances snapshot from a flat instance list.
func NewDefaultServiceInstances(service, namespace string, metadata map[string]string,
	instances []Instance) ServiceInstances {
	instanceMap := make(map[string]Instance, len(instances))
	var totalWeight int
	for _, instance := range instances {
		instanceMap[instance.GetId()] = instance
		totalWeight += instance.GetWeight()
	}
	return &DefaultServiceInstances{
		service:     service,
		namespace:   namespace,
		metadata:    metadata,
		instances:   instances,
		instanceMap: instanceMap,
		totalWeight: totalWeight,
	}
}

func (d *DefaultServiceInstances) GetService() string {
	return d.service
}

func (d *DefaultServiceInstances) GetNamespace() string {
	return d.namespace
}

func (d *DefaultServiceInstances) GetMetadata() map[string]string {
	return d.metadata
}

func (d *DefaultServiceInstances) GetInstances() []Instance {
	return d.instances
}

func (d *DefaultServiceInstances) GetTotalWeight() int {
	return d.totalWeight
}

func (d *DefaultServiceInstances) GetInstance(id string) Instance {
	return d.instanceMap[id]
}

func (d *DefaultServiceInstances) IsCacheLoaded() bool {
	return false
}
