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

// Package inmemory is the bundled LocalRegistry plugin: a flat, lock-protected map
// of service -> cached instance list with no persistence or remote load.
package inmemory

import (
	"sync"

	"github.com/polarismesh/polaris-go/pkg/model"
	"github.com/polarismesh/polaris-go/pkg/plugin"
	"github.com/polarismesh/polaris-go/pkg/plugin/common"
	"github.com/polarismesh/polaris-go/pkg/plugin/localregistry"
)

// PluginName is this plugin's registered name.
const PluginName = "inmemory"

var _ localregistry.LocalRegistry = (*Registry)(nil)

func init() {
	plugin.GlobalRegistry().Register(PluginName, common.TypeLocalRegistry, func() plugin.Plugin {
		return &Registry{}
	})
}

// Registry is the in-process instance cache every ServiceContext reads from.
type Registry struct {
	mu        sync.RWMutex
	instances map[localregistry.ServiceKey]model.ServiceInstances
}

func (r *Registry) Type() common.Type { return common.TypeLocalRegistry }
func (r *Registry) Name() string      { return PluginName }

func (r *Registry) Init(ctx *plugin.InitContext) error {
	r.instances = make(map[localregistry.ServiceKey]model.ServiceInstances)
	return nil
}

func (r *Registry) Destroy() error {
	return nil
}

// GetServices returns every service key currently cached.
func (r *Registry) GetServices() []localregistry.ServiceKey {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]localregistry.ServiceKey, 0, len(r.instances))
	for k := range r.instances {
		keys = append(keys, k)
	}
	return keys
}

// GetInstances returns the cached instance list for a service, if any.
func (r *Registry) GetInstances(key localregistry.ServiceKey) (model.ServiceInstances, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	instances, ok := r.instances[key]
	return instances, ok
}

// SetInstances replaces a service's cached instance list, notifying the pre-update
// hook chain with the old and new collections before swapping the map entry in.
func (r *Registry) SetInstances(key localregistry.ServiceKey, instances model.ServiceInstances) {
	r.mu.RLock()
	old := r.instances[key]
	r.mu.RUnlock()

	var oldList, newList []model.Instance
	if old != nil {
		oldList = old.GetInstances()
	}
	if instances != nil {
		newList = instances.GetInstances()
	}
	plugin.GlobalRegistry().OnPreUpdateServiceData(oldList, newList)

	r.mu.Lock()
	r.instances[key] = instances
	r.mu.Unlock()
}

// UpdateInstances applies property patches in place, without touching the instance
// list's identity (so callers holding a reference still see fresh properties).
func (r *Registry) UpdateInstances(req *localregistry.ServiceUpdateRequest) error {
	r.mu.RLock()
	instances, ok := r.instances[req.ServiceKey]
	r.mu.RUnlock()
	if !ok {
		return model.NewSDKError(model.ErrCodeServiceNotFound, nil,
			"service %s not found in local registry", req.ServiceKey)
	}
	for _, prop := range req.Properties {
		instance := instances.GetInstance(prop.ID)
		if instance == nil {
			continue
		}
		if setter, ok := instance.(interface {
			SetProperty(key string, value interface{})
		}); ok {
			for k, v := range prop.Properties {
				setter.SetProperty(k, v)
			}
		}
	}
	return nil
}
