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

package plugin

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/modern-go/reflect2"

	"github.com/polarismesh/polaris-go/pkg/config"
	"github.com/polarismesh/polaris-go/pkg/log"
	"github.com/polarismesh/polaris-go/pkg/model"
	"github.com/polarismesh/polaris-go/pkg/plugin/common"
)

// Plugin is the minimal lifecycle every extension point implements.
type Plugin interface {
	// Type returns the extension point this plugin belongs to.
	Type() common.Type
	// Name returns the plugin's registered name, unique within its Type.
	Name() string
	// Init wires the plugin against the shared config/value context.
	Init(ctx *InitContext) error
	// Destroy releases any resource acquired by Init.
	Destroy() error
}

// InitContext carries the shared state a plugin needs during Init.
type InitContext struct {
	Config   *config.Configuration
	ValueCtx model.ValueContext
}

// Factory builds a fresh Plugin instance. Registered factories must be stateless:
// the registry calls them once per Get.
type Factory func() Plugin

// LoadBalanceType identifies a load-balancing algorithm independent of plugin name,
// so callers can request "the ring-hash balancer" without knowing its registered name.
type LoadBalanceType uint32

// LoadBalanceTyped is implemented by LoadBalancer plugins to advertise their algorithm.
type LoadBalanceTyped interface {
	LBType() LoadBalanceType
}

// PreUpdateHandler observes every local-registry update of a service's instance list.
type PreUpdateHandler func(old, new []model.Instance)

type pluginKey struct {
	name string
	typ  common.Type
}

type preUpdateEntry struct {
	handler PreUpdateHandler
}

// Registry is the process-wide plugin catalogue described by the Plugin Registry
// component: name+type keyed factories, a secondary LoadBalanceType index, and the
// instance pre-update hook chain.
type Registry struct {
	mu         sync.Mutex
	factories  map[pluginKey]Factory
	lbByType   map[LoadBalanceType]Factory
	hooksMu    sync.Mutex
	hooks      []*preUpdateEntry
}

var (
	globalRegistry     *Registry
	globalRegistryOnce sync.Once
)

// GlobalRegistry returns the process-wide singleton, built lazily on first use.
func GlobalRegistry() *Registry {
	globalRegistryOnce.Do(func() {
		globalRegistry = &Registry{
			factories: make(map[pluginKey]Factory),
			lbByType:  make(map[LoadBalanceType]Factory),
		}
	})
	return globalRegistry
}

func sameFactory(a, b Factory) bool {
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}

// Register adds name/type -> factory. Re-registering the same (name, type) with an
// identical factory is a no-op; registering a different factory under the same key
// is a conflict. For the LoadBalancer type, the plugin is additionally instantiated
// once to read its LoadBalanceType and index the first factory seen for that type.
func (r *Registry) Register(name string, typ common.Type, factory Factory) error {
	if len(name) == 0 || reflect2.IsNil(factory) {
		return model.NewSDKError(model.ErrCodeAPIInvalidArgument, nil,
			"plugin name and factory must be non-empty")
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	key := pluginKey{name: name, typ: typ}
	if existing, ok := r.factories[key]; ok {
		if sameFactory(existing, factory) {
			return nil
		}
		return model.NewSDKError(model.ErrCodePluginError, nil,
			fmt.Sprintf("plugin %s/%s already registered with a different factory", typ, name))
	}
	r.factories[key] = factory

	if typ == common.TypeLoadBalancer {
		probe := factory()
		if reflect2.IsNil(probe) {
			delete(r.factories, key)
			return model.NewSDKError(model.ErrCodePluginError, nil,
				fmt.Sprintf("load balancer %s produced a nil instance", name))
		}
		typed, ok := probe.(LoadBalanceTyped)
		if !ok {
			delete(r.factories, key)
			return model.NewSDKError(model.ErrCodePluginError, nil,
				fmt.Sprintf("load balancer %s does not implement LoadBalanceTyped", name))
		}
		lbType := typed.LBType()
		if _, ok := r.lbByType[lbType]; !ok {
			r.lbByType[lbType] = factory
		} else {
			log.GetBaseLogger().Warnf(
				"plugin %s: load balance type %d already registered, keeping the first factory", name, lbType)
		}
	}
	return nil
}

// Get returns a fresh instance from the stored factory for (name, type).
func (r *Registry) Get(name string, typ common.Type) (Plugin, error) {
	r.mu.Lock()
	factory, ok := r.factories[pluginKey{name: name, typ: typ}]
	r.mu.Unlock()
	if !ok {
		return nil, model.NewSDKError(model.ErrCodePluginError, nil,
			fmt.Sprintf("no plugin registered for %s/%s", typ, name))
	}
	return factory(), nil
}

// GetLoadBalancer returns a fresh instance of the load balancer registered for lbType.
func (r *Registry) GetLoadBalancer(lbType LoadBalanceType) (Plugin, error) {
	r.mu.Lock()
	factory, ok := r.lbByType[lbType]
	r.mu.Unlock()
	if !ok {
		return nil, model.NewSDKError(model.ErrCodePluginError, nil,
			fmt.Sprintf("no load balancer registered for type %d", lbType))
	}
	return factory(), nil
}

// RegisterInstancePreUpdateHandler adds h to the pre-update chain. atFront inserts it
// ahead of all existing handlers; otherwise it is appended. Registering the same
// handler pointer twice is a conflict.
func (r *Registry) RegisterInstancePreUpdateHandler(h PreUpdateHandler, atFront bool) error {
	hp := reflect.ValueOf(h).Pointer()
	r.hooksMu.Lock()
	defer r.hooksMu.Unlock()
	for _, e := range r.hooks {
		if reflect.ValueOf(e.handler).Pointer() == hp {
			return model.NewSDKError(model.ErrCodeExistedResource, nil,
				"pre-update handler already registered")
		}
	}
	entry := &preUpdateEntry{handler: h}
	if atFront {
		r.hooks = append([]*preUpdateEntry{entry}, r.hooks...)
	} else {
		r.hooks = append(r.hooks, entry)
	}
	return nil
}

// DeregisterInstancePreUpdateHandler removes h from the chain.
func (r *Registry) DeregisterInstancePreUpdateHandler(h PreUpdateHandler) error {
	hp := reflect.ValueOf(h).Pointer()
	r.hooksMu.Lock()
	defer r.hooksMu.Unlock()
	for i, e := range r.hooks {
		if reflect.ValueOf(e.handler).Pointer() == hp {
			r.hooks = append(r.hooks[:i], r.hooks[i+1:]...)
			return nil
		}
	}
	return model.NewSDKError(model.ErrCodePluginError, nil, "pre-update handler not registered")
}

// OnPreUpdateServiceData invokes the pre-update chain with the old and new instance
// collections. The chain is snapshotted under the lock; handlers run outside it so
// that a handler may (de)register siblings without deadlocking.
func (r *Registry) OnPreUpdateServiceData(old, new []model.Instance) {
	r.hooksMu.Lock()
	snapshot := make([]*preUpdateEntry, len(r.hooks))
	copy(snapshot, r.hooks)
	r.hooksMu.Unlock()

	for _, e := range snapshot {
		e.handler(old, new)
	}
}
