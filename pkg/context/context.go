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

// Package context builds and owns the shared runtime every provider call and every
// background executor runs against: the resolved plugin chains, the local registry's
// refcounted per-service bundles, and the value context threaded through both.
package context

import (
	"sync"

	"github.com/polarismesh/polaris-go/pkg/config"
	"github.com/polarismesh/polaris-go/pkg/model"
	"github.com/polarismesh/polaris-go/pkg/plugin"
	"github.com/polarismesh/polaris-go/pkg/plugin/circuitbreaker"
	"github.com/polarismesh/polaris-go/pkg/plugin/common"
	"github.com/polarismesh/polaris-go/pkg/plugin/localregistry"
	"github.com/polarismesh/polaris-go/pkg/plugin/outlierdetection"
	"github.com/polarismesh/polaris-go/pkg/plugin/servicerouter"
	"github.com/polarismesh/polaris-go/pkg/plugin/serverconnector"
	"github.com/polarismesh/polaris-go/pkg/plugin/statreporter"
	"github.com/polarismesh/polaris-go/pkg/plugin/weightadjuster"
)

// Only one bundled implementation exists for these extension points, so a Context
// resolves them by a fixed name rather than a config-supplied one. ServerConnector and
// the StatReporter/OutlierDetector chains are resolved from config instead, since those
// are the extension points the configuration tree actually exposes a choice for.
const (
	localRegistryPluginName  = "inmemory"
	circuitBreakerPluginName = "errorRate"
	weightAdjusterPluginName = "rateDelayAdjuster"
	serviceRouterPluginName  = "ruleBase"
)

// Executor is anything the Context starts on construction and tears down on Destroy,
// ahead of releasing the plugins it depends on. The outlier-detection executor is the
// only implementation today; the interface exists so Destroy's ordering doesn't need
// to know about any particular executor's internals.
type Executor interface {
	SetupWork()
	Destroy()
}

// Context is the shared runtime handed to the provider pipeline and to every
// executor: resolved plugin instances, the per-service bundle cache, and the value
// context both read and write.
type Context struct {
	Config   *config.Configuration
	Mode     Mode
	ValueCtx model.ValueContext

	LocalRegistry   localregistry.LocalRegistry
	ServerConnector serverconnector.ServerConnector
	StatReporters   []statreporter.StatReporter
	OutlierDetector *outlierdetection.Chain
	CircuitBreaker  circuitbreaker.InstanceCircuitBreaker
	WeightAdjuster  weightadjuster.WeightAdjuster
	ServiceRouter   servicerouter.ServiceRouter

	mu       sync.Mutex
	services map[localregistry.ServiceKey]*ServiceContext
	executors []Executor
	destroyed bool
}

// NewContext resolves every bundled plugin this configuration names and initializes
// each one. It does not construct or start any Executor itself - callers register
// those with RegisterExecutor and call SetupWork once the Context is otherwise ready
// (api.InitContextByConfig does this for the outlier-detection executor). The
// returned Context is ready for provider calls immediately.
func NewContext(cfg *config.Configuration, mode Mode) (*Context, error) {
	if !mode.Valid() {
		return nil, model.NewSDKError(model.ErrCodeAPIInvalidConfig, nil, "unrecognized context mode %v", mode)
	}
	cfg.SetDefault()
	if err := cfg.Verify(); err != nil {
		return nil, model.NewSDKError(model.ErrCodeAPIInvalidConfig, err, "invalid configuration")
	}

	initCtx := &plugin.InitContext{Config: cfg, ValueCtx: model.NewValueContext()}
	registry := plugin.GlobalRegistry()

	c := &Context{
		Config:   cfg,
		Mode:     mode,
		ValueCtx: initCtx.ValueCtx,
		services: make(map[localregistry.ServiceKey]*ServiceContext),
	}

	localRegistryPlugin, err := registry.Get(localRegistryPluginName, common.TypeLocalRegistry)
	if err != nil {
		return nil, err
	}
	if err := localRegistryPlugin.Init(initCtx); err != nil {
		return nil, err
	}
	c.LocalRegistry = localRegistryPlugin.(localregistry.LocalRegistry)

	connectorPlugin, err := registry.Get(cfg.Global.ServerConnector.Protocol, common.TypeServerConnector)
	if err != nil {
		return nil, err
	}
	if err := connectorPlugin.Init(initCtx); err != nil {
		return nil, err
	}
	c.ServerConnector = connectorPlugin.(serverconnector.ServerConnector)

	if cfg.Global.StatReporter.Enable {
		for _, name := range cfg.Global.StatReporter.Chain {
			reporterPlugin, err := registry.Get(name, common.TypeStatReporter)
			if err != nil {
				return nil, err
			}
			if err := reporterPlugin.Init(initCtx); err != nil {
				return nil, err
			}
			c.StatReporters = append(c.StatReporters, reporterPlugin.(statreporter.StatReporter))
		}
	}

	circuitBreakerPlugin, err := registry.Get(circuitBreakerPluginName, common.TypeCircuitBreaker)
	if err != nil {
		return nil, err
	}
	if err := circuitBreakerPlugin.Init(initCtx); err != nil {
		return nil, err
	}
	c.CircuitBreaker = circuitBreakerPlugin.(circuitbreaker.InstanceCircuitBreaker)

	weightAdjusterPlugin, err := registry.Get(weightAdjusterPluginName, common.TypeWeightAdjuster)
	if err != nil {
		return nil, err
	}
	if err := weightAdjusterPlugin.Init(initCtx); err != nil {
		return nil, err
	}
	c.WeightAdjuster = weightAdjusterPlugin.(weightadjuster.WeightAdjuster)

	serviceRouterPlugin, err := registry.Get(serviceRouterPluginName, common.TypeServiceRouter)
	if err != nil {
		return nil, err
	}
	if err := serviceRouterPlugin.Init(initCtx); err != nil {
		return nil, err
	}
	c.ServiceRouter = serviceRouterPlugin.(servicerouter.ServiceRouter)

	if cfg.Provider.OutlierDetector.Enable {
		chain := &outlierdetection.Chain{}
		for _, name := range cfg.Provider.OutlierDetector.Chain {
			detectorPlugin, err := registry.Get(name, common.TypeOutlierDetector)
			if err != nil {
				return nil, err
			}
			if err := detectorPlugin.Init(initCtx); err != nil {
				return nil, err
			}
			chain.Detectors = append(chain.Detectors, detectorPlugin.(outlierdetection.OutlierDetector))
		}
		c.OutlierDetector = chain
	}

	return c, nil
}

// RegisterExecutor adds an executor to the set Destroy tears down, in Private mode,
// ahead of releasing plugins. Called once per executor during startup, after the
// executor itself has been constructed against this Context.
func (c *Context) RegisterExecutor(e Executor) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.executors = append(c.executors, e)
}

// GetAllServiceContext appends a ServiceContext for every service the local registry
// currently tracks, each with its reference count already incremented. Callers must
// call DecrementRef on every entry exactly once, on every path including failure.
func (c *Context) GetAllServiceContext(out *[]*ServiceContext) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range c.LocalRegistry.GetServices() {
		sc, ok := c.services[key]
		if !ok {
			sc = &ServiceContext{Key: key}
			c.services[key] = sc
		}
		sc.IncrementRef()
		*out = append(*out, sc)
	}
}

// IsDestroyed reports whether Destroy has already run.
func (c *Context) IsDestroyed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.destroyed
}

// Destroy tears this Context down. In Private mode it stops every registered executor
// first, so no executor can observe a plugin mid-release, then destroys every resolved
// plugin. In Share mode the caller borrowed this Context from elsewhere and Destroy is
// a no-op, since the owner is responsible for tearing it down.
func (c *Context) Destroy() {
	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	c.destroyed = true
	executors := c.executors
	c.executors = nil
	c.mu.Unlock()

	if c.Mode == Share {
		return
	}

	for _, e := range executors {
		e.Destroy()
	}

	plugins := []plugin.Plugin{c.LocalRegistry, c.ServerConnector, c.CircuitBreaker, c.WeightAdjuster, c.ServiceRouter}
	for _, reporter := range c.StatReporters {
		plugins = append(plugins, reporter)
	}
	if c.OutlierDetector != nil {
		for _, d := range c.OutlierDetector.Detectors {
			plugins = append(plugins, d)
		}
	}
	for _, p := range plugins {
		if p == nil {
			continue
		}
		_ = p.Destroy()
	}
}
