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

// Package api is the core API of polaris-go: it wires a Configuration into a running
// Context, starts the background executors, and exposes the provider-facing surface.
package api

import (
	"fmt"
	"net"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/modern-go/reflect2"

	"github.com/polarismesh/polaris-go/pkg/config"
	polariscontext "github.com/polarismesh/polaris-go/pkg/context"
	"github.com/polarismesh/polaris-go/pkg/executor/outlier"
	"github.com/polarismesh/polaris-go/pkg/log"
	"github.com/polarismesh/polaris-go/pkg/model"
	_ "github.com/polarismesh/polaris-go/pkg/plugin/register"
)

// SDKContext is the handle every generated API instance mounts: the resolved plugin
// chains, the value context threaded through them, and destroy-once lifecycle control.
type SDKContext interface {
	// Destroy tears the context down. In Private mode this stops the background
	// executors and destroys every resolved plugin; in Share mode it is a no-op,
	// since the caller borrowed this context and does not own its lifecycle.
	Destroy()
	// IsDestroyed reports whether Destroy has already run.
	IsDestroyed() bool
	// GetConfig returns the configuration this context was built from.
	GetConfig() *config.Configuration
	// GetValueContext returns the shared value context.
	GetValueContext() model.ValueContext
	// Raw exposes the underlying Context for packages that need direct plugin access,
	// such as the provider pipeline.
	Raw() *polariscontext.Context
}

// SDKOwner is implemented by every generated API type, giving access to the context
// it was built from.
type SDKOwner interface {
	SDKContext() SDKContext
}

// CheckAvailable reports whether owner is non-nil and its context hasn't been
// destroyed yet.
func CheckAvailable(owner SDKOwner) error {
	return checkAvailable(owner)
}

func checkAvailable(owner SDKOwner) error {
	if reflect2.IsNil(owner) {
		return model.NewSDKError(model.ErrCodeAPIInvalidArgument, nil, "API can not be nil")
	}
	if owner.SDKContext().IsDestroyed() {
		return model.NewSDKError(model.ErrCodeInvalidStateError, nil, "api instance has been destroyed")
	}
	return nil
}

// sdkContext is the sole SDKContext implementation.
type sdkContext struct {
	ctx       *polariscontext.Context
	detector  *outlier.Executor
	destroyed uint32
}

func (s *sdkContext) Destroy() {
	if !atomic.CompareAndSwapUint32(&s.destroyed, 0, 1) {
		return
	}
	s.ctx.Destroy()
}

func (s *sdkContext) IsDestroyed() bool {
	return atomic.LoadUint32(&s.destroyed) > 0 || s.ctx.IsDestroyed()
}

func (s *sdkContext) GetConfig() *config.Configuration    { return s.ctx.Config }
func (s *sdkContext) GetValueContext() model.ValueContext { return s.ctx.ValueCtx }
func (s *sdkContext) Raw() *polariscontext.Context        { return s.ctx }

// InitContextByFile builds an SDKContext from a YAML configuration file on disk.
func InitContextByFile(path string) (SDKContext, error) {
	if !model.IsFile(path) {
		return nil, model.NewSDKError(model.ErrCodeAPIInvalidArgument, nil, "invalid context file %s", path)
	}
	cfg, err := config.NewConfigurationFromFile(path)
	if err != nil {
		return nil, model.NewSDKError(model.ErrCodeAPIInvalidConfig, err, "fail to load context file %s", path)
	}
	return InitContextByConfig(cfg)
}

// InitContextByStream builds an SDKContext from an in-memory YAML document.
func InitContextByStream(buf []byte) (SDKContext, error) {
	cfg, err := config.NewConfigurationFromBytes(buf)
	if err != nil {
		return nil, model.NewSDKError(model.ErrCodeAPIInvalidConfig, err, "fail to parse configuration stream")
	}
	return InitContextByConfig(cfg)
}

// checkLoggersDir ensures every logger with an on-disk destination can actually
// write there before a Context tries to use it.
func checkLoggersDir() error {
	var errs error
	loggers := []log.Logger{
		log.GetBaseLogger(), log.GetDetectLogger(), log.GetStatLogger(),
		log.GetStatReportLogger(), log.GetNetworkLogger(),
	}
	for _, l := range loggers {
		dirLogger, ok := l.(log.DirLogger)
		if !ok || dirLogger.IsLevelEnabled(log.NoneLog) {
			continue
		}
		if err := model.EnsureAndVerifyDir(dirLogger.GetLogDir()); err != nil {
			errs = multierror.Append(errs, multierror.Prefix(err,
				fmt.Sprintf("fail to create logger dir: %s", dirLogger.GetLogDir())))
		}
	}
	return errs
}

func getSelfIP(cfg *config.Configuration) string {
	addresses := cfg.Global.ServerConnector.Addresses
	if len(addresses) == 0 {
		return ""
	}
	conn, err := net.Dial("tcp", addresses[0])
	if err != nil || conn == nil {
		return ""
	}
	defer conn.Close()
	return conn.LocalAddr().String()
}

func getPodName() string {
	for _, e := range []string{"POD_NAME", "HOSTNAME"} {
		if v := os.Getenv(e); v != "" {
			return v
		}
	}
	return ""
}

// InitContextByConfig builds an SDKContext from an already-parsed Configuration,
// resolving every plugin the configuration names and starting the background
// outlier-detection executor before returning.
func InitContextByConfig(cfg *config.Configuration) (SDKContext, error) {
	startTime := time.Now()
	if err := checkLoggersDir(); err != nil {
		return nil, model.NewSDKError(model.ErrCodeAPIInvalidConfig, err, "logger init error")
	}

	ctx, err := polariscontext.NewContext(cfg, polariscontext.Private)
	if err != nil {
		return nil, err
	}

	token := model.SDKToken{
		IP:       getSelfIP(cfg),
		PID:      int32(os.Getpid()),
		UID:      strings.ToUpper(uuid.New().String()),
		PodName:  getPodName(),
		HostName: os.Getenv("HOSTNAME"),
	}
	ctx.ValueCtx.SetValue(model.ContextKeyToken, token)
	ctx.ValueCtx.SetValue(model.ContextKeyTakeEffectTime, startTime)
	log.GetBaseLogger().Infof("SDKContext %s starting, self IP %s, PID %d", token.UID, token.IP, token.PID)

	var detector *outlier.Executor
	if cfg.Provider.OutlierDetector.Enable && ctx.OutlierDetector != nil {
		detector = outlier.New(ctx)
		ctx.RegisterExecutor(detector)
		detector.SetupWork()
	}

	ctx.ValueCtx.SetValue(model.ContextKeyFinishInitTime, time.Now())
	log.GetBaseLogger().Infof("SDKContext %s init successfully", token.UID)
	return &sdkContext{ctx: ctx, detector: detector}, nil
}

// NewConfiguration returns an all-defaults Configuration, ready to customize before
// passing to InitContextByConfig.
func NewConfiguration() *config.Configuration {
	return config.NewDefaultConfiguration()
}
