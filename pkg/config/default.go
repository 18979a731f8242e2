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

package config

import "time"

const (
	// DefaultAPITimeout is used when neither a request nor the config sets a timeout.
	DefaultAPITimeout time.Duration = 1 * time.Second
	// DefaultAPIMaxRetryTimes is the retry budget's default attempt count.
	DefaultAPIMaxRetryTimes int = 3
	// DefaultAPIRetryInterval is the default inter-attempt sleep, before clamping.
	DefaultAPIRetryInterval time.Duration = 500 * time.Millisecond

	// DefaultServerConnectTimeout bounds how long dialing the server connector may take.
	DefaultServerConnectTimeout time.Duration = 500 * time.Millisecond
	// DefaultServerMessageTimeout bounds a single RPC when the caller doesn't override it.
	DefaultServerMessageTimeout time.Duration = 1500 * time.Millisecond

	// DefaultOutlierDetectorCheckPeriod is the executor's re-arm interval (spec: 1000ms).
	DefaultOutlierDetectorCheckPeriod time.Duration = 1 * time.Second
)

// DefaultServerConnectorProtocol names the sole ServerConnector plugin this module ships.
var DefaultServerConnectorProtocol = "grpc"

// DefaultStatReporterChain names the sole StatReporter plugin this module ships.
var DefaultStatReporterChain = []string{"prometheus"}

// DefaultOutlierDetectorChain names the sole OutlierDetector plugin this module ships.
var DefaultOutlierDetectorChain = []string{"errorRate"}

// SetDefault fills every zero-valued field with its default, recursively.
func (c *Configuration) SetDefault() {
	c.Global.SetDefault()
	c.Provider.SetDefault()
}

// SetDefault fills GlobalConfig's zero fields.
func (g *GlobalConfig) SetDefault() {
	g.API.SetDefault()
	g.ServerConnector.SetDefault()
	g.StatReporter.SetDefault()
}

// SetDefault fills APIConfig's zero fields.
func (a *APIConfig) SetDefault() {
	if a.Timeout <= 0 {
		a.Timeout = DefaultAPITimeout
	}
	if a.MaxRetryTimes <= 0 {
		a.MaxRetryTimes = DefaultAPIMaxRetryTimes
	}
	if a.RetryInterval <= 0 {
		a.RetryInterval = DefaultAPIRetryInterval
	}
}

// SetDefault fills ServerConnectorConfig's zero fields.
func (s *ServerConnectorConfig) SetDefault() {
	if len(s.Protocol) == 0 {
		s.Protocol = DefaultServerConnectorProtocol
	}
	if s.ConnectTimeout <= 0 {
		s.ConnectTimeout = DefaultServerConnectTimeout
	}
	if s.MessageTimeout <= 0 {
		s.MessageTimeout = DefaultServerMessageTimeout
	}
}

// SetDefault fills StatReporterConfig's zero fields.
func (s *StatReporterConfig) SetDefault() {
	s.Enable = true
	if len(s.Chain) == 0 {
		s.Chain = DefaultStatReporterChain
	}
}

// SetDefault fills ProviderConfig's zero fields.
func (p *ProviderConfig) SetDefault() {
	p.OutlierDetector.SetDefault()
}

// SetDefault fills OutlierDetectorConfig's zero fields.
func (o *OutlierDetectorConfig) SetDefault() {
	o.Enable = true
	if len(o.Chain) == 0 {
		o.Chain = DefaultOutlierDetectorChain
	}
	if o.CheckPeriod <= 0 {
		o.CheckPeriod = DefaultOutlierDetectorCheckPeriod
	}
}
