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

// Package config carries the configuration tree consumed when building a Context:
// global API/connector/reporter tunables plus the provider-side section.
package config

import "time"

// Configuration is the full configuration tree, unmarshalled from YAML.
type Configuration struct {
	Global   GlobalConfig   `yaml:"global" json:"global"`
	Provider ProviderConfig `yaml:"provider" json:"provider"`
}

// GlobalConfig holds the global.* tree.
type GlobalConfig struct {
	API             APIConfig             `yaml:"api" json:"api"`
	ServerConnector ServerConnectorConfig `yaml:"serverConnector" json:"serverConnector"`
	StatReporter    StatReporterConfig    `yaml:"statReporter" json:"statReporter"`
}

// APIConfig holds global.api.*: the Context invariants governing the provider pipeline's
// timeout budget and retry loop.
type APIConfig struct {
	// Timeout is the default per-call timeout used when a request doesn't set its own.
	Timeout time.Duration `yaml:"timeout" json:"timeout"`
	// MaxRetryTimes bounds the number of attempts the retry loop may make. Must be >= 1;
	// SetDefault replaces a configured value <= 0 with DefaultAPIMaxRetryTimes.
	MaxRetryTimes int `yaml:"maxRetryTimes" json:"maxRetryTimes"`
	// RetryInterval is the base sleep between attempts, clamped to the remaining budget.
	RetryInterval time.Duration `yaml:"retryInterval" json:"retryInterval"`
}

// ServerConnectorConfig holds global.serverConnector.*.
type ServerConnectorConfig struct {
	Protocol       string            `yaml:"protocol" json:"protocol"`
	Addresses      []string          `yaml:"addresses" json:"addresses"`
	ConnectTimeout time.Duration     `yaml:"connectTimeout" json:"connectTimeout"`
	MessageTimeout time.Duration     `yaml:"messageTimeout" json:"messageTimeout"`
	Plugin         map[string]string `yaml:"plugin" json:"plugin"`
}

// StatReporterConfig holds global.statReporter.*.
type StatReporterConfig struct {
	Enable bool     `yaml:"enable" json:"enable"`
	Chain  []string `yaml:"chain" json:"chain"`
}

// ProviderConfig holds provider.*: tunables specific to the register/deregister/heartbeat
// pipeline, as opposed to the consumer discovery path this module doesn't implement.
type ProviderConfig struct {
	// OutlierDetector selects the plugin.outlierdetection chain driving the background
	// detection executor.
	OutlierDetector OutlierDetectorConfig `yaml:"outlierDetector" json:"outlierDetector"`
}

// OutlierDetectorConfig holds provider.outlierDetector.*.
type OutlierDetectorConfig struct {
	Enable        bool          `yaml:"enable" json:"enable"`
	Chain         []string      `yaml:"chain" json:"chain"`
	CheckPeriod   time.Duration `yaml:"checkPeriod" json:"checkPeriod"`
}

// NewDefaultConfiguration returns a zero Configuration with SetDefault already applied.
func NewDefaultConfiguration() *Configuration {
	cfg := &Configuration{}
	cfg.SetDefault()
	return cfg
}
