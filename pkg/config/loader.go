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

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v2"
)

// DefaultConfigPath is where NewConfigurationFromDefaultFile looks when the caller
// doesn't have a config file of its own.
const DefaultConfigPath = "~/polaris/provider.yaml"

// NewConfigurationFromFile loads and defaults a Configuration from a YAML file on disk.
func NewConfigurationFromFile(path string) (*Configuration, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Clean(expanded))
	if err != nil {
		return nil, err
	}
	return NewConfigurationFromBytes(data)
}

// NewConfigurationFromBytes unmarshals YAML content into a defaulted Configuration.
func NewConfigurationFromBytes(data []byte) (*Configuration, error) {
	cfg := &Configuration{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.SetDefault()
	return cfg, nil
}

// NewConfigurationFromDefaultFile loads from DefaultConfigPath, falling back to an
// all-defaults Configuration if the file doesn't exist.
func NewConfigurationFromDefaultFile() (*Configuration, error) {
	expanded, err := homedir.Expand(DefaultConfigPath)
	if err != nil {
		return nil, err
	}
	if _, statErr := os.Stat(expanded); os.IsNotExist(statErr) {
		return NewDefaultConfiguration(), nil
	}
	return NewConfigurationFromFile(DefaultConfigPath)
}
