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

// Package register blank-imports every concrete plugin bundled with this module so
// that importing it is enough to make them available through the plugin registry.
package register

import (
	_ "github.com/polarismesh/polaris-go/plugin/circuitbreaker/errorrate"
	_ "github.com/polarismesh/polaris-go/plugin/loadbalancer/random"
	_ "github.com/polarismesh/polaris-go/plugin/loadbalancer/ringhash"
	_ "github.com/polarismesh/polaris-go/plugin/localregistry/inmemory"
	_ "github.com/polarismesh/polaris-go/plugin/logger/zaplog"
	_ "github.com/polarismesh/polaris-go/plugin/outlierdetection/errorrate"
	_ "github.com/polarismesh/polaris-go/plugin/serverconnector/grpc"
	_ "github.com/polarismesh/polaris-go/plugin/servicerouter/rulebase"
	_ "github.com/polarismesh/polaris-go/plugin/statreporter/prometheus"
	_ "github.com/polarismesh/polaris-go/plugin/weightadjuster/ratedelay"
)
