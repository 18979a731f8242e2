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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfiguration_SetDefaultFillsEveryZeroField(t *testing.T) {
	c := &Configuration{}
	c.SetDefault()

	assert.Equal(t, DefaultAPITimeout, c.Global.API.Timeout)
	assert.Equal(t, DefaultAPIMaxRetryTimes, c.Global.API.MaxRetryTimes)
	assert.Equal(t, DefaultAPIRetryInterval, c.Global.API.RetryInterval)
	assert.Equal(t, DefaultServerConnectorProtocol, c.Global.ServerConnector.Protocol)
	assert.Equal(t, DefaultServerConnectTimeout, c.Global.ServerConnector.ConnectTimeout)
	assert.Equal(t, DefaultServerMessageTimeout, c.Global.ServerConnector.MessageTimeout)
	assert.True(t, c.Global.StatReporter.Enable)
	assert.Equal(t, DefaultStatReporterChain, c.Global.StatReporter.Chain)
	assert.True(t, c.Provider.OutlierDetector.Enable)
	assert.Equal(t, DefaultOutlierDetectorChain, c.Provider.OutlierDetector.Chain)
	assert.Equal(t, DefaultOutlierDetectorCheckPeriod, c.Provider.OutlierDetector.CheckPeriod)
}

func TestConfiguration_SetDefaultPreservesExplicitValues(t *testing.T) {
	c := &Configuration{}
	c.Global.API.Timeout = 5 * time.Second
	c.Global.API.MaxRetryTimes = 7
	c.Global.ServerConnector.Protocol = "customProtocol"

	c.SetDefault()

	assert.Equal(t, 5*time.Second, c.Global.API.Timeout)
	assert.Equal(t, 7, c.Global.API.MaxRetryTimes)
	assert.Equal(t, "customProtocol", c.Global.ServerConnector.Protocol)
}

func TestConfiguration_SetDefaultTreatsZeroMaxRetryTimesAsUnset(t *testing.T) {
	// A plain int field can't distinguish "omitted from YAML" from "explicitly set to
	// zero" - SetDefault treats both the same way, coercing to the default. Verify's
	// rejection of MaxRetryTimes < 1 therefore only ever fires against a Configuration
	// that skipped SetDefault.
	c := &Configuration{}
	c.Global.API.MaxRetryTimes = 0
	c.SetDefault()

	assert.Equal(t, DefaultAPIMaxRetryTimes, c.Global.API.MaxRetryTimes)
}

func TestNewDefaultConfiguration_IsImmediatelyValid(t *testing.T) {
	c := NewDefaultConfiguration()
	assert.NoError(t, c.Verify())
}
