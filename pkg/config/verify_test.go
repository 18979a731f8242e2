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

func TestConfiguration_VerifyRejectsZeroMaxRetryTimes(t *testing.T) {
	c := &Configuration{}
	c.Global.API.Timeout = time.Second
	c.Global.API.MaxRetryTimes = 0
	c.Global.ServerConnector.Protocol = "grpc"

	assert.Error(t, c.Verify())
}

func TestConfiguration_VerifyRejectsZeroTimeout(t *testing.T) {
	c := &Configuration{}
	c.Global.API.MaxRetryTimes = 3
	c.Global.ServerConnector.Protocol = "grpc"

	assert.Error(t, c.Verify())
}

func TestConfiguration_VerifyRejectsMissingServerConnectorProtocol(t *testing.T) {
	c := &Configuration{}
	c.Global.API.Timeout = time.Second
	c.Global.API.MaxRetryTimes = 3

	assert.Error(t, c.Verify())
}

func TestConfiguration_VerifyAcceptsDefaultedConfiguration(t *testing.T) {
	c := NewDefaultConfiguration()
	assert.NoError(t, c.Verify())
}

func TestConfiguration_VerifyNilConfigurationErrors(t *testing.T) {
	var c *Configuration
	assert.Error(t, c.Verify())
}
