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
	"errors"

	"github.com/hashicorp/go-multierror"
)

// Verify enforces the Context invariants the provider pipeline relies on. A Context
// built from a config that fails Verify must not be constructed.
func (c *Configuration) Verify() error {
	if c == nil {
		return errors.New("configuration is nil")
	}
	var errs error
	if err := c.Global.API.Verify(); err != nil {
		errs = multierror.Append(errs, err)
	}
	if err := c.Global.ServerConnector.Verify(); err != nil {
		errs = multierror.Append(errs, err)
	}
	return errs
}

// Verify enforces api_max_retry_times >= 1 and api_default_timeout_ms > 0.
func (a *APIConfig) Verify() error {
	var errs error
	if a.MaxRetryTimes < 1 {
		errs = multierror.Append(errs, errors.New("global.api.maxRetryTimes must be >= 1"))
	}
	if a.Timeout <= 0 {
		errs = multierror.Append(errs, errors.New("global.api.timeout must be > 0"))
	}
	return errs
}

// Verify requires a ServerConnector protocol to be named.
func (s *ServerConnectorConfig) Verify() error {
	if len(s.Protocol) == 0 {
		return errors.New("global.serverConnector.protocol must be set")
	}
	return nil
}
