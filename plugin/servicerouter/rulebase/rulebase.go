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

// Package rulebase is the bundled ServiceRouter plugin: it filters a service's
// instances down to those whose metadata matches every key/value pattern the caller
// supplied in RouteCriteria, falling back to the unfiltered list rather than routing
// to nothing when no instance matches (a zero-protect posture).
package rulebase

import (
	"github.com/dlclark/regexp2"
	apimodel "github.com/polarismesh/specification/source/go/api/v1/model"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/polarismesh/polaris-go/pkg/algorithm/match"
	"github.com/polarismesh/polaris-go/pkg/model"
	"github.com/polarismesh/polaris-go/pkg/plugin"
	"github.com/polarismesh/polaris-go/pkg/plugin/common"
	"github.com/polarismesh/polaris-go/pkg/plugin/servicerouter"
)

// PluginName is this plugin's registered name.
const PluginName = "ruleBase"

var _ servicerouter.ServiceRouter = (*Router)(nil)

func init() {
	plugin.GlobalRegistry().Register(PluginName, common.TypeServiceRouter, func() plugin.Plugin {
		return &Router{}
	})
}

// Router matches instance metadata values against regexp2 patterns, so callers can
// route by anything from an exact version string to a pattern like "v1\\..*".
type Router struct{}

func (r *Router) Type() common.Type                 { return common.TypeServiceRouter }
func (r *Router) Name() string                      { return PluginName }
func (r *Router) Init(ctx *plugin.InitContext) error { return nil }
func (r *Router) Destroy() error                     { return nil }

// GetFilteredInstances keeps only instances whose metadata matches every criteria
// entry. If the criteria is empty, or nothing matches, the original set passes
// through unchanged.
func (r *Router) GetFilteredInstances(instances model.ServiceInstances,
	criteria servicerouter.RouteCriteria) (model.ServiceInstances, error) {
	if len(criteria.Metadata) == 0 {
		return instances, nil
	}

	all := instances.GetInstances()
	matched := make([]model.Instance, 0, len(all))
	for _, inst := range all {
		if matchesAll(inst.GetMetadata(), criteria.Metadata) {
			matched = append(matched, inst)
		}
	}
	if len(matched) == 0 {
		return instances, nil
	}
	return model.NewDefaultServiceInstances(
		instances.GetService(), instances.GetNamespace(), instances.GetMetadata(), matched), nil
}

func matchesAll(instanceMeta, criteriaMeta map[string]string) bool {
	for key, pattern := range criteriaMeta {
		if match.IsMatchAll(pattern) {
			continue
		}
		value, ok := instanceMeta[key]
		if !ok {
			return false
		}
		if !matchesOne(value, pattern) {
			return false
		}
	}
	return true
}

// matchesOne delegates to match.MatchString so an exact value and a regexp2 pattern
// are both handled the way the rest of the routing stack matches metadata.
func matchesOne(value, pattern string) bool {
	condition := &apimodel.MatchString{
		Type:  apimodel.MatchString_REGEX,
		Value: wrapperspb.String(pattern),
	}
	return match.MatchString(value, condition, func(raw string) *regexp2.Regexp {
		re, err := regexp2.Compile("^"+raw+"$", regexp2.None)
		if err != nil {
			return nil
		}
		return re
	})
}
