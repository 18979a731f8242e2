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

package rulebase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/polarismesh/polaris-go/pkg/model"
	"github.com/polarismesh/polaris-go/pkg/plugin/servicerouter"
)

func instances(metas ...map[string]string) model.ServiceInstances {
	list := make([]model.Instance, 0, len(metas))
	for i, m := range metas {
		list = append(list, &model.DefaultInstance{ID: string(rune('a' + i)), Metadata: m})
	}
	return model.NewDefaultServiceInstances("svc", "ns", nil, list)
}

func TestRouter_EmptyCriteriaPassesThrough(t *testing.T) {
	r := &Router{}
	in := instances(map[string]string{"version": "v1"})

	out, err := r.GetFilteredInstances(in, servicerouter.RouteCriteria{})
	assert.NoError(t, err)
	assert.Same(t, in, out)
}

func TestRouter_ExactMatchFilters(t *testing.T) {
	r := &Router{}
	in := instances(
		map[string]string{"version": "v1"},
		map[string]string{"version": "v2"},
	)

	out, err := r.GetFilteredInstances(in, servicerouter.RouteCriteria{Metadata: map[string]string{"version": "v1"}})
	assert.NoError(t, err)
	assert.Len(t, out.GetInstances(), 1)
	assert.Equal(t, "v1", out.GetInstances()[0].GetMetadata()["version"])
}

func TestRouter_RegexPatternMatches(t *testing.T) {
	r := &Router{}
	in := instances(
		map[string]string{"version": "v1.2"},
		map[string]string{"version": "v2.0"},
	)

	out, err := r.GetFilteredInstances(in, servicerouter.RouteCriteria{Metadata: map[string]string{"version": `v1\..*`}})
	assert.NoError(t, err)
	assert.Len(t, out.GetInstances(), 1)
}

func TestRouter_MissingKeyExcludesInstance(t *testing.T) {
	r := &Router{}
	in := instances(map[string]string{"region": "us"})

	out, err := r.GetFilteredInstances(in, servicerouter.RouteCriteria{Metadata: map[string]string{"version": "v1"}})
	assert.NoError(t, err)
	assert.Same(t, in, out, "no match must fall back to the unfiltered set rather than an empty one")
}

func TestRouter_NoMatchesFallsBackToUnfiltered(t *testing.T) {
	r := &Router{}
	in := instances(map[string]string{"version": "v3"})

	out, err := r.GetFilteredInstances(in, servicerouter.RouteCriteria{Metadata: map[string]string{"version": "v1"}})
	assert.NoError(t, err)
	assert.Same(t, in, out)
}
