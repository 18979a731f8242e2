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

package context

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceContext_RefCounting(t *testing.T) {
	sc := &ServiceContext{}
	assert.Equal(t, int32(0), sc.RefCount())

	sc.IncrementRef()
	sc.IncrementRef()
	assert.Equal(t, int32(2), sc.RefCount())

	sc.DecrementRef()
	assert.Equal(t, int32(1), sc.RefCount())
}

func TestMode_Valid(t *testing.T) {
	assert.True(t, Private.Valid())
	assert.True(t, Share.Valid())
	assert.True(t, Limit.Valid())
	assert.False(t, Mode(99).Valid())
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "Private", Private.String())
	assert.Equal(t, "Share", Share.String())
	assert.Equal(t, "Limit", Limit.String())
	assert.Equal(t, "Unknown", Mode(99).String())
}
