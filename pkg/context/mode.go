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

// Mode controls who owns a Context's lifecycle.
type Mode int

const (
	// Private means the caller-facing API that created this Context owns it and
	// tears it down on its own teardown.
	Private Mode = iota
	// Share means this Context was created elsewhere and is only being borrowed;
	// the borrower must never destroy it.
	Share
	// Limit is the rate-limit-client variant, accepted on equal footing with
	// Private and Share wherever a mode is required.
	Limit
)

// Valid reports whether m is one of the three accepted modes.
func (m Mode) Valid() bool {
	return m == Private || m == Share || m == Limit
}

func (m Mode) String() string {
	switch m {
	case Private:
		return "Private"
	case Share:
		return "Share"
	case Limit:
		return "Limit"
	default:
		return "Unknown"
	}
}
