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

package grpc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/polarismesh/polaris-go/pkg/model"
)

func TestRegisterRequestToProto_RequiredFields(t *testing.T) {
	req := &model.InstanceRegisterRequest{
		Service: "echo", Namespace: "default", Host: "127.0.0.1", Port: 8080,
	}
	pb := registerRequestToProto(req)
	assert.Equal(t, "echo", pb.GetService().GetValue())
	assert.Equal(t, "default", pb.GetNamespace().GetValue())
	assert.Equal(t, "127.0.0.1", pb.GetHost().GetValue())
	assert.Equal(t, uint32(8080), pb.GetPort().GetValue())
	assert.Nil(t, pb.GetHealthCheck())
}

func TestRegisterRequestToProto_OptionalFieldsOmittedWhenNil(t *testing.T) {
	req := &model.InstanceRegisterRequest{Service: "echo", Namespace: "default", Host: "127.0.0.1", Port: 8080}
	pb := registerRequestToProto(req)
	assert.Nil(t, pb.GetWeight())
	assert.Nil(t, pb.GetPriority())
	assert.Nil(t, pb.GetVersion())
	assert.Nil(t, pb.GetHealthy())
	assert.Nil(t, pb.GetIsolate())
}

func TestRegisterRequestToProto_TTLBuildsHeartbeatHealthCheck(t *testing.T) {
	req := &model.InstanceRegisterRequest{Service: "echo", Namespace: "default", Host: "127.0.0.1", Port: 8080}
	req.SetTTL(5)

	pb := registerRequestToProto(req)
	assert.Equal(t, uint32(5), pb.GetHealthCheck().GetHeartbeat().GetTtl().GetValue())
}

func TestDeregisterRequestToProto_PrefersInstanceID(t *testing.T) {
	req := &model.InstanceDeRegisterRequest{InstanceID: "inst-1", ServiceToken: "tok"}
	pb := deregisterRequestToProto(req)
	assert.Equal(t, "inst-1", pb.GetId().GetValue())
	assert.Equal(t, "tok", pb.GetServiceToken().GetValue())
}

func TestHeartbeatRequestToProto_FallsBackToQuadWhenNoInstanceID(t *testing.T) {
	req := &model.InstanceHeartbeatRequest{Service: "echo", Namespace: "default", Host: "127.0.0.1", Port: 8080}
	pb := heartbeatRequestToProto(req)
	assert.Nil(t, pb.GetId())
	assert.Equal(t, "echo", pb.GetService().GetValue())
}
