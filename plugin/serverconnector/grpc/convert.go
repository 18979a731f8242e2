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
	apiservice "github.com/polarismesh/specification/source/go/api/v1/service_manage"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/polarismesh/polaris-go/pkg/model"
)

func registerRequestToProto(req *model.InstanceRegisterRequest) *apiservice.Instance {
	pbIns := &apiservice.Instance{
		Service:   wrapperspb.String(req.Service),
		Namespace: wrapperspb.String(req.Namespace),
		Host:      wrapperspb.String(req.Host),
		Port:      wrapperspb.UInt32(uint32(req.Port)),
		Metadata:  req.Metadata,
	}
	if req.ServiceToken != "" {
		pbIns.ServiceToken = wrapperspb.String(req.ServiceToken)
	}
	if req.Protocol != nil {
		pbIns.Protocol = wrapperspb.String(*req.Protocol)
	}
	if req.Weight != nil {
		pbIns.Weight = wrapperspb.UInt32(uint32(*req.Weight))
	}
	if req.Priority != nil {
		pbIns.Priority = wrapperspb.UInt32(uint32(*req.Priority))
	}
	if req.Version != nil {
		pbIns.Version = wrapperspb.String(*req.Version)
	}
	if req.Healthy != nil {
		pbIns.Healthy = wrapperspb.Bool(*req.Healthy)
	}
	if req.Isolate != nil {
		pbIns.Isolate = wrapperspb.Bool(*req.Isolate)
	}
	if req.TTL != nil {
		pbIns.HealthCheck = &apiservice.HealthCheck{
			Type: apiservice.HealthCheck_HEARTBEAT,
			Heartbeat: &apiservice.HeartbeatHealthCheck{
				Ttl: wrapperspb.UInt32(uint32(*req.TTL)),
			},
		}
	}
	return pbIns
}

func deregisterRequestToProto(req *model.InstanceDeRegisterRequest) *apiservice.Instance {
	pbIns := &apiservice.Instance{
		Service:   wrapperspb.String(req.Service),
		Namespace: wrapperspb.String(req.Namespace),
		Host:      wrapperspb.String(req.Host),
		Port:      wrapperspb.UInt32(uint32(req.Port)),
	}
	if req.InstanceID != "" {
		pbIns.Id = wrapperspb.String(req.InstanceID)
	}
	if req.ServiceToken != "" {
		pbIns.ServiceToken = wrapperspb.String(req.ServiceToken)
	}
	return pbIns
}

func heartbeatRequestToProto(req *model.InstanceHeartbeatRequest) *apiservice.Instance {
	pbIns := &apiservice.Instance{
		Service:   wrapperspb.String(req.Service),
		Namespace: wrapperspb.String(req.Namespace),
		Host:      wrapperspb.String(req.Host),
		Port:      wrapperspb.UInt32(uint32(req.Port)),
	}
	if req.InstanceID != "" {
		pbIns.Id = wrapperspb.String(req.InstanceID)
	}
	if req.ServiceToken != "" {
		pbIns.ServiceToken = wrapperspb.String(req.ServiceToken)
	}
	return pbIns
}
