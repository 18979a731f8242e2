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

// Package grpc is the bundled ServerConnector plugin: a synchronous, single-target
// gRPC client for the three registration-pipeline RPCs the provider side needs.
package grpc

import (
	"context"
	"fmt"
	"time"

	apimodel "github.com/polarismesh/specification/source/go/api/v1/model"
	apiservice "github.com/polarismesh/specification/source/go/api/v1/service_manage"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/polarismesh/polaris-go/pkg/log"
	"github.com/polarismesh/polaris-go/pkg/model"
	"github.com/polarismesh/polaris-go/pkg/plugin"
	"github.com/polarismesh/polaris-go/pkg/plugin/common"
	"github.com/polarismesh/polaris-go/pkg/plugin/serverconnector"
)

// PluginName is this plugin's registered name.
const PluginName = "grpc"

var _ serverconnector.ServerConnector = (*Connector)(nil)

func init() {
	plugin.GlobalRegistry().Register(PluginName, common.TypeServerConnector, func() plugin.Plugin {
		return &Connector{}
	})
}

// Connector dials one registry server address from config and issues every RPC
// synchronously against that single connection. It does not pool, round-robin
// across addresses, or reconnect on its own; gRPC's own retry/backoff on the dial
// state covers transient disconnects.
type Connector struct {
	conn    *grpc.ClientConn
	client  apiservice.PolarisGRPCClient
	address string
}

func (c *Connector) Type() common.Type { return common.TypeServerConnector }
func (c *Connector) Name() string      { return PluginName }

// Init dials the first configured server address and blocks until the connection
// is established or defaultConnectTimeout elapses, failing Init in the latter case.
func (c *Connector) Init(ctx *plugin.InitContext) error {
	cfg := ctx.Config.Global.ServerConnector
	if len(cfg.Addresses) == 0 {
		return model.NewSDKError(model.ErrCodeAPIInvalidConfig, nil, "serverConnector requires at least one address")
	}
	c.address = cfg.Addresses[0]

	dialCtx, cancel := context.WithTimeout(context.Background(), defaultConnectTimeout)
	defer cancel()
	conn, err := grpc.DialContext(dialCtx, c.address,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithBlock())
	if err != nil {
		return model.NewSDKError(model.ErrCodeConnectError, err, "fail to dial server connector address %s", c.address)
	}
	c.conn = conn
	c.client = apiservice.NewPolarisGRPCClient(conn)
	return nil
}

func (c *Connector) Destroy() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// RegisterInstance registers one instance, treating an already-registered response
// as success rather than an error.
func (c *Connector) RegisterInstance(req *model.InstanceRegisterRequest, timeout time.Duration) (*model.InstanceRegisterResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	reqProto := registerRequestToProto(req)
	logRequest("RegisterInstance", reqProto)
	pbResp, err := c.client.RegisterInstance(ctx, reqProto)
	if err != nil {
		return nil, model.NewSDKError(model.ErrCodeNetworkError, err, "fail to registerInstance, request %s", *req)
	}
	logResponse("RegisterInstance", pbResp)

	code := pbResp.GetCode().GetValue()
	if code != uint32(apimodel.Code_ExecuteSuccess) && code != uint32(apimodel.Code_ExistedResource) {
		return nil, serverError(code, pbResp.GetInfo().GetValue(), "registerInstance", req)
	}
	return &model.InstanceRegisterResponse{
		InstanceID: pbResp.GetInstance().GetId().GetValue(),
		Existed:    code == uint32(apimodel.Code_ExistedResource),
	}, nil
}

// DeregisterInstance deregisters one instance, treating a not-found response as
// success since the end state the caller wants is already true.
func (c *Connector) DeregisterInstance(req *model.InstanceDeRegisterRequest, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	reqProto := deregisterRequestToProto(req)
	logRequest("DeregisterInstance", reqProto)
	pbResp, err := c.client.DeregisterInstance(ctx, reqProto)
	if err != nil {
		return model.NewSDKError(model.ErrCodeNetworkError, err, "fail to deregisterInstance, request %s", *req)
	}
	logResponse("DeregisterInstance", pbResp)

	code := pbResp.GetCode().GetValue()
	if code != uint32(apimodel.Code_ExecuteSuccess) && code != uint32(apimodel.Code_NotFoundResource) {
		return serverError(code, pbResp.GetInfo().GetValue(), "deregisterInstance", req)
	}
	return nil
}

// InstanceHeartbeat reports one heartbeat for an already-registered instance.
func (c *Connector) InstanceHeartbeat(req *model.InstanceHeartbeatRequest, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	reqProto := heartbeatRequestToProto(req)
	logRequest("Heartbeat", reqProto)
	pbResp, err := c.client.Heartbeat(ctx, reqProto)
	if err != nil {
		return model.NewSDKError(model.ErrCodeNetworkError, err, "fail to heartbeat, request %s", *req)
	}
	logResponse("Heartbeat", pbResp)

	code := pbResp.GetCode().GetValue()
	if code != uint32(apimodel.Code_ExecuteSuccess) {
		return serverError(code, pbResp.GetInfo().GetValue(), "heartbeat", req)
	}
	return nil
}

// serverError classifies a non-success server code the way the wider codebase does:
// codes are laid out in the form <http-like-status>000+detail, so dividing by 1000
// recovers the status class. The 500 class is a server-side failure; anything else,
// other 5xx classes included, is treated as a user/request error.
func serverError(code uint32, info, op string, req fmt.Stringer) error {
	errMsg := fmt.Sprintf("fail to %s, request %s, server code %d, reason %s", op, req, code, info)
	if code/1000 == 500 {
		return model.NewSDKError(model.ErrCodeServerException, nil, errMsg)
	}
	return model.NewSDKError(model.ErrCodeServerUserError, nil, errMsg)
}

func logRequest(op string, req fmt.Stringer) {
	if log.GetBaseLogger().IsLevelEnabled(log.DebugLog) {
		log.GetBaseLogger().Debugf("%s request: %s", op, req)
	}
}

func logResponse(op string, resp fmt.Stringer) {
	if log.GetBaseLogger().IsLevelEnabled(log.DebugLog) {
		log.GetBaseLogger().Debugf("%s response: %s", op, resp)
	}
}
