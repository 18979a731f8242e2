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

package model

import (
	"fmt"
	"time"

	"github.com/modern-go/reflect2"

	"github.com/hashicorp/go-multierror"
)

//ServiceMetadata 服务元数据信息
type ServiceMetadata interface {
	//获取服务名
	GetService() string
	//获取命名空间
	GetNamespace() string
	//获取元数据信息
	GetMetadata() map[string]string
}

//服务元数据的ToString操作
func ToStringService(svc ServiceMetadata, printMeta bool) string {
	if reflect2.IsNil(svc) {
		return "nil"
	}
	if printMeta {
		return fmt.Sprintf("{service: %s, namespace: %s, metadata: %s}",
			svc.GetService(), svc.GetNamespace(), svc.GetMetadata())
	}
	return fmt.Sprintf("{service: %s, namespace: %s}", svc.GetService(), svc.GetNamespace())
}

//ServiceInstances 一个ServiceContext持有的某个服务的实例缓存
type ServiceInstances interface {
	ServiceMetadata
	//获取服务实例列表
	GetInstances() []Instance
	//获取全部实例总权重
	GetTotalWeight() int
	//获取单个服务实例
	GetInstance(string) Instance
	//数据是否来自于缓存文件
	IsCacheLoaded() bool
}

//断路器状态
type Status int

const (
	//断路器已打开，代表节点已经被熔断
	Open Status = 1
	//断路器半开，节点处于刚熔断恢复，只允许少量请求通过
	HalfOpen Status = 2
	//断路器关闭，节点处于正常工作状态
	Close Status = 3
)

// String toString method
func (s Status) String() string {
	switch s {
	case Open:
		return "open"
	case HalfOpen:
		return "half-open"
	case Close:
		return "close"
	}
	return "unknown"
}

// HealthCheckStatus 健康探测状态
type HealthCheckStatus int

const (
	// Healthy 节点探测结果已经恢复健康, 代表可以放开一部分流量
	Healthy HealthCheckStatus = 1
	// Dead 节点仍然不可用
	Dead HealthCheckStatus = 2
)

//熔断器状态管理器
type CircuitBreakerStatus interface {
	//标识被哪个熔断器熔断
	GetCircuitBreaker() string
	//熔断状态
	GetStatus() Status
	//状态转换的时间
	GetStartTime() time.Time
	//是否可以分配请求
	IsAvailable() bool
	//执行请求分配
	Allocate() bool
	//获取进入半开状态之后分配的请求数
	GetRequestsAfterHalfOpen() int32
	//获取进入半开状态之后的失败请求数
	GetFailRequestsAfterHalfOpen() int32
	//添加半开状态下面的请求数
	AddRequestCountAfterHalfOpen(n int32, success bool) int32
	//获取分配了最后配额的时间
	GetFinalAllocateTimeInt64() int64
	//获取状态转换锁，主要是避免状态重复发生转变
	AcquireStatusLock() bool
	//获取在半开之后，分配出去的请求数
	AllocatedRequestsAfterHalfOpen() int32
}

// ActiveDetectStatus 健康探测管理器，记录outlier detection最近一次探测结果
type ActiveDetectStatus interface {
	// GetStatus 健康探测结果状态
	GetStatus() HealthCheckStatus
	// GetStartTime 状态转换的时间
	GetStartTime() time.Time
}

//服务实例信息
type Instance interface {
	//实例所在命名空间
	GetNamespace() string
	//实例所在服务名
	GetService() string
	//服务实例唯一标识
	GetId() string
	//实例的域名/IP信息
	GetHost() string
	//实例的监听端口
	GetPort() uint32
	//服务实例的协议
	GetProtocol() string
	//实例版本号
	GetVersion() string
	//实例静态权重值
	GetWeight() int
	//实例优先级信息
	GetPriority() uint32
	//实例元数据信息
	GetMetadata() map[string]string
	//实例逻辑分区
	GetLogicSet() string
	//实例的断路器状态：打开（被熔断）、半开（探测恢复）、关闭（正常运行）
	GetCircuitBreakerStatus() CircuitBreakerStatus
	//实例是否健康，基于服务端返回的健康数据
	IsHealthy() bool
	//实例是否已经被手动隔离
	IsIsolated() bool
	//实例是否启动了健康检查
	IsEnableHealthCheck() bool
	//获取实例的修订版本信息，用于确认服务实例是否发生变更
	GetRevision() string
}

//InstanceWeight 节点权重调整结果
type InstanceWeight struct {
	//实例ID
	InstanceID string
	//实例动态权重值
	DynamicWeight uint32
}

//调用结果状态
type RetStatus int

const (
	//调用成功
	RetSuccess RetStatus = 1
	//调用失败
	RetFail RetStatus = 2
)

//API调用的唯一标识
type APICallKey struct {
	//调用的API接口名字
	APIName ApiOperation
	//必选，本地服务调用的错误码
	RetCode ErrCode
	//延迟的范围
	DelayRange ApiDelayRange
}

//sdk api调用结果：由stat.Recorder计时并构造，通过SetSuccess/SetFail写入结果与时延
type APICallResult struct {
	EmptyInstanceGauge
	APICallKey
	//必选，本地服务调用的状态，正常or异常
	RetStatus RetStatus
	//必选，调用延时
	delay time.Duration
}

//设置成功的调用结果
func (a *APICallResult) SetSuccess(delay time.Duration) {
	a.RetStatus = RetSuccess
	a.RetCode = ErrCodeSuccess
	a.SetDelay(delay)
}

//设置失败的调用结果
func (a *APICallResult) SetFail(retCode ErrCode, delay time.Duration) {
	a.RetStatus = RetFail
	a.RetCode = retCode
	a.SetDelay(delay)
}

//获取调用api
func (a *APICallResult) GetAPI() ApiOperation {
	return a.APICallKey.APIName
}

//实例的调用返回状态
func (a *APICallResult) GetRetStatus() RetStatus {
	return a.RetStatus
}

//实例的返回码
func (a *APICallResult) GetRetCode() *int32 {
	r := int32(a.RetCode)
	return &r
}

//实例的返回码
func (a *APICallResult) GetRetCodeValue() int32 {
	return int32(a.RetCode)
}

//调用时延
func (a *APICallResult) GetDelay() *time.Duration {
	return &a.delay
}

//设置调用时延
func (a *APICallResult) SetDelay(delay time.Duration) {
	a.delay = delay
	a.DelayRange = GetApiDelayRange(a.delay)
}

//返回延迟范围
func (a *APICallResult) GetDelayRange() ApiDelayRange {
	return a.DelayRange
}

//InstanceHeartbeatRequest 心跳上报请求
type InstanceHeartbeatRequest struct {
	//必选，服务名
	Service string
	//必选，服务访问Token
	ServiceToken string
	//必选，命名空间
	Namespace string
	//必选，服务实例ID
	InstanceID string
	//必选，服务实例ip
	Host string
	//必选，服务实例端口
	Port int
	//可选，单次查询超时时间，默认直接获取全局的超时配置
	Timeout *time.Duration
	//可选，重试次数，默认直接获取全局的重试配置
	RetryCount *int
}

//打印消息内容
func (g InstanceHeartbeatRequest) String() string {
	return fmt.Sprintf("{service=%s, namespace=%s, host=%s, port=%d, instanceID=%s}",
		g.Service, g.Namespace, g.Host, g.Port, g.InstanceID)
}

//设置超时时间
func (g *InstanceHeartbeatRequest) SetTimeout(duration time.Duration) {
	g.Timeout = ToDurationPtr(duration)
}

//设置重试次数
func (g *InstanceHeartbeatRequest) SetRetryCount(retryCount int) {
	g.RetryCount = &retryCount
}

//获取超时值指针
func (g *InstanceHeartbeatRequest) GetTimeoutPtr() *time.Duration {
	return g.Timeout
}

//获取重试次数指针
func (g *InstanceHeartbeatRequest) GetRetryCountPtr() *int {
	return g.RetryCount
}

//校验InstanceHeartbeatRequest：带InstanceID时，连同serviceToken一起即可标识实例，
//否则退化为完整的service/namespace/host/port四元组校验
func (i *InstanceHeartbeatRequest) Validate() error {
	if nil == i {
		return NewSDKError(ErrCodeAPIInvalidArgument, nil, "InstanceHeartbeatRequest can not be nil")
	}
	var errs error
	if len(i.InstanceID) > 0 {
		if len(i.ServiceToken) == 0 {
			errs = multierror.Append(errs, fmt.Errorf("InstanceHeartbeatRequest: serviceToken should not be empty"))
			return NewSDKError(ErrCodeAPIInvalidArgument, errs, "fail to validate InstanceHeartbeatRequest: ")
		}
		return nil
	}
	if len(i.Service) == 0 {
		errs = multierror.Append(errs, fmt.Errorf("InstanceHeartbeatRequest:"+
			" serviceName should not be empty when instanceId is empty"))
	}
	if len(i.Namespace) == 0 {
		errs = multierror.Append(errs, fmt.Errorf("InstanceHeartbeatRequest:"+
			" namespace should not be empty when instanceId is empty"))
	}
	if len(i.ServiceToken) == 0 {
		errs = multierror.Append(errs, fmt.Errorf("InstanceHeartbeatRequest: serviceToken should not be empty"))
	}
	if len(i.Host) == 0 {
		errs = multierror.Append(errs, fmt.Errorf("InstanceHeartbeatRequest:"+
			" host should not be empty when instanceId is empty"))
	}
	if i.Port <= 0 || i.Port >= 65536 {
		errs = multierror.Append(errs, fmt.Errorf("InstanceHeartbeatRequest: port should be in range (0, 65536)"))
	}
	if nil != errs {
		return NewSDKError(ErrCodeAPIInvalidArgument, errs, "fail to validate InstanceHeartbeatRequest: ")
	}
	return nil
}

//InstanceDeRegisterRequest 反注册服务请求
type InstanceDeRegisterRequest struct {
	//服务名
	Service string
	//服务访问Token
	ServiceToken string
	//命名空间
	Namespace string
	//服务实例ID
	InstanceID string
	//服务实例ip
	Host string
	//服务实例端口
	Port int
	//可选，单次查询超时时间，默认直接获取全局的超时配置
	Timeout *time.Duration
	//可选，重试次数，默认直接获取全局的重试配置
	RetryCount *int
}

//打印消息内容
func (g InstanceDeRegisterRequest) String() string {
	return fmt.Sprintf("{service=%s, namespace=%s, host=%s, port=%d, instanceID=%s}",
		g.Service, g.Namespace, g.Host, g.Port, g.InstanceID)
}

//设置超时时间
func (g *InstanceDeRegisterRequest) SetTimeout(duration time.Duration) {
	g.Timeout = ToDurationPtr(duration)
}

//设置重试次数
func (g *InstanceDeRegisterRequest) SetRetryCount(retryCount int) {
	g.RetryCount = &retryCount
}

//获取超时值指针
func (g *InstanceDeRegisterRequest) GetTimeoutPtr() *time.Duration {
	return g.Timeout
}

//获取重试次数指针
func (g *InstanceDeRegisterRequest) GetRetryCountPtr() *int {
	return g.RetryCount
}

//校验InstanceDeRegisterRequest，规则与心跳请求一致
func (i *InstanceDeRegisterRequest) Validate() error {
	if nil == i {
		return NewSDKError(ErrCodeAPIInvalidArgument, nil, "InstanceDeRegisterRequest can not be nil")
	}
	var errs error
	if len(i.InstanceID) > 0 {
		if len(i.ServiceToken) == 0 {
			errs = multierror.Append(errs, fmt.Errorf("InstanceDeRegisterRequest: serviceToken should not be empty"))
			return NewSDKError(ErrCodeAPIInvalidArgument, errs, "fail to validate InstanceDeRegisterRequest: ")
		}
		return nil
	}
	if len(i.Service) == 0 {
		errs = multierror.Append(errs, fmt.Errorf("InstanceDeRegisterRequest:"+
			" serviceName should not be empty when instanceId is empty"))
	}
	if len(i.Namespace) == 0 {
		errs = multierror.Append(errs, fmt.Errorf("InstanceDeRegisterRequest:"+
			" namespace should not be empty when instanceId is empty"))
	}
	if len(i.ServiceToken) == 0 {
		errs = multierror.Append(errs, fmt.Errorf("InstanceDeRegisterRequest: serviceToken should not be empty"))
	}
	if len(i.Host) == 0 {
		errs = multierror.Append(errs, fmt.Errorf("InstanceDeRegisterRequest:"+
			" host should not be empty when instanceId is empty"))
	}
	if i.Port <= 0 || i.Port >= 65536 {
		errs = multierror.Append(errs, fmt.Errorf("InstanceDeRegisterRequest: port should be in range (0, 65536)"))
	}
	if nil != errs {
		return NewSDKError(ErrCodeAPIInvalidArgument, errs, "fail to validate InstanceDeRegisterRequest: ")
	}
	return nil
}

const (
	//最小权重值
	MinWeight int = 0
	//最大权重值
	MaxWeight int = 10000
	//最小优先级
	MinPriority = 0
	//最大优先级
	MaxPriority = 9
)

//InstanceRegisterRequest 注册服务请求
type InstanceRegisterRequest struct {
	//必选，服务名
	Service string
	//必选，服务访问Token
	ServiceToken string
	//必选，命名空间
	Namespace string
	//必选，服务监听host，支持IPv6地址
	Host string
	//必选，服务实例监听port
	Port int

	//以下字段可选，默认nil表示客户端不配置，使用服务端配置
	//服务协议
	Protocol *string
	//服务权重，默认100，范围0-10000
	Weight *int
	//实例优先级，默认为0，数值越小，优先级越高
	Priority *int
	//实例提供服务版本号
	Version *string
	//用户自定义metadata信息
	Metadata map[string]string
	//该服务实例是否健康，默认健康
	Healthy *bool
	//该服务实例是否隔离，默认不隔离
	Isolate *bool
	//ttl超时时间，如果节点要调用heartbeat上报，则必须填写，单位：秒
	TTL *int

	//可选，单次查询超时时间，默认直接获取全局的超时配置
	Timeout *time.Duration
	//可选，重试次数，默认直接获取全局的重试配置
	RetryCount *int
}

//打印消息内容
func (g InstanceRegisterRequest) String() string {
	return fmt.Sprintf("{service=%s, namespace=%s, host=%s, port=%d}", g.Service, g.Namespace, g.Host, g.Port)
}

//设置实例是否健康
func (g *InstanceRegisterRequest) SetHealthy(healthy bool) {
	g.Healthy = &healthy
}

//设置实例是否隔离
func (g *InstanceRegisterRequest) SetIsolate(isolate bool) {
	g.Isolate = &isolate
}

//设置超时时间
func (g *InstanceRegisterRequest) SetTimeout(duration time.Duration) {
	g.Timeout = ToDurationPtr(duration)
}

//设置重试次数
func (g *InstanceRegisterRequest) SetRetryCount(retryCount int) {
	g.RetryCount = &retryCount
}

//设置服务实例TTL
func (g *InstanceRegisterRequest) SetTTL(ttl int) {
	g.TTL = &ttl
}

//获取超时值指针
func (g *InstanceRegisterRequest) GetTimeoutPtr() *time.Duration {
	return g.Timeout
}

//获取重试次数指针
func (g *InstanceRegisterRequest) GetRetryCountPtr() *int {
	return g.RetryCount
}

//校验元数据的key是否为空
func validateMetadata(prefix string, metadata map[string]string) error {
	if len(metadata) > 0 {
		for key := range metadata {
			if len(key) == 0 {
				return fmt.Errorf("%s: metadata has empty key", prefix)
			}
		}
	}
	return nil
}

//校验InstanceRegisterRequest
func (g *InstanceRegisterRequest) Validate() error {
	if nil == g {
		return NewSDKError(ErrCodeAPIInvalidArgument, nil, "InstanceRegisterRequest can not be nil")
	}
	var errs error
	if len(g.Service) == 0 {
		errs = multierror.Append(errs, fmt.Errorf("InstanceRegisterRequest: serviceName should not be empty"))
	}
	if len(g.Namespace) == 0 {
		errs = multierror.Append(errs, fmt.Errorf("InstanceRegisterRequest: namespace should not be empty"))
	}
	if len(g.ServiceToken) == 0 {
		errs = multierror.Append(errs, fmt.Errorf("InstanceRegisterRequest: serviceToken should not be empty"))
	}
	if len(g.Host) == 0 {
		errs = multierror.Append(errs, fmt.Errorf("InstanceRegisterRequest: host should not be empty"))
	}
	if g.Port <= 0 || g.Port >= 65536 {
		errs = multierror.Append(errs, fmt.Errorf("InstanceRegisterRequest: port should be in range (0, 65536)"))
	}
	if nil != g.Weight && (*g.Weight < MinWeight || *g.Weight > MaxWeight) {
		errs = multierror.Append(errs,
			fmt.Errorf("InstanceRegisterRequest: weight should be in range [%d, %d]", MinWeight, MaxWeight))
	}
	if nil != g.Priority && (*g.Priority < MinPriority || *g.Priority > MaxPriority) {
		errs = multierror.Append(errs,
			fmt.Errorf("InstanceRegisterRequest: priority should be in range [%d, %d]", MinPriority, MaxPriority))
	}
	if err := validateMetadata("InstanceRegisterRequest", g.Metadata); nil != err {
		errs = multierror.Append(errs, err)
	}
	if nil != errs {
		return NewSDKError(ErrCodeAPIInvalidArgument, errs, "fail to validate InstanceRegisterRequest: ")
	}
	return nil
}

//InstanceRegisterResponse 注册服务应答
type InstanceRegisterResponse struct {
	//实例ID
	InstanceID string
	//实例是否已存在
	Existed bool
}
