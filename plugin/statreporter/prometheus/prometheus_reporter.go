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

// Package prometheus is the bundled StatReporter plugin: it exposes every recorded
// API call as prometheus counters/histograms rather than pushing them anywhere.
package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/polarismesh/polaris-go/pkg/model"
	"github.com/polarismesh/polaris-go/pkg/plugin"
	"github.com/polarismesh/polaris-go/pkg/plugin/common"
	"github.com/polarismesh/polaris-go/pkg/plugin/statreporter"
)

// PluginName is this plugin's registered name.
const PluginName = "prometheus"

var _ statreporter.StatReporter = (*Reporter)(nil)

func init() {
	plugin.GlobalRegistry().Register(PluginName, common.TypeStatReporter, func() plugin.Plugin {
		return &Reporter{}
	})
}

// Reporter counts and times every API call by (api, return code).
type Reporter struct {
	registry  *prometheus.Registry
	callTotal *prometheus.CounterVec
	callDelay *prometheus.HistogramVec
}

func (r *Reporter) Type() common.Type { return common.TypeStatReporter }
func (r *Reporter) Name() string      { return PluginName }

// Init registers the metric families against a fresh, plugin-owned registry.
func (r *Reporter) Init(ctx *plugin.InitContext) error {
	r.registry = prometheus.NewRegistry()
	r.callTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "polaris_provider_api_total",
		Help: "total provider API calls by api name and return code",
	}, []string{"api", "ret_code"})
	r.callDelay = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "polaris_provider_api_delay_seconds",
		Help:    "provider API call latency by api name and return code",
		Buckets: prometheus.DefBuckets,
	}, []string{"api", "ret_code"})
	r.registry.MustRegister(r.callTotal, r.callDelay)
	return nil
}

// ReportStat forwards one completed API call's gauge to the counter/histogram pair.
func (r *Reporter) ReportStat(metricType model.MetricType, gauge model.InstanceGauge) error {
	if metricType != model.SDKAPIStat {
		return nil
	}
	apiCall, ok := gauge.(*model.APICallResult)
	if !ok {
		return nil
	}
	labels := prometheus.Labels{
		"api":      apiCall.GetAPI().String(),
		"ret_code": model.ErrCodeToString(model.ErrCode(apiCall.GetRetCodeValue())),
	}
	r.callTotal.With(labels).Inc()
	if delay := apiCall.GetDelay(); delay != nil {
		r.callDelay.With(labels).Observe(delay.Seconds())
	}
	return nil
}

// Registry exposes the prometheus registry for an embedding process to serve /metrics.
func (r *Reporter) Registry() *prometheus.Registry {
	return r.registry
}

// Destroy is a no-op: the registry is garbage-collected with the plugin.
func (r *Reporter) Destroy() error {
	return nil
}
