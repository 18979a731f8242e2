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

// Package ringhash is the bundled consistent-hash (Ketama-style) LoadBalancer plugin:
// callers that supply a Criteria.HashKey or HashValue land on the same instance as
// long as the ring's membership doesn't change around them.
package ringhash

import (
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/polarismesh/polaris-go/pkg/algorithm/hash"
	"github.com/polarismesh/polaris-go/pkg/model"
	"github.com/polarismesh/polaris-go/pkg/plugin"
	"github.com/polarismesh/polaris-go/pkg/plugin/common"
	"github.com/polarismesh/polaris-go/pkg/plugin/loadbalancer"
)

// PluginName is this plugin's registered name.
const PluginName = "ringHash"

// pointsPerInstance is how many virtual ring points an instance of weight 100 gets;
// the count scales linearly with weight, with a floor of one point per weighted instance.
const pointsPerInstance = 10

var _ loadbalancer.LoadBalancer = (*Balancer)(nil)

func init() {
	plugin.GlobalRegistry().Register(PluginName, common.TypeLoadBalancer, func() plugin.Plugin {
		return &Balancer{}
	})
}

type ringPoint struct {
	hash     uint64
	instance model.Instance
}

// Balancer builds the hash ring fresh on every call; the instance list is expected
// to be small enough (per-service membership) that this is cheap relative to an RPC.
type Balancer struct {
	hashFunc hash.HashFuncWithSeed
}

func (b *Balancer) Type() common.Type             { return common.TypeLoadBalancer }
func (b *Balancer) Name() string                  { return PluginName }
func (b *Balancer) LBType() plugin.LoadBalanceType { return loadbalancer.LBRingHash }
func (b *Balancer) Destroy() error                 { return nil }

func (b *Balancer) Init(ctx *plugin.InitContext) error {
	hashFunc, err := hash.GetHashFunc(hash.DefaultHashFuncName)
	if err != nil {
		return err
	}
	b.hashFunc = hashFunc
	return nil
}

// sum64 hashes buf through the configured hash.HashFuncWithSeed, resolving it lazily
// if Init was never called.
func (b *Balancer) sum64(buf []byte) uint64 {
	if b.hashFunc == nil {
		b.hashFunc, _ = hash.GetHashFunc(hash.DefaultHashFuncName)
	}
	value, _ := b.hashFunc(buf, 0)
	return value
}

// ChooseInstance walks the ring clockwise from the criteria's hash point and returns
// the first eligible instance found.
func (b *Balancer) ChooseInstance(criteria *loadbalancer.Criteria, instances model.ServiceInstances) (model.Instance, error) {
	all := instances.GetInstances()
	if len(all) == 0 {
		return nil, model.NewSDKError(model.ErrCodeAPIInstanceNotFound, nil, "no instances to choose from")
	}
	ring := b.buildRing(all)
	if len(ring) == 0 {
		return nil, model.NewSDKError(model.ErrCodeAPIInstanceNotFound, nil, "no weighted instances to choose from")
	}

	target := b.hashCriteria(criteria)
	idx := sort.Search(len(ring), func(i int) bool { return ring[i].hash >= target })
	for i := 0; i < len(ring); i++ {
		point := ring[(idx+i)%len(ring)]
		if criteria != nil && !criteria.IgnoreHalfOpen {
			if status := point.instance.GetCircuitBreakerStatus(); status != nil && status.GetStatus() == model.HalfOpen {
				continue
			}
		}
		return point.instance, nil
	}
	return ring[idx%len(ring)].instance, nil
}

func (b *Balancer) buildRing(instances []model.Instance) []ringPoint {
	ring := make([]ringPoint, 0, len(instances)*pointsPerInstance)
	for _, inst := range instances {
		weight := inst.GetWeight()
		if weight <= 0 {
			continue
		}
		points := pointsPerInstance * weight / 100
		if points < 1 {
			points = 1
		}
		for p := 0; p < points; p++ {
			key := fmt.Sprintf("%s:%d-%d", inst.GetId(), inst.GetPort(), p)
			ring = append(ring, ringPoint{hash: b.sum64([]byte(key)), instance: inst})
		}
	}
	sort.Slice(ring, func(i, j int) bool { return ring[i].hash < ring[j].hash })
	return ring
}

func (b *Balancer) hashCriteria(criteria *loadbalancer.Criteria) uint64 {
	if criteria == nil {
		return 0
	}
	if len(criteria.HashKey) > 0 {
		return b.sum64(criteria.HashKey)
	}
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], criteria.HashValue)
	return b.sum64(buf[:])
}
