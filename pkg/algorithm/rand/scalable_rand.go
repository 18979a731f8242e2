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

package rand

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"time"
)

// shardCount is the number of independently-locked rand sources backing a
// ScalableRand. math/rand.Intn serializes every caller on one global mutex;
// spreading callers across shards keeps load balancing from becoming a
// contention point under concurrent ChooseInstance calls.
const shardCount = 32

type randShard struct {
	mu  sync.Mutex
	src *rand.Rand
}

//可扩展的随机数生成器，通过分片降低高并发下的锁竞争
type ScalableRand struct {
	shards [shardCount]*randShard
	cursor uint32
}

//NewScalableRand 创建一个分片随机数生成器，每个分片独立播种
func NewScalableRand() *ScalableRand {
	s := &ScalableRand{}
	seed := time.Now().UnixNano()
	for i := range s.shards {
		s.shards[i] = &randShard{src: rand.New(rand.NewSource(seed + int64(i)))}
	}
	return s
}

//Intn 返回[0,n)范围内的伪随机数，轮询分片以分散锁竞争
func (s *ScalableRand) Intn(n int) int {
	idx := atomic.AddUint32(&s.cursor, 1) % shardCount
	shard := s.shards[idx]
	shard.mu.Lock()
	defer shard.mu.Unlock()
	return shard.src.Intn(n)
}
