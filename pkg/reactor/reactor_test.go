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

package reactor

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReactor_SubmitTaskRunsInOrder(t *testing.T) {
	r := New("test")
	defer r.Shutdown()

	var mu sync.Mutex
	var order []int
	var wg sync.WaitGroup
	wg.Add(3)
	for i := 0; i < 3; i++ {
		i := i
		r.SubmitTask(func() {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
			wg.Done()
		})
	}
	wg.Wait()

	assert.Equal(t, []int{0, 1, 2}, order)
}

func TestReactor_AddTimingTaskFiresAfterDelay(t *testing.T) {
	r := New("test")
	defer r.Shutdown()

	done := make(chan time.Time, 1)
	start := time.Now()
	r.AddTimingTask(func() {
		done <- time.Now()
	}, 30*time.Millisecond)

	select {
	case fired := <-done:
		assert.GreaterOrEqual(t, fired.Sub(start), 25*time.Millisecond)
	case <-time.After(time.Second):
		t.Fatal("timing task never fired")
	}
}

func TestReactor_TaskCanRearmItself(t *testing.T) {
	r := New("test")
	defer r.Shutdown()

	var mu sync.Mutex
	count := 0
	done := make(chan struct{})

	var tick func()
	tick = func() {
		mu.Lock()
		count++
		n := count
		mu.Unlock()
		if n >= 3 {
			close(done)
			return
		}
		r.AddTimingTask(tick, 5*time.Millisecond)
	}
	r.AddTimingTask(tick, 5*time.Millisecond)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("task never reached rearm count")
	}
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 3, count)
}

func TestReactor_ShutdownDropsPendingWork(t *testing.T) {
	r := New("test")
	ran := false
	r.Shutdown()
	r.SubmitTask(func() { ran = true })
	r.AddTimingTask(func() { ran = true }, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	assert.False(t, ran)
}

func TestReactor_PanickingTaskDoesNotStopTheLoop(t *testing.T) {
	r := New("test")
	defer r.Shutdown()

	r.SubmitTask(func() { panic("boom") })

	done := make(chan struct{})
	r.SubmitTask(func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("reactor did not survive a panicking task")
	}
}
