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

// Package reactor is a single-threaded cooperative event loop: one goroutine owns a
// FIFO task queue and a timer heap, and every piece of work it runs executes on that
// one goroutine. It generalizes the per-task scheduling goroutine the rest of the
// codebase hand-rolls (one ticker loop per periodic task) into a single reusable
// primitive an executor can own.
package reactor

import (
	"container/heap"
	"sync"
	"time"

	"github.com/polarismesh/polaris-go/pkg/log"
)

// Task is one unit of work the reactor thread runs. A panicking task is logged and
// does not take the reactor thread down with it.
type Task func()

type timingEntry struct {
	task    Task
	runAt   time.Time
	index   int
}

type timingHeap []*timingEntry

func (h timingHeap) Len() int            { return len(h) }
func (h timingHeap) Less(i, j int) bool  { return h[i].runAt.Before(h[j].runAt) }
func (h timingHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index, h[j].index = i, j
}
func (h *timingHeap) Push(x interface{}) {
	entry := x.(*timingEntry)
	entry.index = len(*h)
	*h = append(*h, entry)
}
func (h *timingHeap) Pop() interface{} {
	old := *h
	n := len(old)
	entry := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return entry
}

// Reactor is a single-threaded task loop. The zero value is not usable; build one
// with New.
type Reactor struct {
	name string

	mu       sync.Mutex
	queue    []Task
	timers   timingHeap
	wake     chan struct{}
	shutdown bool
	done     chan struct{}
}

// New creates a reactor and starts its loop goroutine. name is used only for logging.
func New(name string) *Reactor {
	r := &Reactor{
		name: name,
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
	go r.run()
	return r
}

// SubmitTask enqueues a task to run as soon as the reactor thread is free, after
// every task already queued ahead of it. Submissions after Shutdown are dropped.
func (r *Reactor) SubmitTask(task Task) {
	r.mu.Lock()
	if r.shutdown {
		r.mu.Unlock()
		return
	}
	r.queue = append(r.queue, task)
	r.mu.Unlock()
	r.notify()
}

// AddTimingTask schedules a task to run once, after delay has elapsed. A task that
// wants to recur re-arms itself by calling AddTimingTask again from inside its own
// body; the reactor has no notion of a repeating task.
func (r *Reactor) AddTimingTask(task Task, delay time.Duration) {
	r.mu.Lock()
	if r.shutdown {
		r.mu.Unlock()
		return
	}
	heap.Push(&r.timers, &timingEntry{task: task, runAt: time.Now().Add(delay)})
	r.mu.Unlock()
	r.notify()
}

// Shutdown stops the reactor thread. Tasks still queued or pending in the timer
// heap are dropped without running; a task already executing is allowed to finish.
// Submissions after Shutdown are silently refused. Shutdown blocks until the loop
// goroutine has exited.
func (r *Reactor) Shutdown() {
	r.mu.Lock()
	if r.shutdown {
		r.mu.Unlock()
		return
	}
	r.shutdown = true
	r.queue = nil
	r.timers = nil
	r.mu.Unlock()
	r.notify()
	<-r.done
}

func (r *Reactor) notify() {
	select {
	case r.wake <- struct{}{}:
	default:
	}
}

// run is the reactor thread. It drains the FIFO queue before looking at timers so
// immediate submissions never starve behind a timer that's about to fire, then
// blocks on whichever comes first: the next submission, or the soonest timer.
func (r *Reactor) run() {
	defer close(r.done)
	for {
		if r.drainOnce() {
			return
		}
	}
}

// drainOnce runs one batch of ready work and returns true once shutdown has been
// observed and there is nothing left to run.
func (r *Reactor) drainOnce() bool {
	r.mu.Lock()
	if r.shutdown {
		r.mu.Unlock()
		return true
	}
	if len(r.queue) > 0 {
		task := r.queue[0]
		r.queue = r.queue[1:]
		r.mu.Unlock()
		r.runTask(task)
		return false
	}

	var waitFor <-chan time.Time
	if len(r.timers) > 0 {
		delay := time.Until(r.timers[0].runAt)
		if delay <= 0 {
			entry := heap.Pop(&r.timers).(*timingEntry)
			r.mu.Unlock()
			r.runTask(entry.task)
			return false
		}
		timer := time.NewTimer(delay)
		defer timer.Stop()
		waitFor = timer.C
	}
	r.mu.Unlock()

	select {
	case <-r.wake:
	case <-waitFor:
	}
	return false
}

func (r *Reactor) runTask(task Task) {
	defer func() {
		if rec := recover(); rec != nil {
			if logger := log.GetBaseLogger(); logger != nil {
				logger.Errorf("reactor %s: task panicked: %v", r.name, rec)
			}
		}
	}()
	task()
}
