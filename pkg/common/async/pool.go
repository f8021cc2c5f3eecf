// Copyright (c) 2019 Uber Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package async

import (
	"context"
	"sync"
)

const (
	// DefaultMaxWorkers of a Pool. See Pool.SetMaxWorkers for more info.
	DefaultMaxWorkers = 4
)

// PoolOptions for constructing a new Pool.
type PoolOptions struct {
	MaxWorkers int
}

// Pool structure for running up to a maximum number of jobs concurrently.
// The pool has an internal queue, such that all jobs added will be accepted
// but not run until they reach the front of the queue and a worker is free.
type Pool struct {
	sync.Mutex
	options    PoolOptions
	queue      Queue
	numWorkers int
	jobs       sync.WaitGroup
	stopChan   chan struct{}
}

// NewPool returns a new pool, provided the PoolOptions and the queue. A nil
// queue makes the pool use an unbounded FIFO queue.
func NewPool(o PoolOptions, queue Queue) *Pool {
	if o.MaxWorkers <= 0 {
		o.MaxWorkers = DefaultMaxWorkers
	}

	if queue == nil {
		queue = newQueue()
	}

	return &Pool{
		options: o,
		queue:   queue,
	}
}

// SetMaxWorkers to the number provided. If smaller than the current value, it
// will lazily close existing workers. If greater, new workers will be created.
// If 0 or less is given, DefaultMaxWorkers will be used instead.
func (p *Pool) SetMaxWorkers(num int) {
	if num <= 0 {
		num = DefaultMaxWorkers
	}

	p.Lock()
	p.options.MaxWorkers = num
	if p.numWorkers > p.options.MaxWorkers {
		go p.stopWorkers()
	} else if p.numWorkers < p.options.MaxWorkers {
		go p.addWorkers()
	}
	p.Unlock()
}

// Enqueue a job in the pool.
// TODO: Take a context argument that will be associated to the job. That way
// deadlines can easily be propagated.
func (p *Pool) Enqueue(job Job) {
	p.jobs.Add(1)
	p.queue.Enqueue(job)
}

// WaitUntilProcessed will block until both the queue is empty and all workers
// are idle. This is useful for per-request Pools and in testing.
func (p *Pool) WaitUntilProcessed() {
	p.jobs.Wait()
}

// Start the worker pool by initializing the stop channel
// and spawning workers up to the configured maximum.
func (p *Pool) Start() {
	p.Lock()
	if p.stopChan != nil {
		p.Unlock()
		return
	}

	p.stopChan = make(chan struct{})
	p.Unlock()

	p.addWorkers()
}

// Stop sets the assigned workers (goal state) to zero, then stopWorkers
// terminates running workers (actual state) down to that goal, and finally
// the stop channel is cleaned up. After Stop returns the pool can be
// started again.
func (p *Pool) Stop() {
	p.Lock()
	if p.stopChan == nil {
		p.Unlock()
		return
	}

	maxWorkers := p.options.MaxWorkers
	p.options.MaxWorkers = 0
	p.Unlock()

	p.stopWorkers()

	p.Lock()
	defer p.Unlock()
	p.options.MaxWorkers = maxWorkers
	close(p.stopChan)
	p.stopChan = nil
}

// addWorkers adds workers to the pool until the goal state of MaxWorkers
// is reached.
func (p *Pool) addWorkers() {
	for {
		p.Lock()
		// Validate Running workers >= Assigned Workers.
		if p.stopChan == nil || p.numWorkers >= p.options.MaxWorkers {
			p.Unlock()
			break
		}
		p.numWorkers++
		go p.runWorker(p.stopChan)
		p.Unlock()
	}
}

// stopWorkers stops running workers until the goal state of MaxWorkers
// is reached.
func (p *Pool) stopWorkers() {
	for {
		p.Lock()
		// Validate Running workers <= Assigned Workers.
		if p.stopChan == nil || p.numWorkers <= p.options.MaxWorkers {
			p.Unlock()
			break
		}
		// Send best effort on stopChan to terminate a worker,
		// if received then a running worker is terminated.
		select {
		case p.stopChan <- struct{}{}:
			p.numWorkers--
		default:
		}
		p.Unlock()
	}
}

// runWorker processes jobs from the FIFO queue until told to stop.
func (p *Pool) runWorker(stopChan chan struct{}) {
	for {
		job := p.queue.Dequeue(stopChan)
		if job == nil {
			return
		}

		job.Run(context.TODO())
		p.jobs.Done()
	}
}
