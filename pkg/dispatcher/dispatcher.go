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

package dispatcher

import (
	"context"
	"sync"
	"time"

	"github.com/uber/timedqueue/pkg/common"
	"github.com/uber/timedqueue/pkg/common/async"
	"github.com/uber/timedqueue/pkg/common/backoff"
	"github.com/uber/timedqueue/pkg/common/lifecycle"
	"github.com/uber/timedqueue/pkg/timedqueue"

	log "github.com/sirupsen/logrus"
	"github.com/uber-go/tally"
	"go.uber.org/atomic"
)

// Dispatcher defines the task dispatcher interface.
type Dispatcher interface {
	// Start starts the dispatcher processing.
	Start()
	// Enqueue schedules a task to run at the given release time. A zero
	// releaseAt runs the task as soon as a worker is free. Enqueue
	// creates state in the dispatcher which persists until the task is
	// dropped, released after a successful run with nothing else
	// scheduled, or explicitly deleted.
	Enqueue(task Task, releaseAt time.Time)
	// IsScheduled is used to determine if a given task is waiting in the
	// timed queue for a run.
	IsScheduled(task Task) bool
	// Delete discards the dispatcher state for the task. Runs already
	// scheduled in the timed queue are discarded when they are dequeued.
	Delete(task Task)
	// Stop stops the dispatcher processing.
	Stop()
}

// NewDispatcher returns a new dispatcher object.
func NewDispatcher(cfg Config, parentScope tally.Scope) Dispatcher {
	cfg.normalize()
	scope := parentScope.SubScope("dispatcher")
	return &dispatcher{
		queue:     timedqueue.NewTimedQueue(timedqueue.NewQueueMetrics(scope)),
		taskMap:   make(map[string]*taskMapItem),
		pool:      async.NewPool(async.PoolOptions{MaxWorkers: cfg.MaxWorkers}, nil),
		lifeCycle: lifecycle.NewLifeCycle(),
		config:    cfg,
		mtx:       NewMetrics(scope),
	}
}

// taskMapItem stores the task state in the dispatcher.
type taskMapItem struct {
	sync.Mutex // serializes runs and retry bookkeeping of the task

	task Task
	// retrier tracks the backoff of the current failure streak. It is nil
	// until the task fails and reset after a successful run.
	retrier backoff.Retrier
	// pending counts the queue entries currently scheduled for the task.
	pending atomic.Int32
}

// dispatcher implements the Dispatcher interface.
type dispatcher struct {
	sync.RWMutex // the mutex to synchronize access to the task map

	queue     timedqueue.TimedQueue   // the timed queue holding scheduled runs
	taskMap   map[string]*taskMapItem // map to store the task items
	pool      *async.Pool             // worker pool running tasks after dequeue
	lifeCycle lifecycle.LifeCycle     // lifecycle of the dequeue loop

	config Config
	mtx    *Metrics
}

// addTaskToMap stores a task in the task map and accounts for one more
// scheduled run. The get and add are done while holding the lock so that
// concurrent enqueue requests for the same task get synchronized correctly.
func (d *dispatcher) addTaskToMap(id string, task Task) {
	d.Lock()
	defer d.Unlock()

	item, ok := d.taskMap[id]
	if !ok {
		item = &taskMapItem{task: task}
		d.taskMap[id] = item
		d.mtx.totalTasks.Update(float64(len(d.taskMap)))
	}
	item.pending.Inc()
}

// getTaskFromMap fetches a task item from the task map.
func (d *dispatcher) getTaskFromMap(id string) *taskMapItem {
	d.RLock()
	defer d.RUnlock()

	item, ok := d.taskMap[id]
	if !ok {
		return nil
	}
	return item
}

// deleteTaskFromMap deletes the task item from the task map.
func (d *dispatcher) deleteTaskFromMap(id string) {
	d.Lock()
	defer d.Unlock()

	delete(d.taskMap, id)
	d.mtx.totalTasks.Update(float64(len(d.taskMap)))
}

// releaseTaskIfIdle deletes the task item once no runs are scheduled for
// it. Checking the pending count and deleting happen under the map lock,
// so a concurrent Enqueue either finds the item still present or recreates
// it afterwards.
func (d *dispatcher) releaseTaskIfIdle(id string) {
	d.Lock()
	defer d.Unlock()

	item, ok := d.taskMap[id]
	if !ok {
		return
	}
	if item.pending.Load() == 0 {
		delete(d.taskMap, id)
		d.mtx.totalTasks.Update(float64(len(d.taskMap)))
	}
}

func (d *dispatcher) Enqueue(task Task, releaseAt time.Time) {
	id := task.GetID()
	log.WithField(common.TaskIDLogField, id).
		WithField("release_at", releaseAt).
		Debug("enqueue happening in dispatcher")

	d.addTaskToMap(id, task)
	d.queue.Enqueue(id, releaseAt)
}

func (d *dispatcher) IsScheduled(task Task) bool {
	item := d.getTaskFromMap(task.GetID())
	if item == nil {
		return false
	}

	return item.pending.Load() > 0
}

func (d *dispatcher) Delete(task Task) {
	d.deleteTaskFromMap(task.GetID())
}

// runTaskOnce executes the task once and computes the retry decision. The
// returned reschedule indicates whether the task needs another run, with
// delay as the backoff from now, while drop reports that the retry policy
// is exhausted. Enqueue should always happen outside the item lock, hence
// rescheduling is not done here.
func (d *dispatcher) runTaskOnce(ctx context.Context, item *taskMapItem) (reschedule bool, delay time.Duration, drop bool) {
	item.Lock()
	defer item.Unlock()

	item.pending.Dec()

	err := item.task.Run(ctx)
	if err == nil {
		item.retrier = nil
		d.mtx.runSuccess.Inc(1)
		return false, 0, false
	}

	d.mtx.runFailure.Inc(1)
	if item.retrier == nil {
		item.retrier = backoff.NewRetrier(backoff.NewCappedRetryPolicy(
			d.config.FailureRetryMaxAttempts,
			d.config.FailureRetryDelay,
			d.config.MaxRetryDelay))
	}

	if delay = item.retrier.NextBackOff(); delay == backoff.Done {
		return false, 0, true
	}

	log.WithField(common.TaskIDLogField, item.task.GetID()).
		WithField("delay", delay).
		WithError(err).
		Info("task run failed, rescheduling")
	return true, delay, false
}

// runTask is a helper function to run a task dequeued from the timed
// queue and handle the outcome.
func (d *dispatcher) runTask(ctx context.Context, qi *timedqueue.Item) {
	id := qi.Value().(string)
	item := d.getTaskFromMap(id)
	if item == nil {
		log.WithField(common.TaskIDLogField, id).
			Error("did not find the identifier in the task map")
		d.mtx.missingTasks.Inc(1)
		return
	}

	reschedule, delay, drop := d.runTaskOnce(ctx, item)
	if reschedule {
		d.addTaskToMap(id, item.task)
		d.queue.Enqueue(id, time.Now().Add(delay))
		return
	}

	if drop {
		log.WithField(common.TaskIDLogField, id).
			Warn("task retries exhausted, dropping task")
		d.mtx.droppedTasks.Inc(1)
		d.deleteTaskFromMap(id)
		return
	}

	// A successful run with no further runs scheduled releases the
	// task state.
	d.releaseTaskIfIdle(id)
}

// processTasks dequeues scheduled runs from the timed queue and hands them
// to the worker pool. stopChan aborts the blocking dequeue.
func (d *dispatcher) processTasks(stopChan <-chan struct{}) {
	defer d.lifeCycle.StopComplete()

	for {
		qi := d.queue.Dequeue(stopChan)
		if qi == nil {
			return
		}

		d.pool.Enqueue(async.JobFunc(func(ctx context.Context) {
			d.runTask(ctx, qi)
		}))
	}
}

func (d *dispatcher) Start() {
	if !d.lifeCycle.Start() {
		return
	}

	d.pool.Start()
	go d.processTasks(d.lifeCycle.StopCh())

	log.Info("dispatcher started")
}

func (d *dispatcher) Stop() {
	if !d.lifeCycle.Stop() {
		return
	}

	// Wait for the dequeue loop to exit before draining the workers.
	d.lifeCycle.Wait()
	d.pool.Stop()

	log.Info("dispatcher stopped")
}
