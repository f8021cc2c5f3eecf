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
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

type counter struct {
	number int64
}

func (c *counter) Run(ctx context.Context) error {
	atomic.AddInt64(&c.number, 1)
	return nil
}

// larger spins until the counter reaches at least the expected value.
func (c *counter) larger(expected int64) int64 {
	repeat := true
	var value int64
	for repeat {
		value = atomic.LoadInt64(&c.number)
		repeat = value < expected
	}
	return value
}

type waiter struct {
	gotEvent bool
	running  bool
	lock     sync.Mutex
}

func (w *waiter) Running() bool {
	w.lock.Lock()
	defer w.lock.Unlock()
	return w.running
}

func (w *waiter) GotEvent() bool {
	w.lock.Lock()
	defer w.lock.Unlock()
	return w.gotEvent
}

func (w *waiter) setRunning(state bool) {
	w.lock.Lock()
	defer w.lock.Unlock()
	w.running = state
}

func (w *waiter) Run(ctx context.Context) error {
	w.setRunning(true)
	defer w.setRunning(false)
	<-ctx.Done()
	w.lock.Lock()
	w.gotEvent = true
	w.lock.Unlock()
	return nil
}

func setupWaiter() (Daemon, *waiter) {
	w := &waiter{}
	return NewDaemon("waiter", w), w
}

func setupCounter() (Daemon, *counter) {
	c := &counter{}
	return NewDaemon("counter", c), c
}

func TestDaemonStart(t *testing.T) {
	daemon, counter := setupCounter()
	daemon.Start()
	value1 := counter.larger(1)
	assert.True(t, value1 > 0)
	daemon.Stop()
}

func TestDaemonStopEvent(t *testing.T) {
	daemon, waiter := setupWaiter()
	daemon.Start()
	for !waiter.Running() {
		continue
	}
	daemon.Stop()
	for waiter.Running() {
		continue
	}
	assert.True(t, waiter.GotEvent())
}

func TestDaemonStop(t *testing.T) {
	daemon, counter := setupCounter()
	daemon.Start()
	value1 := counter.larger(1)
	daemon.Stop()
	assert.True(t, value1 > 0)
	value2 := counter.larger(value1)
	value3 := counter.larger(value1)
	assert.True(t, value3 == value2)
}

func TestDaemonRestart(t *testing.T) {
	daemon, counter := setupCounter()
	daemon.Start()
	counter.larger(1)
	daemon.Stop()
	daemon.Start()
	value := counter.larger(2)
	assert.True(t, value >= 2)
	daemon.Stop()
}
