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

package main

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/uber/timedqueue/pkg/dispatcher"

	"github.com/stretchr/testify/assert"
	"github.com/uber-go/tally"
)

// syncBuffer is an io.Writer safe for concurrent writes from dispatcher
// workers.
type syncBuffer struct {
	sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.Lock()
	defer b.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.Lock()
	defer b.Unlock()
	return b.buf.String()
}

func waitForOutput(out *syncBuffer, want string) bool {
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if strings.Contains(out.String(), want) {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return false
}

func TestProducerFiresParsedLines(t *testing.T) {
	d := dispatcher.NewDispatcher(
		dispatcher.Config{MaxWorkers: 1},
		tally.NoopScope,
	)
	d.Start()
	defer d.Stop()

	out := &syncBuffer{}
	p := newProducer(d, strings.NewReader("0\n0\n"), out, 0)
	assert.NoError(t, p.Run(context.Background()))

	assert.True(t, waitForOutput(out, "Fired: 0"))
	assert.True(t, waitForOutput(out, "Fired: 1"))
}

func TestProducerSkipsInvalidLines(t *testing.T) {
	d := dispatcher.NewDispatcher(
		dispatcher.Config{MaxWorkers: 1},
		tally.NoopScope,
	)
	d.Start()
	defer d.Stop()

	out := &syncBuffer{}
	p := newProducer(d, strings.NewReader("nope\n0\n"), out, 0)
	assert.Error(t, p.Run(context.Background()))

	assert.True(t, waitForOutput(out, "Fired: 1"))
	assert.NotContains(t, out.String(), "Fired: 0")
}

func TestProducerStopsOnCancelledContext(t *testing.T) {
	d := dispatcher.NewDispatcher(dispatcher.Config{}, tally.NoopScope)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := &syncBuffer{}
	p := newProducer(d, strings.NewReader("0\n0\n"), out, 0)
	assert.Error(t, p.Run(ctx))
	assert.Equal(t, "", out.String())
}

func TestFireTaskPrints(t *testing.T) {
	out := &syncBuffer{}
	task := &fireTask{id: "task-ok", idx: 7, out: out}

	assert.NoError(t, task.Run(context.Background()))
	assert.Equal(t, "Fired: 7\n", out.String())
}

func TestFireTaskFullFailureRate(t *testing.T) {
	out := &syncBuffer{}
	task := &fireTask{id: "task-fail", idx: 3, failureRate: 1, out: out}

	for i := 0; i < 10; i++ {
		assert.Error(t, task.Run(context.Background()))
	}
	assert.Equal(t, "", out.String())
}
