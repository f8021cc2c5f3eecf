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
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/uber/timedqueue/pkg/dispatcher"

	"github.com/pborman/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

// fireTask prints its line index when it fires. A non zero failure rate
// makes the task fail at random so the run travels the dispatcher retry
// path before it eventually fires or gets dropped.
type fireTask struct {
	id          string
	idx         int
	failureRate float64
	out         io.Writer
}

func (t *fireTask) GetID() string {
	return t.id
}

func (t *fireTask) Run(_ context.Context) error {
	if t.failureRate > 0 && rand.Float64() < t.failureRate {
		return errors.Errorf("simulated failure firing item %d", t.idx)
	}
	_, err := fmt.Fprintf(t.out, "Fired: %d\n", t.idx)
	return err
}

// producer turns lines of input into scheduled fire tasks. Each line is
// a delay in whole seconds and the line index becomes the task payload.
// The producer stops at end of input.
type producer struct {
	dispatcher  dispatcher.Dispatcher
	in          io.Reader
	out         io.Writer
	failureRate float64
}

func newProducer(
	d dispatcher.Dispatcher,
	in io.Reader,
	out io.Writer,
	failureRate float64) *producer {
	return &producer{
		dispatcher:  d,
		in:          in,
		out:         out,
		failureRate: failureRate,
	}
}

// Run reads input lines until end of input or until the context is
// cancelled, scheduling one fire task per parseable line. Lines that do
// not parse as a delay are skipped and reported in the returned error.
func (p *producer) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(p.in)
	var errs error
	idx := 0
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return multierr.Append(errs, ctx.Err())
		default:
		}

		line := strings.TrimSpace(scanner.Text())
		delaySec, err := strconv.ParseUint(line, 10, 32)
		if err != nil {
			errs = multierr.Append(
				errs, errors.Wrapf(err, "bad delay on input line %d", idx))
			log.WithField("line", idx).
				WithError(err).
				Warn("Skipping input line with invalid delay")
			idx++
			continue
		}

		p.dispatcher.Enqueue(
			&fireTask{
				id:          uuid.New(),
				idx:         idx,
				failureRate: p.failureRate,
				out:         p.out,
			},
			time.Now().Add(time.Duration(delaySec)*time.Second),
		)
		idx++
	}
	if err := scanner.Err(); err != nil {
		errs = multierr.Append(errs, errors.Wrap(err, "reading input"))
	}

	log.WithField("lines", idx).Info("Producer reached end of input")
	return errs
}
