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
	"github.com/uber-go/tally"
)

// Metrics contains counters to track dispatcher metrics
type Metrics struct {
	// the metrics scope for the dispatcher
	scope tally.Scope
	// counter to track tasks not found in the task map after dequeue
	missingTasks tally.Counter
	// counter to track tasks dropped after exhausting their retries
	droppedTasks tally.Counter
	// gauge to track total tasks tracked by the dispatcher
	totalTasks tally.Gauge
	// counters to track task run outcomes
	runSuccess tally.Counter
	runFailure tally.Counter
}

// NewMetrics returns a new Metrics struct.
func NewMetrics(scope tally.Scope) *Metrics {
	return &Metrics{
		scope:        scope,
		missingTasks: scope.Counter("missing_tasks"),
		droppedTasks: scope.Counter("dropped_tasks"),
		totalTasks:   scope.Gauge("total_tasks"),
		runSuccess:   scope.Counter("run_success"),
		runFailure:   scope.Counter("run_failure"),
	}
}
