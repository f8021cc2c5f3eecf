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
)

// Task defines the interface of an item which can be scheduled on the
// dispatcher. A task is identified by a unique string; scheduling a task
// with the identifier of an already tracked task reuses the tracked one.
// The dispatcher never runs two executions of the same task concurrently.
type Task interface {
	// GetID fetches the unique identifier of the task.
	GetID() string
	// Run executes the task. Returning an error makes the dispatcher
	// reschedule the task with a backoff.
	Run(ctx context.Context) error
}
