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
	"time"
)

const (
	_defaultMaxWorkers        = 4
	_defaultRetryMaxAttempts  = 5
	_defaultFailureRetryDelay = 2 * time.Second
	_defaultMaxRetryDelay     = 30 * time.Second
)

// Config contains the dispatcher configuration.
type Config struct {
	// MaxWorkers is the number of workers running tasks concurrently.
	MaxWorkers int `yaml:"max_workers"`
	// FailureRetryMaxAttempts is the number of runs attempted for a task
	// before it is dropped.
	FailureRetryMaxAttempts int `yaml:"failure_retry_max_attempts"`
	// FailureRetryDelay is the delay added for each retry on error.
	FailureRetryDelay time.Duration `yaml:"failure_retry_delay"`
	// MaxRetryDelay is the absolute maximum duration between retries.
	// The growing backoff is capped at this value.
	MaxRetryDelay time.Duration `yaml:"max_retry_delay"`
}

// normalize replaces unset fields with their defaults.
func (c *Config) normalize() {
	if c.MaxWorkers <= 0 {
		c.MaxWorkers = _defaultMaxWorkers
	}
	if c.FailureRetryMaxAttempts <= 0 {
		c.FailureRetryMaxAttempts = _defaultRetryMaxAttempts
	}
	if c.FailureRetryDelay <= 0 {
		c.FailureRetryDelay = _defaultFailureRetryDelay
	}
	if c.MaxRetryDelay <= 0 {
		c.MaxRetryDelay = _defaultMaxRetryDelay
	}
}
