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
	"github.com/uber/timedqueue/pkg/common/logging"
	"github.com/uber/timedqueue/pkg/common/metrics"
	"github.com/uber/timedqueue/pkg/dispatcher"
)

// Config holds all configs to run a timedqueue-demo process.
type Config struct {
	Demo         DemoConfig           `yaml:"demo"`
	Dispatcher   dispatcher.Config    `yaml:"dispatcher"`
	Metrics      metrics.Config       `yaml:"metrics"`
	SentryConfig logging.SentryConfig `yaml:"sentry"`
}

// DemoConfig is the demo driver specific config.
type DemoConfig struct {
	// HTTPPort is the port serving the debug endpoints. Zero disables
	// the HTTP server.
	HTTPPort int `yaml:"http_port"`

	// FailureRate is the probability in [0, 1] that a fired task
	// simulates a failure and travels the dispatcher retry path.
	FailureRate float64 `yaml:"failure_rate" validate:"min=0,max=1"`
}
