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
	"fmt"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/uber/timedqueue/pkg/common"
	"github.com/uber/timedqueue/pkg/common/async"
	"github.com/uber/timedqueue/pkg/common/buildversion"
	common_config "github.com/uber/timedqueue/pkg/common/config"
	"github.com/uber/timedqueue/pkg/common/logging"
	"github.com/uber/timedqueue/pkg/common/metrics"
	"github.com/uber/timedqueue/pkg/dispatcher"

	log "github.com/sirupsen/logrus"
	_ "go.uber.org/automaxprocs"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	version string
	app     = kingpin.New(common.TimedQueueDemo, "TimedQueue demo driver")

	debug = app.Flag(
		"debug", "enable debug mode (print full json responses)").
		Short('d').
		Default("false").
		Envar("ENABLE_DEBUG_LOGGING").
		Bool()

	enableSentry = app.Flag(
		"enable-sentry", "enable logging hook up to sentry").
		Default("false").
		Envar("ENABLE_SENTRY_LOGGING").
		Bool()

	cfgFiles = app.Flag(
		"config",
		"YAML config files (can be provided multiple times to merge configs)").
		Short('c').
		ExistingFiles()

	httpPort = app.Flag(
		"http-port",
		"Demo HTTP port (demo.http_port override) (set $HTTP_PORT to override)").
		Envar("HTTP_PORT").
		Int()

	workers = app.Flag(
		"workers",
		"Number of dispatcher workers (dispatcher.max_workers override) "+
			"(set $WORKERS to override)").
		Envar("WORKERS").
		Int()

	failureRate = app.Flag(
		"failure-rate",
		"Probability in [0, 1] that a fired task simulates a failure "+
			"(demo.failure_rate override) (set $FAILURE_RATE to override)").
		Envar("FAILURE_RATE").
		Float64()
)

func main() {
	app.Version(version)
	app.HelpFlag.Short('h')
	kingpin.MustParse(app.Parse(os.Args[1:]))

	log.SetFormatter(
		&logging.LogFieldFormatter{
			Formatter: &log.JSONFormatter{},
			Fields: log.Fields{
				common.AppLogField: app.Name,
			},
		},
	)

	initialLevel := log.InfoLevel
	if *debug {
		initialLevel = log.DebugLevel
	}
	log.SetLevel(initialLevel)

	var cfg Config
	if len(*cfgFiles) > 0 {
		log.WithField("files", *cfgFiles).
			Info("Loading demo config")
		if err := common_config.Parse(&cfg, *cfgFiles...); err != nil {
			log.WithField("error", err).Fatal("Cannot parse yaml config")
		}
	}

	if *enableSentry {
		logging.ConfigureSentry(&cfg.SentryConfig)
	}

	// now, override any CLI flags in the loaded config.Config
	if *httpPort != 0 {
		cfg.Demo.HTTPPort = *httpPort
	}

	if *workers != 0 {
		cfg.Dispatcher.MaxWorkers = *workers
	}

	if *failureRate != 0 {
		cfg.Demo.FailureRate = *failureRate
	}

	if cfg.Metrics.RuntimeMetrics.CollectInterval <= 0 {
		cfg.Metrics.RuntimeMetrics.CollectInterval =
			metrics.RuntimeMetricsCollectInterval
	}

	log.WithField("config", cfg).
		Info("Completed loading demo config")

	rootScope, scopeCloser, mux := metrics.InitMetricScope(
		&cfg.Metrics,
		common.TimedQueueDemo,
		metrics.TallyFlushInterval,
	)
	defer scopeCloser.Close()

	mux.HandleFunc(
		logging.LevelOverwrite,
		logging.LevelOverwriteHandler(initialLevel))
	mux.HandleFunc(buildversion.Get, buildversion.Handler(version))

	if cfg.Demo.HTTPPort != 0 {
		addr := fmt.Sprintf(":%d", cfg.Demo.HTTPPort)
		go func() {
			log.WithField("addr", addr).
				Info("Serving debug endpoints")
			if err := nethttp.ListenAndServe(addr, mux); err != nil {
				log.WithError(err).Fatal("HTTP server failed")
			}
		}()
	}

	d := dispatcher.NewDispatcher(cfg.Dispatcher, rootScope)
	log.Info("Start the dispatcher")
	d.Start()
	defer d.Stop()

	producer := async.NewDaemon(
		"producer",
		newProducer(d, os.Stdin, os.Stdout, cfg.Demo.FailureRate))
	producer.Start()

	// start collecting runtime metrics
	defer metrics.StartCollectingRuntimeMetrics(
		rootScope,
		cfg.Metrics.RuntimeMetrics.Enabled,
		cfg.Metrics.RuntimeMetrics.CollectInterval)()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigs
	log.WithField("signal", sig.String()).
		Info("Shutting down")
}
