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

package lifecycle

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
)

type LifeCycleTestSuite struct {
	suite.Suite
	lifeCycle LifeCycle
}

func TestLifeCycle(t *testing.T) {
	suite.Run(t, new(LifeCycleTestSuite))
}

func (s *LifeCycleTestSuite) SetupTest() {
	s.lifeCycle = NewLifeCycle()
}

func (s *LifeCycleTestSuite) TestStartStopReturnValues() {
	s.True(s.lifeCycle.Start())
	s.False(s.lifeCycle.Start())
	s.True(s.lifeCycle.Stop())
	s.False(s.lifeCycle.Stop())
}

func (s *LifeCycleTestSuite) TestNormalFlow() {
	var running sync.WaitGroup
	var finished sync.WaitGroup
	running.Add(1)
	finished.Add(1)

	s.lifeCycle.Start()
	go func() {
		stopCh := s.lifeCycle.StopCh()
		running.Done()
		<-stopCh
		s.lifeCycle.StopComplete()
		finished.Done()
	}()
	running.Wait()
	s.lifeCycle.Stop()
	s.lifeCycle.Wait()
	finished.Wait()
}

func (s *LifeCycleTestSuite) TestBroadcastStop() {
	numGoroutines := 10
	var running sync.WaitGroup
	var finished sync.WaitGroup
	running.Add(numGoroutines)
	finished.Add(numGoroutines)

	s.lifeCycle.Start()
	for i := 0; i < numGoroutines; i++ {
		go func() {
			stopCh := s.lifeCycle.StopCh()
			running.Done()
			<-stopCh
			finished.Done()
		}()
	}
	go func() {
		finished.Wait()
		s.lifeCycle.StopComplete()
	}()
	running.Wait()
	s.lifeCycle.Stop()
	s.lifeCycle.Wait()
}

func (s *LifeCycleTestSuite) TestUnStartedLifecycleNotBlock() {
	numGoroutines := 10
	var running sync.WaitGroup
	var finished sync.WaitGroup
	running.Add(numGoroutines)
	finished.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func() {
			stopCh := s.lifeCycle.StopCh()
			running.Done()
			<-stopCh
			finished.Done()
		}()
	}
	running.Wait()
	go func() {
		finished.Wait()
		s.lifeCycle.StopComplete()
	}()
	s.lifeCycle.Stop()
	s.lifeCycle.Wait()
}

func (s *LifeCycleTestSuite) TestRestart() {
	for round := 0; round < 2; round++ {
		var running sync.WaitGroup
		var finished sync.WaitGroup
		running.Add(1)
		finished.Add(1)

		s.True(s.lifeCycle.Start())
		go func() {
			stopCh := s.lifeCycle.StopCh()
			running.Done()
			<-stopCh
			s.lifeCycle.StopComplete()
			finished.Done()
		}()
		running.Wait()
		s.lifeCycle.Stop()
		s.lifeCycle.Wait()
		finished.Wait()
	}
}

func (s *LifeCycleTestSuite) TestStopCompleteAfterStop() {
	var finished sync.WaitGroup
	finished.Add(1)

	s.lifeCycle.Start()
	s.lifeCycle.Stop()
	go func() {
		// StopCh returns a closed channel once Stop has run
		<-s.lifeCycle.StopCh()
		s.lifeCycle.StopComplete()
		finished.Done()
	}()
	s.lifeCycle.Wait()
	finished.Wait()
}
