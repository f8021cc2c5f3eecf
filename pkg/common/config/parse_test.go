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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

type testConfig struct {
	Name    string `yaml:"name" validate:"nonzero"`
	Workers int    `yaml:"workers"`
	Extra   string `yaml:"extra"`
}

func writeConfigFile(t *testing.T, name string, content string) string {
	path := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(path, []byte(content), 0644)
	assert.NoError(t, err)
	return path
}

func TestParseNoFiles(t *testing.T) {
	var cfg testConfig
	err := Parse(&cfg)
	assert.Error(t, err)
}

func TestParseMissingFile(t *testing.T) {
	var cfg testConfig
	err := Parse(&cfg, "non-existent.yaml")
	assert.Error(t, err)
}

func TestParseSingleFile(t *testing.T) {
	path := writeConfigFile(t, "base.yaml", "name: demo\nworkers: 4\n")

	var cfg testConfig
	err := Parse(&cfg, path)
	assert.NoError(t, err)
	assert.Equal(t, "demo", cfg.Name)
	assert.Equal(t, 4, cfg.Workers)
}

func TestParseMergesFilesInOrder(t *testing.T) {
	base := writeConfigFile(t, "base.yaml", "name: demo\nworkers: 4\n")
	override := writeConfigFile(t, "override.yaml", "workers: 8\nextra: more\n")

	var cfg testConfig
	err := Parse(&cfg, base, override)
	assert.NoError(t, err)
	assert.Equal(t, "demo", cfg.Name)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, "more", cfg.Extra)
}

func TestParseInvalidYaml(t *testing.T) {
	path := writeConfigFile(t, "bad.yaml", "name: [unterminated\n")

	var cfg testConfig
	err := Parse(&cfg, path)
	assert.Error(t, err)
}

func TestParseValidationError(t *testing.T) {
	path := writeConfigFile(t, "empty.yaml", "workers: 2\n")

	var cfg testConfig
	err := Parse(&cfg, path)
	assert.Error(t, err)

	verr, ok := err.(ValidationError)
	assert.True(t, ok)
	assert.Error(t, verr.ErrForField("Name"))
	assert.Contains(t, verr.Error(), "validation failed")
}
