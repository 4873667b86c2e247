// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// setupTestConfig sets AINFO_CFG to point to a test config file and resets
// the global Config.
func setupTestConfig(t *testing.T, testdataFile string) {
	t.Helper()

	absPath, err := filepath.Abs(filepath.Join("testdata", testdataFile))
	assert.NoError(t, err, "failed to get absolute path for test config")

	t.Setenv("AINFO_CFG", absPath)

	Config = Type{}
	t.Cleanup(func() { Config = Type{} })
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		testFile  string
		checkFunc func(*testing.T, Type)
	}{
		{
			name:     "simple string values",
			testFile: "simple.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.NotEmpty(t, cfg.Source)
				assert.Equal(t, "NLG", cfg.Data["player"])
				assert.Equal(t, "pc", cfg.Data["platform"])
			},
		},
		{
			name:     "nested structure",
			testFile: "nested.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				store, ok := cfg.Data["store"].(map[string]interface{})
				assert.True(t, ok, "store should be a map")
				s3, ok := store["s3"].(map[string]interface{})
				assert.True(t, ok, "s3 should be a map")
				assert.Equal(t, "ainfo-cache", s3["bucket"])
			},
		},
		{
			name:     "mixed types",
			testFile: "mixed-types.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.Equal(t, 1, cfg.Data["version"])
				assert.Equal(t, true, cfg.Data["titles"])
				assert.Equal(t, 30.5, cfg.Data["timeout"])
				tags, ok := cfg.Data["tags"].([]interface{})
				assert.True(t, ok)
				assert.Len(t, tags, 2)
			},
		},
		{
			name:     "empty file",
			testFile: "empty.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.NotEmpty(t, cfg.Source, "should have a source path")
				assert.Empty(t, cfg.Data)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestConfig(t, tt.testFile)

			cfg, err := Load()
			assert.NoError(t, err)
			tt.checkFunc(t, cfg)
		})
	}
}

func TestLoad_NoConfigFile(t *testing.T) {
	t.Setenv("AINFO_CFG", "/nonexistent/path/assignmentinfo.yaml")
	Config = Type{}

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestLoad_CfgIsDirectory(t *testing.T) {
	t.Setenv("AINFO_CFG", "testdata")
	Config = Type{}

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "points to a directory")
}

func TestLoad_StandardLocations(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("AINFO_CFG", "")
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("APPDATA", "")
	t.Setenv("HOME", t.TempDir())
	Config = Type{}
	t.Cleanup(func() { Config = Type{} })

	_, err := Load()
	assert.Error(t, err)

	src, err := filepath.Abs(filepath.Join("testdata", "simple.yaml"))
	assert.NoError(t, err)
	assert.NoError(t, copyFile(src, filepath.Join(dir, FileName)))

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, FileName), cfg.Source)
}

func TestGetString(t *testing.T) {
	tests := []struct {
		name         string
		testFile     string
		key          string
		defaultValue []string
		want         string
		wantErr      bool
	}{
		{
			name:     "simple string value",
			testFile: "simple.yaml",
			key:      "player",
			want:     "NLG",
		},
		{
			name:     "nested string value",
			testFile: "nested.yaml",
			key:      "store.s3.region",
			want:     "eu-north-1",
		},
		{
			name:         "missing key with default",
			testFile:     "simple.yaml",
			key:          "missing",
			defaultValue: []string{"default-value"},
			want:         "default-value",
		},
		{
			name:     "missing key without default",
			testFile: "simple.yaml",
			key:      "missing",
			wantErr:  true,
		},
		{
			name:     "non-string value",
			testFile: "mixed-types.yaml",
			key:      "version",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestConfig(t, tt.testFile)
			_, _ = Load()

			got, err := GetString(tt.key, tt.defaultValue...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetInt(t *testing.T) {
	tests := []struct {
		name         string
		testFile     string
		key          string
		defaultValue []int
		want         int
		wantErr      bool
	}{
		{
			name:     "int value",
			testFile: "mixed-types.yaml",
			key:      "version",
			want:     1,
		},
		{
			name:     "float value converted to int",
			testFile: "mixed-types.yaml",
			key:      "timeout",
			want:     30,
		},
		{
			name:     "nested int value",
			testFile: "nested.yaml",
			key:      "store.s3.max_retries",
			want:     5,
		},
		{
			name:         "missing key with default",
			testFile:     "simple.yaml",
			key:          "missing",
			defaultValue: []int{60},
			want:         60,
		},
		{
			name:     "non-int value",
			testFile: "simple.yaml",
			key:      "player",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestConfig(t, tt.testFile)
			_, _ = Load()

			got, err := GetInt(tt.key, tt.defaultValue...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetBool(t *testing.T) {
	setupTestConfig(t, "mixed-types.yaml")
	_, _ = Load()

	got, err := GetBool("titles")
	assert.NoError(t, err)
	assert.True(t, got)

	got, err = GetBool("color", false)
	assert.NoError(t, err)
	assert.False(t, got)

	_, err = GetBool("name")
	assert.Error(t, err)
}

func TestConfig_GetWithNamespace(t *testing.T) {
	setupTestConfig(t, "nested.yaml")

	_, err := Load()
	assert.NoError(t, err)

	Config.Namespace = "store.s3"
	val, err := Config.get("bucket")
	assert.NoError(t, err)
	assert.Equal(t, "ainfo-cache", val)

	Config.Namespace = "store.file"
	val, err = Config.get("bucket")
	assert.NoError(t, err)
	assert.Equal(t, "local-bucket", val)
}

func TestConfig_LazyLoad(t *testing.T) {
	setupTestConfig(t, "simple.yaml")

	// No explicit Load(); GetString should trigger it.
	val, err := GetString("player")
	assert.NoError(t, err)
	assert.Equal(t, "NLG", val)
	assert.NotEmpty(t, Config.Source, "Config should be loaded")
}

func TestGetString_NamespaceFallback(t *testing.T) {
	setupTestConfig(t, "namespace.yaml")

	_, err := Load("aq")
	assert.NoError(t, err)

	val, err := GetString("setting")
	assert.NoError(t, err)
	assert.Equal(t, "aq-value", val)

	val, err = GetString("specific")
	assert.NoError(t, err)
	assert.Equal(t, "aq-specific", val)

	Config.Namespace = "clear"
	val, err = GetString("setting")
	assert.NoError(t, err)
	assert.Equal(t, "global-value", val)

	_, err = GetString("nonexistent")
	assert.Error(t, err)
}

func TestGetStringSlice(t *testing.T) {
	setupTestConfig(t, "sets.yaml")

	tests := []struct {
		name    string
		key     string
		def     []string
		want    []string
		wantErr bool
	}{
		{"list", "aq.done", nil, []string{"--filter completion=1", "--sort name"}, false},
		{"scalar", "aq.single", nil, []string{"--output json"}, false},
		{"missing with default", "aq.nope", []string{"x"}, []string{"x"}, false},
		{"missing", "aq.nope", nil, nil, true},
		{"non-string item", "aq.bad", nil, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			var err error
			if tt.def != nil {
				got, err = GetStringSlice(tt.key, tt.def)
			} else {
				got, err = GetStringSlice(tt.key)
			}
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
