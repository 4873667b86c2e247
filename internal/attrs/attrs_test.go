// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package attrs

import (
	"embed"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

//go:embed testdata/*.yaml
var testDataFS embed.FS

// testSetCase represents a single test case for TestAttrList_Set.
type testSetCase struct {
	Name      string `yaml:"name"`
	Initial   []Attr `yaml:"initial"`
	Value     string `yaml:"value"`
	WantLen   int    `yaml:"wantLen"`
	WantAttrs []Attr `yaml:"wantAttrs"`
}

// testTransformCase represents a single test case for TestAttr_Transform.
type testTransformCase struct {
	Name          string      `yaml:"name"`
	TransformSpec string      `yaml:"transformSpec"`
	Input         interface{} `yaml:"input"`
	Want          interface{} `yaml:"want"`
}

// loadTestData loads test data from embedded YAML files.
func loadTestData(filename string, v any) error {
	data, err := testDataFS.ReadFile("testdata/" + filename)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, v)
}

func TestAttrList_Set(t *testing.T) {
	var tests []testSetCase
	require.NoError(t, loadTestData("set_cases.yaml", &tests))
	require.NotEmpty(t, tests)

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			a := AttrList(tt.Initial)
			assert.NoError(t, a.Set(tt.Value))
			assert.Len(t, a, tt.WantLen)
			if tt.WantAttrs != nil {
				assert.Equal(t, tt.WantAttrs, []Attr(a))
			}
		})
	}
}

func TestAttr_Transform(t *testing.T) {
	var tests []testTransformCase
	require.NoError(t, loadTestData("transform_cases.yaml", &tests))
	require.NotEmpty(t, tests)

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			a := Attr{TransformSpec: tt.TransformSpec}
			assert.Equal(t, tt.Want, a.Transform(tt.Input))
		})
	}
}

func TestAttrList_SetGlobalTransformSpec(t *testing.T) {
	var al AttrList
	require.NoError(t, al.Set("id,name::l,*::U"))
	require.NoError(t, al.SetGlobalTransformSpec())

	assert.Equal(t, "U,", al[0].TransformSpec)
	assert.Equal(t, "U,l", al[1].TransformSpec)

	// Global upper, attr-specific lower wins.
	assert.Equal(t, "tango", al[1].Transform("Tango"))
	assert.Equal(t, "MA01", al[0].Transform("ma01"))
}

func TestAttrList_SetGlobalTransformSpec_None(t *testing.T) {
	var al AttrList
	require.NoError(t, al.Set("id,name"))
	require.NoError(t, al.SetGlobalTransformSpec())
	assert.Equal(t, "", al[0].TransformSpec)
}

func TestAttrList_String(t *testing.T) {
	var al AttrList
	require.NoError(t, al.Set("id,completion:done:p"))
	assert.Equal(t, "id:id:,completion:done:p", al.String())
	assert.Equal(t, "list", al.Type())
}
