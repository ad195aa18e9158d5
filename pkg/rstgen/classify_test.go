package rstgen

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nieomylnieja/rstgen/internal/testlib"
	"github.com/nieomylnieja/rstgen/internal/testlib/kernels/stationaries"
	"github.com/nieomylnieja/rstgen/pkg/dispatch"
	"github.com/nieomylnieja/rstgen/pkg/object"
)

func testConfig(outputRoot string) Config {
	conf := DefaultConfig(testlib.Name, testlib.ImportPath)
	conf.OutputRoot = outputRoot
	conf.Exclude = []string{testlib.ExcludedModule}
	return conf
}

func TestClassifierModules(t *testing.T) {
	c := newClassifier(testConfig("out"))

	tests := []struct {
		name     string
		value    any
		expected bool
	}{
		{
			name:     "library module",
			value:    object.NewModule("testlib.kernels"),
			expected: true,
		},
		{
			name:     "library root",
			value:    object.NewModule("testlib"),
			expected: true,
		},
		{
			name:     "excluded module",
			value:    object.NewModule(testlib.ExcludedModule),
			expected: false,
		},
		{
			name:     "foreign module",
			value:    object.NewModule("numpy.linalg"),
			expected: false,
		},
		{
			name:     "not a module",
			value:    reflect.TypeOf(stationaries.RBF{}),
			expected: false,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, c.isDocumentableModule(tc.value))
		})
	}
}

func TestClassifierComponents(t *testing.T) {
	c := newClassifier(testConfig("out"))

	tests := []struct {
		name     string
		value    any
		expected bool
	}{
		{
			name:     "library class",
			value:    reflect.TypeOf(stationaries.Matern52{}),
			expected: true,
		},
		{
			name:     "library function",
			value:    stationaries.Scaled,
			expected: true,
		},
		{
			name:     "root-level function",
			value:    testlib.DefaultJitter,
			expected: true,
		},
		{
			name:     "dispatch registry",
			value:    dispatch.New("Kuf"),
			expected: true,
		},
		{
			name:     "foreign class",
			value:    reflect.TypeOf(Config{}),
			expected: false,
		},
		{
			name:     "builtin value",
			value:    "1.0",
			expected: false,
		},
		{
			name:     "module is not a component",
			value:    object.NewModule("testlib.kernels"),
			expected: false,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, c.isDocumentableComponent(tc.value))
		})
	}
}

func TestClassifierExcludedComponents(t *testing.T) {
	conf := testConfig("out")
	conf.Exclude = append(conf.Exclude, "testlib.kernels.stationaries")
	c := newClassifier(conf)

	// Components defined in an excluded module are not documentable even
	// when reached through another module.
	assert.False(t, c.isDocumentableComponent(reflect.TypeOf(stationaries.Matern52{})))
	assert.False(t, c.isDocumentableComponent(stationaries.Scaled))
	assert.True(t, c.isDocumentableComponent(testlib.DefaultJitter))
}

func TestIsDocumentable(t *testing.T) {
	c := newClassifier(testConfig("out"))

	assert.True(t, c.isDocumentable(object.NewModule("testlib.kernels")))
	assert.True(t, c.isDocumentable(reflect.TypeOf(stationaries.RBF{})))
	assert.False(t, c.isDocumentable(42))
}
