package rstgen

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nieomylnieja/rstgen/internal/testlib"
	"github.com/nieomylnieja/rstgen/internal/testlib/kernels/stationaries"
	"github.com/nieomylnieja/rstgen/pkg/object"
)

var testDate = time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)

func TestGenerate(t *testing.T) {
	out := t.TempDir()
	summary, err := Generate(testlib.Namespace(), testConfig(out), WithTimestamp(testDate))
	require.NoError(t, err)

	// Files appear in breadth-first order: the root document first, its
	// submodules level by level afterwards.
	assert.Equal(t, []string{
		filepath.Join(out, "testlib", "index.rst"),
		filepath.Join(out, "testlib", "covariances", "index.rst"),
		filepath.Join(out, "testlib", "inducing", "index.rst"),
		filepath.Join(out, "testlib", "kernels", "index.rst"),
		filepath.Join(out, "testlib", "likelihoods", "index.rst"),
		filepath.Join(out, "testlib", "utilities", "index.rst"),
		filepath.Join(out, "testlib", "covariances", "kufs", "index.rst"),
	}, summary.Files)
	assert.Equal(t, 11, summary.Components)

	// The defining module of the re-exported kernels and the excluded
	// dispatch-registration module produce no documents.
	assert.NoDirExists(t, filepath.Join(out, "testlib", "kernels", "stationaries"))
	assert.NoDirExists(t, filepath.Join(out, "testlib", "covariances", "dispatch"))

	root := readFile(t, out, "testlib")
	for _, ref := range []string{
		"covariances/index",
		"inducing/index",
		"kernels/index",
		"likelihoods/index",
		"utilities/index",
	} {
		assert.Contains(t, root, ref)
	}

	kernels := readFile(t, out, "testlib", "kernels")
	expected := `testlib.kernels
===============

.. THIS IS AN AUTOGENERATED RST FILE
.. GENERATED BY rstgen
.. DATE: 05/03/24



testlib.kernels.Matern52
------

.. autoclass:: testlib.kernels.Matern52
   :show-inheritance:
   :members:


testlib.kernels.RBF
------

.. autoclass:: testlib.kernels.RBF
   :show-inheritance:
   :members:


testlib.kernels.Scaled
------

.. autofunction:: testlib.kernels.Scaled

`
	assert.Equal(t, expected, kernels)
	// The SquaredExponential alias shares RBF's identity and is not
	// rendered again.
	assert.NotContains(t, kernels, "SquaredExponential")

	// The aliased class is documented exactly once, under the shallowest
	// path it was reached through.
	assert.Equal(t, 1, countAcrossFiles(t, summary.Files, ".. autoclass:: testlib.kernels.Matern52"))
	assert.Equal(t, 0, countAcrossFiles(t, summary.Files, "autoclass:: testlib.kernels.stationaries.Matern52"))

	// One code-block per registered dispatch pair.
	covariances := readFile(t, out, "testlib", "covariances")
	assert.Contains(t, covariances, "testlib.covariances.Kuf")
	assert.Equal(t, 2, strings.Count(covariances, ".. code-block:: go"))
	assert.Contains(t, covariances, "// dispatch to -> testlib.covariances.kufs.KufPointsMatern52(...)")
	assert.Contains(t, covariances, "// dispatch to -> testlib.covariances.kufs.KufPointsRBF(...)")

	// Root-level helpers re-exported through utilities document there.
	utilities := readFile(t, out, "testlib", "utilities")
	assert.Contains(t, utilities, ".. autofunction:: testlib.utilities.DefaultJitter")
}

func TestGenerateDeterministic(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()

	_, err := Generate(testlib.Namespace(), testConfig(first), WithTimestamp(testDate))
	require.NoError(t, err)
	_, err = Generate(testlib.Namespace(), testConfig(second), WithTimestamp(testDate))
	require.NoError(t, err)

	assert.Equal(t,
		readFile(t, first, "testlib", "kernels"),
		readFile(t, second, "testlib", "kernels"),
	)

	// Re-running into the same output root overwrites cleanly.
	_, err = Generate(testlib.Namespace(), testConfig(first), WithTimestamp(testDate))
	require.NoError(t, err)
}

func TestGenerateShallowAliasWins(t *testing.T) {
	out := t.TempDir()
	matern52 := reflect.TypeOf(stationaries.Matern52{})
	root := object.NewModule("testlib").
		Set("Matern52", matern52).
		Set("kernels", object.NewModule("testlib.kernels").Set("Matern52", matern52))

	summary, err := Generate(root, testConfig(out), WithTimestamp(testDate))
	require.NoError(t, err)

	require.Equal(t, []string{filepath.Join(out, "testlib", "index.rst")}, summary.Files)
	doc := readFile(t, out, "testlib")
	assert.Contains(t, doc, ".. autoclass:: testlib.Matern52")
	// The deeper module only re-exports the class documented at the root,
	// so it is neither linked nor written.
	assert.NotContains(t, doc, "toctree")
	assert.NoDirExists(t, filepath.Join(out, "testlib", "kernels"))
}

func TestGenerateEmptyNamespace(t *testing.T) {
	out := t.TempDir()
	root := object.NewModule("testlib").
		Set("empty", object.NewModule("testlib.empty")).
		Set("_hidden", object.NewModule("testlib.hidden"))

	summary, err := Generate(root, testConfig(out), WithTimestamp(testDate))
	require.NoError(t, err)
	assert.Empty(t, summary.Files)
	assert.NoDirExists(t, filepath.Join(out, "testlib"))
}

func TestGenerateUnnamedRoot(t *testing.T) {
	out := t.TempDir()
	summary, err := Generate(object.NewModule(""), testConfig(out), WithTimestamp(testDate))
	require.NoError(t, err)
	assert.Empty(t, summary.Files)
}

func TestGenerateInvalidConfig(t *testing.T) {
	conf := testConfig(t.TempDir())
	conf.Namespace = ""

	_, err := Generate(testlib.Namespace(), conf)
	require.Error(t, err)
	assert.ErrorContains(t, err, "invalid configuration")
}

func TestGenerateWithDocComments(t *testing.T) {
	out := t.TempDir()
	_, err := Generate(testlib.Namespace(), testConfig(out),
		WithTimestamp(testDate), WithDocComments())
	require.NoError(t, err)

	kernels := readFile(t, out, "testlib", "kernels")
	assert.Contains(t, kernels, "Matern 5/2 covariance kernel")

	utilities := readFile(t, out, "testlib", "utilities")
	assert.Contains(t, utilities, "jitter added to covariance matrices")
}

func readFile(t *testing.T, out string, module ...string) string {
	t.Helper()
	path := filepath.Join(append([]string{out}, append(module, "index.rst")...)...)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func countAcrossFiles(t *testing.T, files []string, needle string) int {
	t.Helper()
	var count int
	for _, file := range files {
		data, err := os.ReadFile(file)
		require.NoError(t, err)
		count += strings.Count(string(data), needle)
	}
	return count
}
