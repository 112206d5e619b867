package cli

import (
	"bytes"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vdobler/plotgrid"
	"github.com/vdobler/plotgrid/internal/config"
)

func createDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "people.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()
	_, err = db.Exec(`
		CREATE TABLE people (name TEXT, age INTEGER, height REAL, weight REAL);
		INSERT INTO people VALUES
			('ann', 31, 1.72, 61.5), ('bob', 22, 1.85, 80), ('cy', 47, 1.60, 55),
			('di', 38, 1.78, 70.5), ('ed', 29, 1.92, 95);
		CREATE TABLE names (name TEXT);
		INSERT INTO names VALUES ('ann'), ('bob');
	`)
	require.NoError(t, err)
	return path
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (stand-in for testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(old)) })
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	chdir(t, t.TempDir())
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "gridplot v"+Version+"\n", out)
}

func TestBoxplotsCommand(t *testing.T) {
	db := createDB(t)
	svg := filepath.Join(t.TempDir(), "box.svg")

	_, err := run(t, "boxplots", db, "--table", "people", "--out", svg, "--log-level", "error")
	require.NoError(t, err)

	data, err := os.ReadFile(svg)
	require.NoError(t, err)
	for _, want := range []string{"Boxplot of age", "Boxplot of height", "Boxplot of weight"} {
		assert.Contains(t, string(data), want)
	}
}

func TestDistributionsCommandStdout(t *testing.T) {
	db := createDB(t)
	out, err := run(t, "distributions", "--input", db, "--table", "people",
		"--out", "-", "--display", "svg", "--bins", "3", "--columns", "age,name",
		"--title-prefix", "Spread of", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "Spread of age")
	assert.NotContains(t, out, "Spread of height")
}

func TestDistributionsCommandHTML(t *testing.T) {
	db := createDB(t)
	out, err := run(t, "distributions", db, "--table", "people", "--out", "-",
		"--display", "html", "--exclude", "weight", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "Distribution of height")
	assert.NotContains(t, out, "Distribution of weight")
}

func TestNoNumericColumns(t *testing.T) {
	db := createDB(t)
	for _, sub := range []string{"boxplots", "distributions", "describe"} {
		out, err := run(t, sub, db, "--table", "names", "--log-level", "error")
		require.NoError(t, err, sub)
		assert.Equal(t, plotgrid.NoNumericColumns+"\n", out, sub)
	}
}

func TestDescribeCommand(t *testing.T) {
	out, err := run(t, "describe", createDB(t), "--table", "people", "--log-level", "error")
	require.NoError(t, err)
	for _, want := range []string{"people", "age", "int", "height", "float", "mean", "33.4", "47"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "ann")
}

func TestDescribeCommandRows(t *testing.T) {
	out, err := run(t, "describe", createDB(t), "--table", "people", "--rows", "2", "--log-level", "error")
	require.NoError(t, err)
	for _, want := range []string{"(2 rows)", "name <string>", "ann", "bob", "mean", "33.4"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "cy")
}

func TestCommandErrors(t *testing.T) {
	_, err := run(t, "boxplots")
	assert.ErrorContains(t, err, "no input file")

	_, err = run(t, "boxplots", "data.json")
	assert.Error(t, err)

	_, err = run(t, "boxplots", "x.db", "--display", "gif")
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = run(t, "distributions", createDB(t), "--table", "people", "--bins=-2", "--out", "-")
	assert.Error(t, err)

	_, err = run(t, "boxplots", createDB(t), "--table", "people", "--columns", "nope")
	assert.ErrorIs(t, err, plotgrid.ErrNoSuchField)
}

func TestWriteSummaries(t *testing.T) {
	var buf bytes.Buffer
	df := plotgrid.NewDataFrame("t", nil)
	require.NoError(t, df.AddFloats("v", []float64{1, 2, 3, 4}))
	writeSummaries(&buf, df.Name, plotgrid.Describe(df))
	out := buf.String()
	assert.Contains(t, out, "2.5")
	assert.Equal(t, 1, strings.Count(out, "│ v "))
}
