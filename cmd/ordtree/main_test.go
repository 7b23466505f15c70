package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runApp(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := newApp(&stdout, &stderr).Run(append([]string{"ordtree"}, args...))
	return stdout.String(), stderr.String(), err
}

func TestRunScript(t *testing.T) {
	out, _, err := runApp(t, "run",
		"+50", "+30", "+70", "+20", "+40", "+60", "+80",
		"dump", "min", "max", ">60", "-30", "dump", "-99", ">80", "len")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"tree contents: 20 30 40 50 60 70 80",
		"20",
		"80",
		"70",
		"true",
		"tree contents: 20 40 50 60 70 80",
		"false",
		"none",
		"6",
	}, "\n")+"\n", out)
}

func TestRunScriptEmpty(t *testing.T) {
	out, _, err := runApp(t, "run", "--name", "empty", "min", "max", "?1", "<1", "len", "dump")
	require.NoError(t, err)
	assert.Equal(t, "none\nnone\nfalse\nnone\n0\nempty contents:\n", out)
}

func TestRunScriptLeadingDelete(t *testing.T) {
	out, _, err := runApp(t, "run", "--", "-5", "+5", "-5", "len")
	require.NoError(t, err)
	assert.Equal(t, "false\ntrue\n0\n", out)
}

func TestRunScriptWords(t *testing.T) {
	out, _, err := runApp(t, "--kind", "word", "run", "+pear", "+apple", "+pear", "?apple", ">apple", "<pear", "dump")
	require.NoError(t, err)
	assert.Equal(t, "true\npear\napple\ntree contents: apple pear pear\n", out)
}

func TestRunScriptLogs(t *testing.T) {
	_, logs, err := runApp(t, "--log-level", "info", "run", "+1", "-2")
	require.NoError(t, err)
	assert.Contains(t, logs, "msg=inserted")
	assert.Contains(t, logs, "nothing deleted")
}

func TestRunScriptErrors(t *testing.T) {
	_, _, err := runApp(t, "run", "+1", "bogus")
	assert.ErrorContains(t, err, `unknown operation "bogus"`)

	_, _, err = runApp(t, "--kind", "word", "run", "+a", "bogus")
	assert.ErrorContains(t, err, `unknown operation "bogus"`)

	_, _, err = runApp(t, "run", "*1")
	assert.ErrorContains(t, err, `unknown operation "*1"`)

	_, _, err = runApp(t, "run", "+x")
	assert.ErrorContains(t, err, `parsing operation "+x"`)

	_, _, err = runApp(t, "--kind", "float", "run", "+1")
	assert.ErrorContains(t, err, "unknown value kind")
}

func TestDemo(t *testing.T) {
	out, _, err := runApp(t, "demo", "--seed", "1", "--count", "200")
	require.NoError(t, err)
	assert.Contains(t, out, "error_count: 0\n")
	assert.Contains(t, out, "from slice contents: ")

	out, _, err = runApp(t, "--kind", "word", "demo", "--seed", "7", "-n", "30")
	require.NoError(t, err)
	assert.Contains(t, out, "error_count: 0\n")

	_, _, err = runApp(t, "demo", "--count", "-1")
	assert.Error(t, err)
}

func TestShape(t *testing.T) {
	out, _, err := runApp(t, "shape", "2", "1", "3")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "2", strings.TrimSpace(lines[0]))

	_, _, err = runApp(t, "shape", "2", "x")
	assert.ErrorContains(t, err, `parsing value "x"`)
}

func TestRandomValues(t *testing.T) {
	a, b := randomInts(3, 100), randomInts(3, 100)
	assert.Equal(t, a, b)
	for _, v := range a {
		assert.True(t, v >= 0 && v < 500, "value %d out of range", v)
	}
	assert.Len(t, randomWords(3, 10), 10)
}
