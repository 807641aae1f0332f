package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"gopkg.in/yaml.v3"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	t.Setenv("AICC_LOG_MODE", "nop")

	var out bytes.Buffer

	cmd := newRootCmd(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.Execute()

	return out.String(), err
}

// safetyFixture is the table loader's fixture, shared with the CLI tests.
var safetyFixture = filepath.Join("..", "..", "internal", "tables", "testdata", "safety.yaml")

func fixture(name string) string {
	return filepath.Join("testdata", name)
}

func TestInspect(t *testing.T) {
	out, err := run(t, "inspect", safetyFixture)
	require.NoError(t, err, out)

	assert.Contains(t, out, `course:      SAFETY-101 "Safety Basics" (version 3.5)`)
	assert.Contains(t, out, "launch:      content/au1.html")
	assert.Contains(t, out, "description: Why safety matters.")
	assert.Contains(t, out, "units:       2")
	assert.Contains(t, out,
		"- AU1 content/au1.html mastery=0.80 max_time=45m0s actions=EXIT,MESSAGE mandatory=true completion=exit/-/passed")
	assert.Contains(t, out,
		"- AU2 content/au2.html mastery=0.90 max_time=2h0m0s actions=EXIT,MESSAGE mandatory=false")
}

func TestCheck_MixedResults(t *testing.T) {
	out, err := run(t, "check", "-j", "2", safetyFixture, fixture("no_root_unit.yaml"), fixture("missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, "2 of 3 course(s) failed to assemble", err.Error())

	assert.Contains(t, out, "ok "+safetyFixture)
	assert.Contains(t, out, "FAIL "+fixture("no_root_unit.yaml"))
	assert.Contains(t, out, "AICC_AU_NOT_FOUND")
	assert.Contains(t, out, "AICC_ROOT_FALLBACK")
	assert.Contains(t, out, "did you mean")
	assert.Contains(t, out, "FAIL "+fixture("missing.yaml"))

	// Output keeps argument order regardless of completion order.
	okAt := bytes.Index([]byte(out), []byte("ok "+safetyFixture))
	failAt := bytes.Index([]byte(out), []byte("FAIL "+fixture("no_root_unit.yaml")))
	assert.Less(t, okAt, failAt)
}

func TestCheck_StrictRoot(t *testing.T) {
	out, err := run(t, "check", "--strict-root", fixture("no_root_unit.yaml"))
	require.Error(t, err)
	assert.Contains(t, out, "AICC_NO_ROOT_BLOCK")
	assert.NotContains(t, out, "AICC_AU_NOT_FOUND")
}

func TestDump(t *testing.T) {
	out, err := run(t, "dump", safetyFixture)
	require.NoError(t, err, out)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "SAFETY-101", doc["id"])
	assert.Equal(t, "content/au1.html", doc["launch_url"])
	assert.Equal(t, "AU1", doc["root"])

	units, ok := doc["assignable_units"].([]any)
	require.True(t, ok)
	assert.Len(t, units, 2)
}

func TestDump_Failure(t *testing.T) {
	out, err := run(t, "dump", fixture("no_root_unit.yaml"))
	require.Error(t, err)
	assert.Equal(t, "1 of 1 course(s) failed to assemble", err.Error())

	assert.Contains(t, out, "FAIL "+fixture("no_root_unit.yaml"))
	assert.Equal(t, 1, strings.Count(out, "AICC_AU_NOT_FOUND"))
	assert.NotContains(t, out, "failed to assemble course")
}

func TestArgsRequired(t *testing.T) {
	_, err := run(t, "inspect")
	require.Error(t, err)
}
