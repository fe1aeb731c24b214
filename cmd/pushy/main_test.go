package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pushy/internal/report"
)

func runArgs(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func TestRun_DefaultAcceptsReference(t *testing.T) {
	code, out, _ := runArgs(t)
	assert.Equal(t, exitAccepted, code)
	assert.Contains(t, out, "[(q0, [EOS])]\n")
	assert.Contains(t, out, "The input is accepted\n")
}

func TestRun_Variants(t *testing.T) {
	for _, v := range []string{"bottom-up", "grammar", "simple"} {
		t.Run(v, func(t *testing.T) {
			code, out, _ := runArgs(t, "-variant", v, "-input", "01010", "-trace=false")
			assert.Equal(t, exitAccepted, code)
			assert.Equal(t, "The input is accepted\n", out)

			code, out, _ = runArgs(t, "-variant", v, "-input", "0110101", "-trace=false", "-dedup")
			assert.Equal(t, exitRejected, code)
			assert.Equal(t, "The input is not accepted\n", out)
		})
	}
}

func TestRun_BinaryDFA(t *testing.T) {
	code, out, _ := runArgs(t, "-machine", "dfa", "-input", "1001")
	assert.Equal(t, exitAccepted, code)
	assert.Equal(t, `The start state is: q0
The input is: 1
The state is now: q1
The input is: 0
The state is now: q2
The input is: 0
The state is now: q3
The input is: 1
The state is now: q4
The input is accepted
`, out)

	code, _, _ = runArgs(t, "-machine", "dfa", "-input", "0", "-trace=false")
	assert.Equal(t, exitRejected, code)
}

func TestRun_Door(t *testing.T) {
	code, out, _ := runArgs(t, "-machine", "door", "-input", "front,both", "-trace=false")
	assert.Equal(t, exitAccepted, code)
	assert.Equal(t, "The start state is: Closed\nThe final state is: Closed\n", out)
}

func TestRun_DemoInputPerMachine(t *testing.T) {
	code, out, errOut := runArgs(t, "-machine", "door")
	assert.Equal(t, exitAccepted, code)
	assert.Empty(t, errOut)
	assert.Equal(t, `The start state is: Closed
The input is: Front
The state is now: Open
The input is: Front
The state is now: Open
The input is: Both
The state is now: Closed
The input is: Back
The state is now: Closed
The input is: Neither
The state is now: Closed
The final state is: Closed
`, out)

	code, out, errOut = runArgs(t, "-machine", "dfa")
	assert.Equal(t, exitAccepted, code)
	assert.Empty(t, errOut)
	assert.NotContains(t, out, "STUCK")
	assert.Contains(t, out, "The start state is: q0\n")
	assert.Contains(t, out, "The input is accepted\n")

	code, out, _ = runArgs(t, "-machine", "dfa", "-format", "yaml", "-trace=false")
	require.Equal(t, exitAccepted, code)
	var rec report.Run
	require.NoError(t, yaml.Unmarshal([]byte(out), &rec))
	assert.Equal(t, "1000011", rec.Input)
	assert.Equal(t, 7, rec.Consumed)
	assert.Equal(t, "q4", rec.FinalState)
}

func TestRun_ExplicitEmptyInput(t *testing.T) {
	code, out, _ := runArgs(t, "-input", "", "-trace=false")
	assert.Equal(t, exitAccepted, code)
	assert.Equal(t, "The input is accepted\n", out)

	code, _, _ = runArgs(t, "-machine", "dfa", "-input", "", "-trace=false")
	assert.Equal(t, exitRejected, code)
}

func TestRun_YAML(t *testing.T) {
	code, out, _ := runArgs(t, "-input", "0", "-format", "yaml", "-trace=false")
	require.Equal(t, exitAccepted, code)

	var rec report.Run
	require.NoError(t, yaml.Unmarshal([]byte(out), &rec))
	assert.Equal(t, "pda", rec.Machine)
	assert.Equal(t, "bottom-up", rec.Variant)
	assert.Equal(t, "ACCEPTED", rec.Verdict)
	assert.Equal(t, 1, rec.Consumed)
	assert.NotEmpty(t, rec.ID)
	assert.Empty(t, rec.Trace)
}

func TestRun_ConfigFileWithOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pushy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("variant: simple\ninput: \"0110\"\ntrace: false\n"), 0o600))

	code, out, _ := runArgs(t, "-config", path)
	assert.Equal(t, exitAccepted, code)
	assert.Equal(t, "The input is accepted\n", out)

	code, _, _ = runArgs(t, "-config", path, "-input", "011")
	assert.Equal(t, exitRejected, code)
}

func TestRun_Errors(t *testing.T) {
	for name, args := range map[string][]string{
		"bad flag":     {"-nope"},
		"bad machine":  {"-machine", "turing"},
		"bad variant":  {"-variant", "top-down"},
		"bad symbol":   {"-input", "012"},
		"bad bit":      {"-machine", "dfa", "-input", "2"},
		"bad door":     {"-machine", "door", "-input", "side"},
		"bad format":   {"-format", "json"},
		"missing file": {"-config", filepath.Join(t.TempDir(), "nope.yaml")},
	} {
		t.Run(name, func(t *testing.T) {
			code, _, errOut := runArgs(t, args...)
			assert.Equal(t, exitError, code)
			assert.NotEmpty(t, errOut)
		})
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var stdout, stderr bytes.Buffer
	code := run(ctx, []string{"-input", "0110"}, &stdout, &stderr)
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr.String(), context.Canceled.Error())
}
