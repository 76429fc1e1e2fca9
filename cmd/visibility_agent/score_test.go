// Package main implements the visibility_agent CLI for score computation.
package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/visibility-engine/internal/types"
)

func TestScoreCommand_MissingContextFlag(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "score")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required flag(s) \"context\" not set")
}

func TestScoreCommand_InvalidContextFile(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "score",
		"--context", "/nonexistent/context.json")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "failed to read context file")
}

func TestScoreCommand_EmptyContext(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	contextFile := filepath.Join(tmpDir, "context.json")
	outputFile := filepath.Join(tmpDir, "result.json")
	require.NoError(t, os.WriteFile(contextFile, []byte(`{}`), 0644))

	cmd := exec.Command(binaryPath, "score",
		"--context", contextFile,
		"--out", outputFile)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "command output: %s", string(output))

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	var result types.DCSResult
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Equal(t, 0.0, result.FinalScore)
	assert.Len(t, result.LayerBreakdown, 6)
}

func TestScoreCommand_SchemaViolation(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	contextFile := filepath.Join(tmpDir, "context.json")
	require.NoError(t, os.WriteFile(contextFile, []byte(`{"session_total_queries": "twenty"}`), 0644))

	cmd := exec.Command(binaryPath, "score",
		"--context", contextFile)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "does not validate against schema")
}

func TestPressureCommand_EmptyContext(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	contextFile := filepath.Join(tmpDir, "context.json")
	outputFile := filepath.Join(tmpDir, "result.json")
	require.NoError(t, os.WriteFile(contextFile, []byte(`{}`), 0644))

	cmd := exec.Command(binaryPath, "pressure",
		"--context", contextFile,
		"--out", outputFile)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "command output: %s", string(output))

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	var result types.PressureResult
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Equal(t, types.PressureLow, result.RiskAccelerationIndicator)
	assert.NotEmpty(t, result.Disclaimer)
}
