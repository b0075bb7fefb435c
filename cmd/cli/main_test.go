package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}

	// --- Act ---
	// The run function should see `shouldExit=true` and return a nil error.
	err := run(out, logs, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Providing an unknown flag will cause cli.Parse to return an error.
	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}

	// --- Act ---
	// The run function should propagate the error from cli.Parse.
	err := run(out, logs, args)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_ListStandards(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}

	err := run(out, logs, []string{"-l"})

	require.NoError(t, err)
	require.Contains(t, out.String(), "Supported EDI Standards:")
	require.Contains(t, out.String(), "ANSI X12 (North American Standard)")
}

func TestRun_Search(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}

	err := run(out, logs, []string{"-c", "850"})

	require.NoError(t, err)
	require.Contains(t, out.String(), "Search Results for '850':")
	require.Contains(t, out.String(), "• 850: Purchase Order")
}

func TestRun_NoMatchesStillSucceeds(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}

	err := run(out, logs, []string{"-c", "ZZZZ"})

	require.NoError(t, err, "absence of results is not a failure")
	require.Contains(t, out.String(), "No EDI documents found matching 'ZZZZ'")
}
