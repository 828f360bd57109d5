package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_InspectIdentifier(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, []string{"engine:[demo]/class:[Foo]"})

	require.NoError(t, err)
	require.Contains(t, out.String(), "engine:[demo]/class:[Foo]")
	require.Contains(t, out.String(), "engine id: demo")
}

func TestRun_MalformedIdentifier(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, []string{"engine:[demo"})

	require.Error(t, err)
	require.Contains(t, err.Error(), "building identifier")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	out := &bytes.Buffer{}
	err := run(out, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}
