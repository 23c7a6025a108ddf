package main

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func TestRunRejectsMissingRules(t *testing.T) {
	err := run([]string{"--addr", "127.0.0.1:0", "--rules", filepath.Join(t.TempDir(), "missing.yaml")})
	require.Error(t, err)
}

func TestRunRejectsUnknownLevel(t *testing.T) {
	err := run([]string{"--log-level", "loud"})
	require.Error(t, err)
}

func TestRunHelp(t *testing.T) {
	err := run([]string{"--help"})
	require.True(t, errors.Is(err, pflag.ErrHelp))
}
