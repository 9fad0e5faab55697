// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathscope

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/woozymasta/pathscope/internal/manifest"
)

func TestScanCommand(t *testing.T) {
	root := t.TempDir()
	mustWrite(t, filepath.Join(root, "main.go"), "package main\n")
	mustWrite(t, filepath.Join(root, "notes.txt"), "notes\n")
	mustWrite(t, filepath.Join(root, "vendor", "dep.go"), "package dep\n")

	scratch := t.TempDir()
	manifestPath := filepath.Join(scratch, "manifest.yaml")

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{
		"scan",
		"--root", root,
		"--include", "*.go",
		"--manifest", manifestPath,
		"--log-file", filepath.Join(scratch, "scan.log"),
	})

	require.NoError(t, rootCmd.Execute())

	// vendor/dep.go falls to the built-in vendor/ exclude.
	assert.Equal(t, []string{"main.go"}, strings.Fields(out.String()))

	data, err := os.ReadFile(manifestPath)
	require.NoError(t, err)

	var m manifest.Manifest
	require.NoError(t, yaml.Unmarshal(data, &m))
	assert.Equal(t, root, m.Root)
	require.Len(t, m.Eligible, 1)
}

func mustWrite(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
