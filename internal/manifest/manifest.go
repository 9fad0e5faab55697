// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathscope

// Package manifest persists the outcome of a scoping run as a YAML document.
package manifest

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/woozymasta/pathscope"
)

// Manifest is the serialized record of one run: the root it scanned, the
// eligible paths in canonical order and the warnings in emission order.
type Manifest struct {
	Root        string                    `yaml:"root"`
	GeneratedAt time.Time                 `yaml:"generated_at"`
	Eligible    []pathscope.CanonicalPath `yaml:"eligible"`
	Warnings    []pathscope.Warning       `yaml:"warnings,omitempty"`
}

// New builds a manifest from a run result.
func New(root string, res *pathscope.Result) *Manifest {
	return &Manifest{
		Root:        root,
		GeneratedAt: time.Now().UTC(),
		Eligible:    res.Eligible,
		Warnings:    res.Warnings,
	}
}

// Marshal renders the manifest as YAML.
func (m *Manifest) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal manifest: %w", err)
	}

	return data, nil
}

// Write persists a manifest for res to path.
func Write(path, root string, res *pathscope.Result) error {
	data, err := New(root, res).Marshal()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write manifest %s: %w", path, err)
	}

	return nil
}
