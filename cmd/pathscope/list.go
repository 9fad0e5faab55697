// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathscope

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [inputs...]",
	Short: "List eligible files with sizes",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	engine, err := buildEngine(cmd)
	if err != nil {
		return err
	}

	res := engine.Run(cmd.Context(), args...)

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"Path", "Size"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	var total uint64
	for _, path := range res.Eligible {
		size := "-"
		full := filepath.Join(engine.Root(), filepath.FromSlash(string(path)))
		if fi, statErr := os.Lstat(full); statErr == nil && fi.Mode().IsRegular() {
			size = humanize.Bytes(uint64(fi.Size()))
			total += uint64(fi.Size())
		}

		table.Append([]string{string(path), size})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(res.Eligible)),
		humanize.Bytes(total),
	})

	table.Render()
	renderWarnings(cmd.ErrOrStderr(), res.Warnings, colorEnabled())

	return nil
}
