// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathscope

// Command pathscope resolves the file set a downstream pipeline may process
// under include/exclude pattern scoping.
package main

func main() {
	Execute()
}
