// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Browse the handshake messages interactively",
	Long: `Interactive TUI listing every message of the profile handshake with its
decoded arguments, raw bytes, validation anomalies and bitstream statistics.

Keys:
  up/down, j/k  select message
  tab           toggle message bytes and full bitstream dump
  q, ctrl+c     quit`,
	Args: cobra.NoArgs,
	RunE: runInspect,
}

func init() {
	addProfileFlags(inspectCmd)
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	p, err := loadProfile()
	if err != nil {
		return err
	}

	b, err := buildHandshake(p, false)
	if err != nil {
		return err
	}

	m := initialInspectModel(p.Name, b)
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
