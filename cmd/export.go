// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Thermoquad/ev3uart/pkg/sensor"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Convert a sensor profile to TOML or CBOR",
	Long: `Write the selected profile to a file. The output format follows the
file extension: .toml for a readable profile, .cbor for the compact
integer-keyed encoding firmware can embed.

Examples:
  ev3uart export --builtin color --output color.cbor
  ev3uart export --profile color.cbor --output color.toml`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	addProfileFlags(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (.toml or .cbor)")
	_ = exportCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	p, err := loadProfile()
	if err != nil {
		return err
	}

	var data []byte
	switch ext := strings.ToLower(filepath.Ext(exportOutput)); ext {
	case ".toml":
		var buf bytes.Buffer
		if err := sensor.EncodeTOML(&buf, p); err != nil {
			return err
		}
		data = buf.Bytes()
	case ".cbor":
		data, err = sensor.EncodeCBOR(p)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported output extension %q (expected .toml or .cbor)", ext)
	}

	if err := os.WriteFile(exportOutput, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", exportOutput, err)
	}
	log.Info().Str("profile", p.Name).Str("output", exportOutput).Int("bytes", len(data)).Msg("profile exported")
	return nil
}
