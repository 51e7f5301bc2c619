// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Thermoquad/ev3uart/pkg/ev3uart"
	"github.com/Thermoquad/ev3uart/pkg/sensor"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Output formats
const (
	formatSummary = "summary"
	formatHex     = "hex"
	formatRaw     = "raw"
)

var (
	generateFormat string
	generateOutput string
	generateStrict bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the handshake bitstream for a sensor profile",
	Long: `Build the messages a sensor sends to the EV3 brick after reset and print them.

Formats:
  summary  one line per message with its decoded arguments and bytes (default)
  hex      offset-prefixed hex dump of the whole bitstream
  raw      the bitstream bytes, for piping or --output

With --strict, any argument the encoders would mask or truncate is an error.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	addProfileFlags(generateCmd)
	generateCmd.Flags().StringVarP(&generateFormat, "format", "f", formatSummary, "Output format (summary, hex, raw)")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Write output to file instead of stdout")
	generateCmd.Flags().BoolVar(&generateStrict, "strict", false, "Fail on masked or truncated message arguments")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	p, err := loadProfile()
	if err != nil {
		return err
	}

	b, err := buildHandshake(p, generateStrict)
	if err != nil {
		return err
	}

	out := io.Writer(os.Stdout)
	if generateOutput != "" {
		f, err := os.Create(generateOutput)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", generateOutput, err)
		}
		defer f.Close()
		out = f
	}

	if err := writeBitstream(out, b, generateFormat); err != nil {
		return err
	}
	log.Debug().Int("messages", len(b.Entries())).Int("bytes", b.Len()).Msg("handshake generated")
	return nil
}

// buildHandshake encodes the profile handshake. In strict mode every message
// is validated first and any anomaly aborts.
func buildHandshake(p *sensor.Profile, strict bool) (*ev3uart.Bitstream, error) {
	msgs, err := sensor.HandshakeMessages(p)
	if err != nil {
		return nil, err
	}

	anomalies := 0
	for _, m := range msgs {
		for _, v := range ev3uart.ValidateMessage(m) {
			anomalies++
			log.Warn().Str("kind", ev3uart.FormatKind(m.Kind)).Uint8("mode", m.Mode).Msg(v.Message)
		}
	}
	if strict && anomalies > 0 {
		return nil, fmt.Errorf("strict: %d message anomalies", anomalies)
	}

	return sensor.Handshake(p)
}

// writeBitstream renders the bitstream in the requested format
func writeBitstream(w io.Writer, b *ev3uart.Bitstream, format string) error {
	switch strings.ToLower(format) {
	case formatSummary:
		for _, e := range b.Entries() {
			if _, err := io.WriteString(w, ev3uart.FormatEntry(e)); err != nil {
				return err
			}
		}
		stats := ev3uart.Collect(b)
		_, err := fmt.Fprintf(w, "\n%sTotal: %d bytes\n", stats.String(), b.Len())
		return err
	case formatHex:
		_, err := io.WriteString(w, ev3uart.HexDump(b.Bytes()))
		return err
	case formatRaw:
		_, err := b.WriteTo(w)
		return err
	default:
		return fmt.Errorf("unknown format %q (expected summary, hex or raw)", format)
	}
}
