// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var emitStrict bool

var emitCmd = &cobra.Command{
	Use:   "emit",
	Short: "Send the handshake bitstream over serial or WebSocket",
	Long: `Build the profile handshake and write it to the connection, as a sensor
does after reset. Replies from the host are not read.

Examples:
  ev3uart emit --port /dev/ttyUSB0
  ev3uart emit --port /dev/ttyUSB0 --profile touch.toml --strict
  ev3uart emit --url ws://bridge.local/uart --username admin`,
	Args: cobra.NoArgs,
	RunE: runEmit,
}

func init() {
	addProfileFlags(emitCmd)
	emitCmd.Flags().BoolVar(&emitStrict, "strict", false, "Fail on masked or truncated message arguments")
	rootCmd.AddCommand(emitCmd)
}

func runEmit(cmd *cobra.Command, args []string) error {
	p, err := loadProfile()
	if err != nil {
		return err
	}

	b, err := buildHandshake(p, emitStrict)
	if err != nil {
		return err
	}

	conn, connInfo, err := OpenConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	log.Info().Str("connection", connInfo).Str("profile", p.Name).Msg("connected")

	n, err := b.WriteTo(conn)
	if err != nil {
		return fmt.Errorf("write handshake: %w", err)
	}
	fmt.Printf("Sent %d messages (%d bytes)\n", len(b.Entries()), n)
	return nil
}
