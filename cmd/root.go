// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Serial connection flags
	portName string
	baudRate int

	// WebSocket connection flags
	wsURL         string
	wsUsername    string
	wsNoSSLVerify bool

	// Logging
	logLevel string

	// Profile selection, shared by every command that builds messages
	profilePath string
	builtinName string
)

var rootCmd = &cobra.Command{
	Use:   "ev3uart",
	Short: "EV3 UART Sensor Message Generator",
	Long: `ev3uart - A CLI tool for generating LEGO EV3 UART sensor messages.

Builds the handshake a sensor sends to the EV3 brick from a sensor profile,
packs data messages, and writes either to a serial port or a WebSocket
serial bridge. Profiles are TOML or CBOR files, or one of the built-in
profiles listed by "ev3uart profiles".

Connection modes:
  Serial:    --port /dev/ttyUSB0 [--baud 2400]
  WebSocket: --url ws://host/path [--username user]

For WebSocket authentication, the password is read from the EV3UART_PASSWORD
environment variable, or prompted interactively if not set. The --password
flag is intentionally not provided to avoid leaking credentials in shell history.`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(logLevel)
	},
}

func init() {
	// Serial connection flags
	rootCmd.PersistentFlags().StringVarP(&portName, "port", "p", "", "Serial port device")
	rootCmd.PersistentFlags().IntVarP(&baudRate, "baud", "b", 2400, "Baud rate (serial only, the EV3 handshake runs at 2400)")

	// WebSocket connection flags
	rootCmd.PersistentFlags().StringVarP(&wsURL, "url", "u", "", "WebSocket URL (ws:// or wss://)")
	rootCmd.PersistentFlags().StringVar(&wsUsername, "username", "", "Username for HTTP Basic auth")
	rootCmd.PersistentFlags().BoolVar(&wsNoSSLVerify, "no-ssl-verify", false, "Skip TLS certificate verification (wss:// only)")

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error); overrides EV3UART_LOG_LEVEL")
}

// addProfileFlags registers --profile and --builtin on a command
func addProfileFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&profilePath, "profile", "", "Sensor profile file (.toml or .cbor)")
	cmd.Flags().StringVar(&builtinName, "builtin", "", "Built-in sensor profile (default \"color\")")
	cmd.MarkFlagsMutuallyExclusive("profile", "builtin")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
