// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"fmt"
	"os"

	"github.com/Thermoquad/ev3uart/pkg/ev3uart"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	dataMode   uint8
	dataValues []float64
	dataEmit   bool
	dataFormat string
)

var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Pack a sensor reading into a Data message",
	Long: `Pack values with the format of one profile mode and print the Data
message, or send it with --emit.

Examples:
  ev3uart data --mode 0 --values 42
  ev3uart data --mode 4 --values 120,340,87 --format hex
  ev3uart data --mode 2 --values 5 --emit --port /dev/ttyUSB0 --baud 57600`,
	Args: cobra.NoArgs,
	RunE: runData,
}

func init() {
	addProfileFlags(dataCmd)
	dataCmd.Flags().Uint8Var(&dataMode, "mode", 0, "Mode index")
	dataCmd.Flags().Float64SliceVar(&dataValues, "values", nil, "Comma separated element values")
	dataCmd.Flags().BoolVar(&dataEmit, "emit", false, "Send the message over the connection")
	dataCmd.Flags().StringVarP(&dataFormat, "format", "f", formatSummary, "Output format (summary, hex, raw)")
	_ = dataCmd.MarkFlagRequired("values")
	rootCmd.AddCommand(dataCmd)
}

func runData(cmd *cobra.Command, args []string) error {
	p, err := loadProfile()
	if err != nil {
		return err
	}

	msg, err := p.ModeSample(dataMode, dataValues)
	if err != nil {
		return err
	}

	b := ev3uart.NewBitstream()
	if err := b.Append(msg); err != nil {
		return err
	}

	if !dataEmit {
		return writeBitstream(os.Stdout, b, dataFormat)
	}

	conn, connInfo, err := OpenConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	log.Info().Str("connection", connInfo).Uint8("mode", dataMode).Msg("connected")
	if _, err := b.WriteTo(conn); err != nil {
		return fmt.Errorf("write data message: %w", err)
	}
	fmt.Printf("Sent %s", ev3uart.FormatEntry(b.Entries()[0]))
	return nil
}
