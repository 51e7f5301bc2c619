// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"fmt"

	"github.com/Thermoquad/ev3uart/pkg/sensor"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const defaultBuiltin = "color"

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List built-in sensor profiles",
	Args:  cobra.NoArgs,
	RunE:  runProfiles,
}

func init() {
	rootCmd.AddCommand(profilesCmd)
}

func runProfiles(cmd *cobra.Command, args []string) error {
	for _, name := range sensor.BuiltinNames() {
		p, err := sensor.Builtin(name)
		if err != nil {
			return err
		}
		fmt.Printf("%-10s type=0x%02X modes=%d speed=%d  %s\n",
			name, p.Type, len(p.Modes), p.Speed, p.Description)
	}
	return nil
}

// loadProfile resolves --profile or --builtin, defaulting to the color sensor
func loadProfile() (*sensor.Profile, error) {
	if profilePath != "" {
		log.Debug().Str("path", profilePath).Msg("loading profile")
		return sensor.Load(profilePath)
	}

	name := builtinName
	if name == "" {
		name = defaultBuiltin
	}
	log.Debug().Str("builtin", name).Msg("loading profile")
	return sensor.Builtin(name)
}
