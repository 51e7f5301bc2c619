// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const defaultLogLevel = zerolog.InfoLevel

var loggingOnce sync.Once

// setupLogging configures the global logger once. Diagnostics go to stderr so
// generated output on stdout can be piped.
//
// Environment:
//
//	EV3UART_LOG_LEVEL      trace, debug, info, warn, error (flag wins)
//	EV3UART_LOG_NOCOLOR    disable ANSI colour when true
//	EV3UART_LOG_TIMESTAMP  prefix lines with an RFC3339 timestamp when true
func setupLogging(flagLevel string) {
	loggingOnce.Do(func() {
		timestamps := envBool("EV3UART_LOG_TIMESTAMP")
		output := zerolog.ConsoleWriter{
			Out:     os.Stderr,
			NoColor: envBool("EV3UART_LOG_NOCOLOR"),
		}
		if timestamps {
			output.TimeFormat = time.RFC3339
		} else {
			output.PartsExclude = []string{zerolog.TimestampFieldName}
		}

		logger := zerolog.New(output)
		if timestamps {
			logger = logger.With().Timestamp().Logger()
		}

		level := flagLevel
		if level == "" {
			level = os.Getenv("EV3UART_LOG_LEVEL")
		}
		log.Logger = logger.Level(parseLogLevel(level))
	})
}

// parseLogLevel maps a level name to a zerolog level, falling back to the default
func parseLogLevel(s string) zerolog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return defaultLogLevel
	}
	if s == "warning" {
		s = "warn"
	}
	level, err := zerolog.ParseLevel(s)
	if err != nil || level == zerolog.NoLevel {
		return defaultLogLevel
	}
	return level
}

func envBool(name string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(name)))
	return err == nil && v
}
