// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2025 Kaz Walker, Thermoquad

package cmd

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Thermoquad/ev3uart/pkg/sensor"
	"github.com/rs/zerolog"
)

func TestParseLogLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"":        zerolog.InfoLevel,
		"debug":   zerolog.DebugLevel,
		" WARN ":  zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"trace":   zerolog.TraceLevel,
		"bogus":   zerolog.InfoLevel,
	}
	for in, want := range tests {
		if got := parseLogLevel(in); got != want {
			t.Errorf("parseLogLevel(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestEnvBool(t *testing.T) {
	t.Setenv("EV3UART_TEST_BOOL", "true")
	if !envBool("EV3UART_TEST_BOOL") {
		t.Error("expected true")
	}
	t.Setenv("EV3UART_TEST_BOOL", "nope")
	if envBool("EV3UART_TEST_BOOL") {
		t.Error("expected false for unparsable value")
	}
}

func TestWriteBitstream_Formats(t *testing.T) {
	p, err := sensor.Builtin("color")
	if err != nil {
		t.Fatal(err)
	}
	b, err := buildHandshake(p, true)
	if err != nil {
		t.Fatalf("buildHandshake: %v", err)
	}

	var raw bytes.Buffer
	if err := writeBitstream(&raw, b, formatRaw); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(raw.Bytes(), b.Bytes()) {
		t.Error("raw output differs from bitstream")
	}

	var hex bytes.Buffer
	if err := writeBitstream(&hex, b, formatHex); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(hex.String(), "0000  40 1D A2 49") {
		t.Errorf("unexpected hex dump start: %q", hex.String()[:20])
	}

	var summary bytes.Buffer
	if err := writeBitstream(&summary, b, "SUMMARY"); err != nil {
		t.Fatal(err)
	}
	out := summary.String()
	for _, want := range []string{"CMD_TYPE", "INFO_NAME", `"COL-REFLECT"`, "Total: 311 bytes"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q", want)
		}
	}

	if err := writeBitstream(&summary, b, "json"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestBuildHandshake_Strict(t *testing.T) {
	p, err := sensor.Builtin("color")
	if err != nil {
		t.Fatal(err)
	}
	// COL-CAL has width 5; passes Validate but the decimals do not fit
	p.Modes[0].Format.Decimals = 5

	if _, err := buildHandshake(p, false); err != nil {
		t.Errorf("non-strict build failed: %v", err)
	}
	if _, err := buildHandshake(p, true); err == nil {
		t.Error("expected strict build to fail")
	}
}

func TestLoadProfile(t *testing.T) {
	defer func() { profilePath, builtinName = "", "" }()

	p, err := loadProfile()
	if err != nil || p.Name != defaultBuiltin {
		t.Fatalf("default profile = %v, %v", p, err)
	}

	builtinName = "nonexistent"
	if _, err := loadProfile(); !errors.Is(err, sensor.ErrUnknownProfile) {
		t.Errorf("expected ErrUnknownProfile, got %v", err)
	}
}

func TestRunExport_RoundTrip(t *testing.T) {
	defer func() { profilePath, builtinName, exportOutput = "", "", "" }()
	dir := t.TempDir()

	builtinName = "color"
	exportOutput = filepath.Join(dir, "color.cbor")
	if err := runExport(exportCmd, nil); err != nil {
		t.Fatalf("export cbor: %v", err)
	}

	builtinName = ""
	profilePath = exportOutput
	exportOutput = filepath.Join(dir, "color.toml")
	if err := runExport(exportCmd, nil); err != nil {
		t.Fatalf("export toml: %v", err)
	}

	got, err := sensor.Load(exportOutput)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want, _ := sensor.Builtin("color")
	b1, _ := sensor.Handshake(got)
	b2, _ := sensor.Handshake(want)
	if !bytes.Equal(b1.Bytes(), b2.Bytes()) {
		t.Error("exported profile produces a different handshake")
	}

	exportOutput = filepath.Join(dir, "color.json")
	if err := runExport(exportCmd, nil); err == nil {
		t.Error("expected error for unsupported extension")
	}
}
