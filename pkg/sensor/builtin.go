// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package sensor

import (
	"bytes"
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"
)

//go:embed builtin/*.toml
var builtinFS embed.FS

// Builtin returns the embedded profile with the given name
func Builtin(name string) (*Profile, error) {
	data, err := builtinFS.ReadFile(path.Join("builtin", name+".toml"))
	if err != nil {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownProfile, name, strings.Join(BuiltinNames(), ", "))
	}
	p, err := LoadTOML(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("built-in profile %q: %w", name, err)
	}
	return p, nil
}

// BuiltinNames returns the names of the embedded profiles in sorted order
func BuiltinNames() []string {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".toml"))
	}
	sort.Strings(names)
	return names
}
