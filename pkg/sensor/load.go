// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Kaz Walker, Thermoquad

package sensor

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/fxamacker/cbor/v2"
)

// cborDecMode rejects map keys that no profile field claims
var cborDecMode = func() cbor.DecMode {
	dm, err := cbor.DecOptions{ExtraReturnErrors: cbor.ExtraDecErrorUnknownField}.DecMode()
	if err != nil {
		panic(err)
	}
	return dm
}()

// Load reads a profile from a .toml or .cbor file and validates it
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	var p *Profile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		p, err = LoadTOML(bytes.NewReader(data))
	case ".cbor":
		p, err = DecodeCBOR(data)
	default:
		return nil, fmt.Errorf("load profile %q: unsupported extension %q (expected .toml or .cbor)", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("load profile %q: %w", path, err)
	}
	return p, nil
}

// LoadTOML decodes and validates a TOML profile. Keys that do not map to a
// profile field are an error.
func LoadTOML(r io.Reader) (*Profile, error) {
	var p Profile
	meta, err := toml.NewDecoder(r).Decode(&p)
	if err != nil {
		return nil, fmt.Errorf("decode toml: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalidProfile, strings.Join(keys, ", "))
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// EncodeTOML writes the profile as TOML
func EncodeTOML(w io.Writer, p *Profile) error {
	if err := toml.NewEncoder(w).Encode(p); err != nil {
		return fmt.Errorf("encode toml: %w", err)
	}
	return nil
}

// DecodeCBOR decodes and validates a CBOR profile
func DecodeCBOR(data []byte) (*Profile, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty CBOR payload")
	}
	var p Profile
	if err := cborDecMode.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to decode CBOR: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// EncodeCBOR encodes the profile as an integer-keyed CBOR map
func EncodeCBOR(p *Profile) ([]byte, error) {
	data, err := cbor.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to encode CBOR: %w", err)
	}
	return data, nil
}
