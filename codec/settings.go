package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/tarantool/go-serializer/internal/options"
)

// Settings is the YAML form of Options, so that writer and reader
// configuration can be kept in configuration files:
//
//	namespaces:
//	  - prefix: p
//	    uri: urn:people
//	indent: "  "
//	encoding: windows-1252
//	value_encoding: cbor
type Settings struct {
	Namespaces       []Namespace `yaml:"namespaces"`
	Prefix           string      `yaml:"prefix"`
	Indent           string      `yaml:"indent"`
	OmitDeclaration  bool        `yaml:"omit_declaration"`
	Encoding         string      `yaml:"encoding"`
	Strict           *bool       `yaml:"strict"`
	DefaultNamespace string      `yaml:"default_namespace"`
	ValueEncoding    string      `yaml:"value_encoding"`
	MaxPayloadSize   int         `yaml:"max_payload_size"`
}

// LoadSettings parses a YAML settings document. Unknown keys are rejected,
// an empty document yields zero Settings.
func LoadSettings(data []byte) (Settings, error) {
	var out Settings

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	err := decoder.Decode(&out)
	switch {
	case errors.Is(err, io.EOF):
		return Settings{}, nil //nolint:exhaustruct
	case err != nil:
		return Settings{}, fmt.Errorf("failed to load settings: %w", err) //nolint:exhaustruct
	}

	return out, nil
}

// LoadSettingsFile reads and parses a YAML settings file.
func LoadSettingsFile(fs afero.Fs, path string) (Settings, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Settings{}, err //nolint:exhaustruct,wrapcheck
	}

	return LoadSettings(data)
}

// Options converts settings into a single Option. Only fields set in the
// document override the defaults.
func (s Settings) Options() (Option, error) {
	var cbs []Option

	if len(s.Namespaces) > 0 {
		cbs = append(cbs, WithNamespaces(s.Namespaces...))
	}

	if s.Prefix != "" || s.Indent != "" {
		cbs = append(cbs, WithIndent(s.Prefix, s.Indent))
	}

	if s.OmitDeclaration {
		cbs = append(cbs, WithoutDeclaration())
	}

	if s.Encoding != "" {
		cbs = append(cbs, WithEncoding(s.Encoding))
	}

	if s.Strict != nil {
		cbs = append(cbs, WithStrict(*s.Strict))
	}

	if s.DefaultNamespace != "" {
		cbs = append(cbs, WithDefaultNamespace(s.DefaultNamespace))
	}

	if s.ValueEncoding != "" {
		encoding, err := ParseValueEncoding(s.ValueEncoding)
		if err != nil {
			return nil, err
		}

		cbs = append(cbs, WithValueEncoding(encoding))
	}

	switch {
	case s.MaxPayloadSize < 0:
		return nil, NewInvalidArgumentError(fmt.Sprintf("max_payload_size must not be negative, got %d", s.MaxPayloadSize))
	case s.MaxPayloadSize > 0:
		cbs = append(cbs, WithMaxPayloadSize(s.MaxPayloadSize))
	}

	return options.Chain(cbs...), nil
}
