package grammar

import (
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/ffparse/foundation/core/error"
)

// Format identifies the encoding of a grammar file
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath derives the encoding from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", mdwerror.New("unsupported grammar file extension").
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation("grammar.FormatFromPath").
		WithDetail("path", path)
}

// Decode parses a grammar definition and validates it
func Decode(data []byte, format Format) (*Grammar, error) {
	var def Definition

	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &def)
	case FormatTOML:
		err = toml.Unmarshal(data, &def)
	default:
		return nil, mdwerror.New("unknown grammar format").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("grammar.Decode").
			WithDetail("format", string(format))
	}
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to decode grammar").
			WithCode(mdwerror.CodeGrammarInvalid).
			WithOperation("grammar.Decode").
			WithDetail("format", string(format))
	}

	return New(def)
}

// LoadFile reads and validates a grammar file from fs
func LoadFile(fs afero.Fs, path string) (*Grammar, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to read grammar file").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("grammar.LoadFile").
			WithDetail("path", path)
	}

	g, err := Decode(data, format)
	if err != nil {
		return nil, mdwerror.Wrap(err, "invalid grammar file").
			WithOperation("grammar.LoadFile").
			WithDetail("path", path)
	}
	return g, nil
}
