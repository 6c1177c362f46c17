package netfile

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrUnknownFormat is returned for an unsupported extension or format name.
	ErrUnknownFormat = errors.New("netfile: unknown format")

	// ErrEmptyDocument is returned when a document has neither edges nor pairs.
	ErrEmptyDocument = errors.New("netfile: document has no edges and no pairs")

	// ErrInvalidDocument wraps field-constraint violations.
	ErrInvalidDocument = errors.New("netfile: invalid document")
)

// Format is a document encoding.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Formats lists the supported formats.
var Formats = []Format{FormatJSON, FormatTOML, FormatYAML}

// ParseFormat maps a format name ("json", "toml", "yaml" or "yml", any case)
// to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// FormatFromPath derives the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}

	return ParseFormat(ext)
}

// Document is a named network or matching problem.
type Document struct {
	Source      string       `json:"source,omitempty" toml:"source,omitempty" yaml:"source,omitempty"`
	Sink        string       `json:"sink,omitempty" toml:"sink,omitempty" yaml:"sink,omitempty"`
	DesiredFlow *int64       `json:"desired_flow,omitempty" toml:"desired_flow,omitempty" yaml:"desired_flow,omitempty" validate:"omitempty,gte=0"`
	Edges       []EdgeRecord `json:"edges,omitempty" toml:"edges,omitempty" yaml:"edges,omitempty" validate:"dive"`
	Pairs       []PairRecord `json:"pairs,omitempty" toml:"pairs,omitempty" yaml:"pairs,omitempty" validate:"dive"`
}

// EdgeRecord is one arc of a document.
type EdgeRecord struct {
	From     string `json:"from" toml:"from" yaml:"from" validate:"required"`
	To       string `json:"to" toml:"to" yaml:"to" validate:"required"`
	Capacity int64  `json:"capacity" toml:"capacity" yaml:"capacity" validate:"gte=0"`
	Cost     int64  `json:"cost,omitempty" toml:"cost,omitempty" yaml:"cost,omitempty"`
	Flow     int64  `json:"flow,omitempty" toml:"flow,omitempty" yaml:"flow,omitempty" validate:"gte=0,ltefield=Capacity"`
}

// PairRecord is one candidate pair of a matching document.
type PairRecord struct {
	Left   string `json:"left" toml:"left" yaml:"left" validate:"required"`
	Right  string `json:"right" toml:"right" yaml:"right" validate:"required"`
	Weight int64  `json:"weight" toml:"weight" yaml:"weight"`
}
