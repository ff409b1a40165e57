package render

import (
	"fmt"
	"io"

	"github.com/lox/tarockbots/tarock"
	"gopkg.in/yaml.v3"
)

// YAML writes st as a YAML document.
func YAML(w io.Writer, st tarock.GameState) error {
	return encodeYAML(w, NewDocument(st))
}

// YAMLArchive is the YAML counterpart of TOMLArchive.
func YAMLArchive(w io.Writer, lines []int, states []tarock.GameState) error {
	archive, err := newArchive(lines, states)
	if err != nil {
		return err
	}
	return encodeYAML(w, archive)
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("render: encode yaml: %w", err)
	}
	return enc.Close()
}
