// Package emit encodes the extracted type model onto an output stream.
package emit

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"ctypedump/internal/config"
	"ctypedump/internal/model"
)

// Encoder writes one model.List to a stream in the configured format.
type Encoder struct {
	w   io.Writer
	out config.Output
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer, out config.Output) *Encoder {
	return &Encoder{w: w, out: out}
}

// Encode writes the entries. JSON output is a single newline-terminated
// line unless pretty-printing is on. An unknown format is a programming
// error: formats are validated at configuration time.
func (e *Encoder) Encode(entries model.List) error {
	switch e.out.Format {
	case config.FormatJSON:
		return e.encodeJSON(entries)
	case config.FormatYAML:
		return e.encodeYAML(entries)
	default:
		panic(fmt.Sprintf("emit: unvalidated output format %q", e.out.Format))
	}
}

func (e *Encoder) encodeJSON(entries model.List) error {
	var (
		data []byte
		err  error
	)

	if e.out.Pretty {
		data, err = json.MarshalIndent(entries, "", "  ")
	} else {
		data, err = json.Marshal(entries)
	}
	if err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}

	if _, err := e.w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}

func (e *Encoder) encodeYAML(entries model.List) error {
	enc := yaml.NewEncoder(e.w)

	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}
