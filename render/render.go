// Package render turns a theory.Resolution into something a person or a
// program can read. Drawing an actual staff is left to the consumer; the
// renderers here only lay out the key signature and the spelled notes.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/RyanBlaney/sonido-escala/theory"
)

// Renderer draws one resolution.
type Renderer interface {
	Render(w io.Writer, res theory.Resolution) error
}

// Formats accepted by New.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatTOML = "toml"
)

// New returns the renderer for a format name.
func New(format string) (Renderer, error) {
	switch strings.ToLower(format) {
	case "", FormatText:
		return Text{}, nil
	case FormatJSON:
		return JSON{Indent: "  "}, nil
	case FormatTOML:
		return TOML{}, nil
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}

// Text prints the label, the key signature and the notes. A note whose
// accidental is not implied by the signature is followed by the glyph to
// draw in brackets, e.g. "B4[n]".
type Text struct{}

func (Text) Render(w io.Writer, res theory.Resolution) error {
	signature := "no accidentals"
	if len(res.KeyAccidentals) > 0 {
		signature = strings.Join(res.KeyAccidentals, " ")
	}

	notes := make([]string, len(res.Notes))
	for i, n := range res.Notes {
		notes[i] = n.String()
		if n.Glyph != "" {
			notes[i] += "[" + n.Glyph + "]"
		}
	}

	_, err := fmt.Fprintf(w, "%s\nkey: %s (%s)\n%s\n", res.DisplayLabel, res.KeyName, signature, strings.Join(notes, " "))
	return err
}

// JSON writes the resolution as a JSON document.
type JSON struct {
	Indent string
}

func (j JSON) Render(w io.Writer, res theory.Resolution) error {
	return j.Encode(w, res)
}

// Encode writes any value with the renderer's settings.
func (j JSON) Encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", j.Indent)
	return enc.Encode(v)
}

// TOML writes the resolution as a TOML document.
type TOML struct{}

func (t TOML) Render(w io.Writer, res theory.Resolution) error {
	return t.Encode(w, res)
}

// Encode writes any value as TOML.
func (TOML) Encode(w io.Writer, v any) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	return enc.Encode(v)
}
