package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formkit/pkg/form"
)

const (
	outputYAML = "yaml"
	outputJSON = "json"
)

type report struct {
	Valid  bool                `json:"valid" yaml:"valid"`
	Lang   string              `json:"lang" yaml:"lang"`
	Errors map[string][]string `json:"errors,omitempty" yaml:"errors,omitempty"`
	Fields []fieldReport       `json:"fields" yaml:"fields"`
}

type fieldReport struct {
	Name  string         `json:"name" yaml:"name"`
	Label string         `json:"label" yaml:"label"`
	Value string         `json:"value,omitempty" yaml:"value,omitempty"`
	Flags map[string]any `json:"flags,omitempty" yaml:"flags,omitempty"`
}

func newReport(f *form.Form, valid bool, lang string) report {
	r := report{Valid: valid, Lang: lang}
	if errs := f.Errors(); !errs.IsEmpty() {
		r.Errors = errs.Map()
	}
	for _, field := range f.Fields() {
		fr := fieldReport{
			Name:  field.Name(),
			Label: field.Label(),
			Flags: field.Flags(),
		}
		// Secrets never leave the process.
		if field.Name() != "password" && field.Name() != "confirm" {
			fr.Value = field.Value()
		}
		r.Fields = append(r.Fields, fr)
	}
	return r
}

func writeReport(w io.Writer, format string, r report) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w %q: must be %q or %q", errInvalidOutput, format, outputYAML, outputJSON)
	}
}
