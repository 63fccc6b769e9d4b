// Package report renders the decisions and resulting values of a resolution
// pass as a table, YAML or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/overrides"
)

// Format selects the output encoding.
type Format string

// Supported formats.
const (
	FormatTable Format = "table"
	FormatYAML  Format = "yaml"
	FormatJSON  Format = "json"
)

// Formats lists every supported format.
var Formats = []Format{FormatTable, FormatYAML, FormatJSON}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q", s)
}

// Entry is the serializable form of a decision.
type Entry struct {
	Phase         string `json:"phase" yaml:"phase"`
	Key           string `json:"key" yaml:"key"`
	QualifiedName string `json:"qualifiedName" yaml:"qualifiedName"`
	Value         string `json:"value,omitempty" yaml:"value,omitempty"`
	Outcome       string `json:"outcome" yaml:"outcome"`
	Error         string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Report is a resolution pass ready to render.
type Report struct {
	Pass      string         `json:"pass,omitempty" yaml:"pass,omitempty"`
	Resources []string       `json:"resources" yaml:"resources"`
	Decisions []Entry        `json:"decisions" yaml:"decisions"`
	Values    map[string]any `json:"values" yaml:"values"`

	// HideUnset drops unset decisions from table output.
	HideUnset bool `json:"-" yaml:"-"`
}

// New builds a report from decisions and the final target values.
func New(resources []string, decisions []overrides.Decision, values map[string]any) *Report {
	r := &Report{
		Resources: resources,
		Decisions: make([]Entry, 0, len(decisions)),
		Values:    values,
	}
	for _, d := range decisions {
		if r.Pass == "" {
			r.Pass = d.Pass
		}
		e := Entry{
			Phase:         string(d.Phase),
			Key:           d.Key,
			QualifiedName: d.QualifiedName,
			Value:         d.Value,
			Outcome:       string(d.Outcome),
		}
		if d.Err != nil {
			e.Error = d.Err.Error()
		}
		r.Decisions = append(r.Decisions, e)
	}
	return r
}

// Render writes the report to w in format.
func (r *Report) Render(w io.Writer, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case FormatTable:
		_, err := io.WriteString(w, r.table())
		return err
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func (r *Report) table() string {
	decisions := table.NewWriter()
	decisions.SetStyle(table.StyleRounded)
	decisions.SetTitle("Decisions")
	decisions.AppendHeader(table.Row{"Phase", "Property", "Value", "Outcome"})
	for _, e := range r.Decisions {
		if r.HideUnset && e.Outcome == string(overrides.OutcomeUnset) {
			continue
		}
		outcome := e.Outcome
		if e.Error != "" {
			outcome += ": " + e.Error
		}
		decisions.AppendRow(table.Row{e.Phase, e.QualifiedName, e.Value, outcome})
	}

	values := table.NewWriter()
	values.SetStyle(table.StyleRounded)
	values.SetTitle("Values")
	values.AppendHeader(table.Row{"Key", "Value", "Type"})
	keys := make([]string, 0, len(r.Values))
	for k := range r.Values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := r.Values[k]
		values.AppendRow(table.Row{k, fmt.Sprint(v), fmt.Sprintf("%T", v)})
	}
	values.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft},
	})

	return decisions.Render() + "\n" + values.Render() + "\n"
}
