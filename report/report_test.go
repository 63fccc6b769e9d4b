package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/overrides"
)

func sampleReport() *Report {
	decisions := []overrides.Decision{
		{Pass: "p1", Phase: overrides.PhaseDefaults, Key: "timeout", QualifiedName: "timeout", Value: "30", Outcome: overrides.OutcomeCoercedInt},
		{Pass: "p1", Phase: overrides.PhaseOverride, Key: "timeout", QualifiedName: "db.timeout", Outcome: overrides.OutcomeUnset},
		{Pass: "p1", Phase: overrides.PhaseOverride, Key: "port", QualifiedName: "db.port", Value: "x", Outcome: overrides.OutcomeFailed, Err: errors.New("type mismatch")},
	}
	return New([]string{"conf:default.arquillian-db.properties"}, decisions, map[string]any{"timeout": 30, "port": 8080})
}

func TestNew(t *testing.T) {
	r := sampleReport()

	if r.Pass != "p1" {
		t.Errorf("Pass = %q, want p1", r.Pass)
	}
	if len(r.Decisions) != 3 {
		t.Fatalf("got %d entries, want 3", len(r.Decisions))
	}
	if got := r.Decisions[2].Error; got != "type mismatch" {
		t.Errorf("Error = %q, want %q", got, "type mismatch")
	}
}

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := sampleReport().Render(&buf, FormatJSON); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	var decoded struct {
		Pass      string           `json:"pass"`
		Decisions []map[string]any `json:"decisions"`
		Values    map[string]any   `json:"values"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if decoded.Decisions[1]["outcome"] != "unset" {
		t.Errorf("outcome = %v, want unset", decoded.Decisions[1]["outcome"])
	}
	if _, ok := decoded.Decisions[1]["value"]; ok {
		t.Error("empty value should be omitted")
	}
	if decoded.Values["port"] != float64(8080) {
		t.Errorf("port = %v, want 8080", decoded.Values["port"])
	}
}

func TestRender_YAML(t *testing.T) {
	var buf bytes.Buffer
	if err := sampleReport().Render(&buf, FormatYAML); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	var decoded map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, buf.String())
	}
	if decoded["pass"] != "p1" {
		t.Errorf("pass = %v, want p1", decoded["pass"])
	}
	if !strings.Contains(buf.String(), "qualifiedName: db.timeout") {
		t.Errorf("missing qualified name in:\n%s", buf.String())
	}
}

func TestRender_Table(t *testing.T) {
	r := sampleReport()

	var buf bytes.Buffer
	if err := r.Render(&buf, FormatTable); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Decisions", "Values", "db.timeout", "failed: type mismatch", "8080"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}

	r.HideUnset = true
	buf.Reset()
	if err := r.Render(&buf, FormatTable); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Contains(buf.String(), "db.timeout") {
		t.Errorf("unset decision should be hidden:\n%s", buf.String())
	}
}

func TestParseFormat(t *testing.T) {
	for _, f := range Formats {
		got, err := ParseFormat(string(f))
		if err != nil || got != f {
			t.Errorf("ParseFormat(%q) = %q, %v", f, got, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
	if err := sampleReport().Render(&bytes.Buffer{}, Format("xml")); err == nil {
		t.Error("Render(xml) should fail")
	}
}
