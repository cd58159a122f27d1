package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"timeaxis/internal/period"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

// --- ticks ---

func TestTicks_Decades(t *testing.T) {
	out, _, err := run(t, "ticks", "--from", "1900", "--to", "1990")
	if err != nil {
		t.Fatalf("ticks: %v", err)
	}
	if !strings.HasPrefix(out, "granularity: year/10\n") {
		t.Fatalf("unexpected header:\n%s", out)
	}
	if got := strings.Count(out, "\n"); got != 11 {
		t.Fatalf("lines = %d, want 11:\n%s", got, out)
	}
	if !strings.Contains(out, "  1950\n") {
		t.Fatalf("missing 1950 tick:\n%s", out)
	}
}

func TestTicks_DaysWithJulian(t *testing.T) {
	out, _, err := run(t, "ticks", "--from", "10/3/44BCE", "--to", "20/3/44BCE")
	if err != nil {
		t.Fatalf("ticks: %v", err)
	}
	if !strings.Contains(out, "15/3/44BCE | 17/3/44BCE") {
		t.Fatalf("missing ides of march:\n%s", out)
	}
}

func TestTicks_InvertedDomain(t *testing.T) {
	_, _, err := run(t, "ticks", "--from", "100", "--to", "50")
	if !errors.Is(err, period.ErrInvalidRange) {
		t.Fatalf("error = %v, want ErrInvalidRange", err)
	}
}

// --- convert ---

func TestConvert(t *testing.T) {
	out, _, err := run(t, "convert", "13/3/1900", "-5000", "1/1/50000")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	want := []string{
		"gregorian=13/3/1900 julian=29/2/1900 transition=at",
		"gregorian=1/1/5000BCE julian=",
		"gregorian=1/1/50000 julian=unsupported year",
	}
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %q:\n%s", w, out)
		}
	}
}

func TestConvert_LeadingNegativeYear(t *testing.T) {
	out, _, err := run(t, "convert", "--", "-44", "15/3/-44")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	for _, w := range []string{
		"gregorian=1/1/44BCE julian=3/1/44BCE\n",
		"gregorian=15/3/44BCE julian=17/3/44BCE\n",
	} {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %q:\n%s", w, out)
		}
	}
}

func TestConvert_FlagsBeforeDates(t *testing.T) {
	out, errOut, err := run(t, "convert", "--log-format", "json", "--debug", "1/1/1901", "-1")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if !strings.Contains(out, "gregorian=1/1/1901 julian=19/12/1900\n") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if !strings.Contains(out, "gregorian=1/1/1BCE julian=3/1/1BCE\n") {
		t.Errorf("year -1 not read as a date:\n%s", out)
	}
	if !strings.Contains(errOut, `"msg":"config.loaded"`) {
		t.Errorf("flags before the dates were not applied: %s", errOut)
	}
}

func TestConvert_BadDate(t *testing.T) {
	_, _, err := run(t, "convert", "soon")
	if !errors.Is(err, period.ErrDateParse) {
		t.Fatalf("error = %v, want ErrDateParse", err)
	}
}

// --- select ---

type payload struct {
	Topics  []string `json:"topics"`
	Regions []string `json:"regions"`
	Length  string   `json:"length"`
	Period  struct {
		Start string `json:"start"`
		End   string `json:"end"`
	} `json:"period"`
}

func TestSelect(t *testing.T) {
	// Default layout: 1200px wide with 40px margins, 90 years over 1120px.
	out, _, err := run(t, "select", "--from", "1900", "--to", "1990", "--x", "200",
		"--topic", "Politics & Governance", "--region", "Europe", "--length", "200-500")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	var p payload
	if err := json.Unmarshal([]byte(out), &p); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if p.Period.Start != "1910" || p.Period.End != "1920" {
		t.Fatalf("period = %+v, want 1910..1920", p.Period)
	}
	if p.Length != "200-500" || len(p.Topics) != 1 || p.Regions[0] != "Europe" {
		t.Fatalf("payload = %+v", p)
	}
}

func TestSelect_EditPeriod(t *testing.T) {
	out, _, err := run(t, "select", "--from", "1900", "--to", "1990", "--x", "200", "--end", "1/1/1911")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	var p payload
	if err := json.Unmarshal([]byte(out), &p); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	// One year: month-level labels.
	if p.Period.Start != "1/1910" || p.Period.End != "1/1911" {
		t.Fatalf("period = %+v, want 1/1910..1/1911", p.Period)
	}
}

func TestSelect_InvalidEdit(t *testing.T) {
	_, _, err := run(t, "select", "--from", "1900", "--to", "1990", "--x", "200", "--start", "100", "--end", "50")
	if !errors.Is(err, period.ErrInvalidRange) {
		t.Fatalf("error = %v, want ErrInvalidRange", err)
	}
}

func TestSelect_OutOfDomain(t *testing.T) {
	_, _, err := run(t, "select", "--from", "1900", "--to", "1990", "--x", "5")
	if !errors.Is(err, period.ErrOutOfDomain) {
		t.Fatalf("error = %v, want ErrOutOfDomain", err)
	}
}

// --- render ---

func TestRender_Stdout(t *testing.T) {
	out, _, err := run(t, "render", "--from", "1900", "--to", "1990", "--click", "200")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "<svg") || !strings.Contains(out, `class="highlight-area"`) {
		t.Fatalf("unexpected SVG:\n%s", out)
	}
	if !strings.Contains(out, ">1950</tspan>") {
		t.Fatal("unzoomed axis should label 1950")
	}
}

func TestRender_ZoomToTypedPeriodWithEvents(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "events.csv")
	if err := os.WriteFile(csvPath, []byte("date,title\n15/3/44BCE,Ides of March\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfgPath := filepath.Join(dir, "timeaxis.yaml")
	if err := os.WriteFile(cfgPath, []byte("event_marker:\n  shape: triangle\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	svgPath := filepath.Join(dir, "axis.svg")

	_, errOut, err := run(t, "render", "--config", cfgPath,
		"--from", "1/1/50BCE", "--to", "1/1/40BCE",
		"--period-start", "1/3/44BCE", "--period-end", "1/4/44BCE", "--zoom",
		"--events", csvPath, "--output", svgPath)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(errOut, "Timeline SVG generated successfully") {
		t.Errorf("missing success message: %s", errOut)
	}
	data, err := os.ReadFile(svgPath)
	if err != nil {
		t.Fatal(err)
	}
	svg := string(data)
	for _, want := range []string{">15/3/44BCE</tspan>", "Ides of March", "<polygon"} {
		if !strings.Contains(svg, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
}

func TestRender_ClickOutsideIsIgnored(t *testing.T) {
	out, _, err := run(t, "render", "--from", "1900", "--to", "1990", "--click", "5")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(out, `class="highlight-area"`) {
		t.Fatal("click outside the ticks should not highlight")
	}
}

func TestRender_BadConfig(t *testing.T) {
	_, _, err := run(t, "render", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config")
	}
}

func TestRender_JSONLogs(t *testing.T) {
	_, errOut, err := run(t, "render", "--from", "1900", "--to", "1990", "--click", "5", "--log-format", "json")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	line := strings.TrimSpace(errOut)
	var rec map[string]any
	if err := json.Unmarshal([]byte(line), &rec); err != nil {
		t.Fatalf("stderr is not a JSON log line: %v\n%s", err, errOut)
	}
	if rec["msg"] != "render.click_ignored" {
		t.Fatalf("msg = %v", rec["msg"])
	}
}
