package nifbench

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// Format selects the report encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Write renders report in the given format. Colors apply to text only.
func Write(w io.Writer, report *Report, format Format, colored bool) error {
	switch format {
	case FormatText:
		return WriteText(w, report, colored)
	case FormatJSON:
		return WriteJSON(w, report)
	case FormatYAML:
		return WriteYAML(w, report)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// WriteJSON writes report as indented JSON.
func WriteJSON(w io.Writer, report *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// WriteYAML writes report as YAML.
func WriteYAML(w io.Writer, report *Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return err
	}
	return enc.Close()
}

// WriteText writes a results table followed by a speed comparison.
// The fastest variant is highlighted when colored is true.
func WriteText(w io.Writer, report *Report, colored bool) error {
	header := color.New(color.FgCyan, color.Bold)
	best := color.New(color.FgGreen, color.Bold)
	warn := color.New(color.FgRed)
	for _, c := range []*color.Color{header, best, warn} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	p := message.NewPrinter(language.English)
	width := 0
	for _, r := range report.Results {
		width = max(width, len(r.Name))
	}

	var b strings.Builder
	p.Fprintf(&b, "Run %s: %d identifiers, %d iterations\n", report.RunID, report.Cases, report.Iterations)
	b.WriteString(header.Sprint("\n--- BENCHMARK RESULTS ---") + "\n")
	for _, r := range report.Results {
		line := fmt.Sprintf("%-*s  %s (min: %s, max: %s)  accepted: ",
			width, r.Name, millis(r.Avg), millis(r.Min), millis(r.Max)) + p.Sprintf("%d", r.Accepted)
		if r.Name == report.Fastest {
			line = best.Sprint(line)
		}
		b.WriteString(line + "\n")
	}

	if len(report.Results) > 0 {
		b.WriteString("\nFastest implementation: " +
			best.Sprintf("%s (%s)", report.Fastest, millis(report.Results[0].Avg)) + "\n")
	}

	b.WriteString(header.Sprint("\n--- PERFORMANCE COMPARISON ---") + "\n")
	for _, r := range report.Results {
		verdict := "slower"
		if r.Name == report.Fastest {
			verdict = "(fastest)"
		}
		fmt.Fprintf(&b, "%-*s  %.2f%% %s\n", width, r.Name, r.SlowerPct, verdict)
	}

	if report.Mismatch != "" {
		b.WriteString("\n" + warn.Sprint("WARNING: "+report.Mismatch) + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func millis(d time.Duration) string {
	return fmt.Sprintf("%.2fms", float64(d)/float64(time.Millisecond))
}
