// Command nameflag prints the colour palette of a name and optionally writes
// its flag as a PNG.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/listenupapp/nameflags/internal/domain"
	"github.com/listenupapp/nameflags/internal/palette"
	"github.com/listenupapp/nameflags/internal/render"
	"github.com/listenupapp/nameflags/internal/service"
)

// Exit codes
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 64
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// report is the machine-readable output.
type report struct {
	Name       string           `json:"name" yaml:"name"`
	Encoding   string           `json:"encoding" yaml:"encoding"`
	Words      []string         `json:"words" yaml:"words"`
	Filler     string           `json:"filler" yaml:"filler"`
	Adjustment string           `json:"adjustment" yaml:"adjustment"`
	Amount     float64          `json:"amount,omitempty" yaml:"amount,omitempty"`
	Colors     []string         `json:"colors" yaml:"colors"`
	Stats      palette.Stats    `json:"stats" yaml:"stats"`
	Analysis   service.Analysis `json:"analysis" yaml:"analysis"`
	Image      string           `json:"image,omitempty" yaml:"image,omitempty"`
}

type options struct {
	palette palette.Options
	render  render.Options
	caption bool
	out     string
	format  string
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) > 0 && args[0] == "examples" {
		return cmdExamples(args[1:], stdout, stderr)
	}

	fs := flag.NewFlagSet("nameflag", flag.ContinueOnError)
	fs.SetOutput(stderr)
	encoding := fs.String("encoding", "unicode", "Encoding: unicode or utf-8")
	adjust := fs.String("adjust", "none", "Adjustment: none, brighten, darken or saturate")
	amount := fs.Float64("amount", 0, "Adjustment amount (default 30, or 1.5 for saturate)")
	pattern := fs.String("pattern", "stripes", "Pattern: stripes, checkerboard or diagonal")
	orientation := fs.String("orientation", "horizontal", "Stripe orientation: horizontal or vertical")
	width := fs.Int("width", render.DefaultWidth, "Image width in pixels")
	height := fs.Int("height", render.DefaultHeight, "Image height in pixels")
	caption := fs.Bool("caption", false, "Draw a caption above the flag")
	out := fs.String("out", "", "Write the PNG here; \"auto\" uses <name>_flag.png")
	format := fs.String("format", "text", "Output format: text, json or yaml")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: nameflag [options] <name...>")
		fmt.Fprintln(stderr, "       nameflag examples [--format text|json|yaml]")
		fmt.Fprintln(stderr)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}

	if fs.NArg() < 1 {
		fs.Usage()
		return ExitUsage
	}
	name := strings.Join(fs.Args(), " ")

	if !validFormat(*format) {
		fmt.Fprintf(stderr, "error: unknown format %q\n", *format)
		return ExitUsage
	}

	amountSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "amount" {
			amountSet = true
		}
	})

	opts, err := parseOptions(*encoding, *adjust, *amount, amountSet, *pattern, *orientation, *width, *height)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return ExitUsage
	}
	opts.caption = *caption
	opts.out = *out
	opts.format = *format

	if err := generate(name, opts, stdout); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return ExitError
	}
	return ExitOK
}

func parseOptions(encoding, adjust string, amount float64, amountSet bool, pattern, orientation string, width, height int) (options, error) {
	enc, err := palette.ParseEncoding(encoding)
	if err != nil {
		return options{}, err
	}
	kind, err := palette.ParseAdjustmentKind(adjust)
	if err != nil {
		return options{}, err
	}
	adj := palette.Adjustment{Kind: kind, Amount: kind.DefaultAmount()}
	if amountSet && kind != palette.AdjustNone {
		adj.Amount = amount
	}
	if err := adj.Validate(); err != nil {
		return options{}, err
	}

	p, err := render.ParsePattern(pattern)
	if err != nil {
		return options{}, err
	}
	o, err := render.ParseOrientation(orientation)
	if err != nil {
		return options{}, err
	}
	ropts := render.Options{Pattern: p, Orientation: o, Width: width, Height: height}
	if err := ropts.Validate(); err != nil {
		return options{}, err
	}

	return options{
		palette: palette.Options{Encoding: enc, Adjustment: adj},
		render:  ropts,
	}, nil
}

func generate(name string, opts options, w io.Writer) error {
	result, err := palette.Generate(name, opts.palette)
	if err != nil {
		return err
	}
	stats := result.Stats()

	r := report{
		Name:       name,
		Encoding:   string(result.Encoding),
		Words:      result.Words,
		Filler:     result.Filler,
		Adjustment: string(result.Adjustment.Kind),
		Colors:     result.Palette.Strings(),
		Stats:      stats,
		Analysis:   service.Analyze(stats, result.Encoding, opts.render.Pattern, opts.render.Orientation),
	}
	if result.Adjustment.Kind != palette.AdjustNone {
		r.Amount = result.Adjustment.Amount
	}

	if opts.out != "" {
		path := opts.out
		if path == "auto" {
			path = render.Filename(name)
		}
		ropts := opts.render
		if opts.caption {
			ropts.Caption = domain.CaptionFor(name)
		}
		img, err := render.Render(result.Palette, ropts)
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, img.PNG, 0o644); err != nil {
			return fmt.Errorf("write image: %w", err)
		}
		r.Image = path
	}

	return write(w, opts.format, r, func() {
		fmt.Fprintf(w, "Name: %s\n", r.Name)
		fmt.Fprintf(w, "Colors: %s\n", hexList(result.Palette))
		fmt.Fprint(w, r.Analysis.String())
		if r.Image != "" {
			fmt.Fprintf(w, "Saved flag to %s\n", r.Image)
		}
	})
}

func cmdExamples(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("examples", flag.ContinueOnError)
	fs.SetOutput(stderr)
	format := fs.String("format", "text", "Output format: text, json or yaml")
	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}

	if !validFormat(*format) {
		fmt.Fprintf(stderr, "error: unknown format %q\n", *format)
		return ExitUsage
	}

	examples, err := service.GenerateExamples(context.Background())
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return ExitError
	}

	reports := make([]report, 0, 2*len(examples))
	for _, ex := range examples {
		for _, gen := range []*service.Generated{ex.CodePoint, ex.Bytes} {
			reports = append(reports, report{
				Name:       ex.Name,
				Encoding:   string(gen.Encoding),
				Words:      gen.Words,
				Filler:     gen.Filler,
				Adjustment: string(palette.AdjustNone),
				Colors:     gen.Palette.Strings(),
				Stats:      gen.Stats,
				Analysis:   service.Analyze(gen.Stats, gen.Encoding, render.Stripes, render.Horizontal),
			})
		}
	}

	err = write(stdout, *format, reports, func() {
		for _, r := range reports {
			fmt.Fprintf(stdout, "%-16s %-8s %s\n", r.Name, r.Encoding, strings.Join(r.Colors, " "))
		}
	})
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return ExitError
	}
	return ExitOK
}

func validFormat(format string) bool {
	switch format {
	case "text", "json", "yaml":
		return true
	}
	return false
}

// write encodes v in format, calling text for the plain format. Callers
// check the format with validFormat first.
func write(w io.Writer, format string, v any, text func()) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		text()
		return nil
	}
}

func hexList(p palette.Palette) string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = c.Hex()
	}
	return strings.Join(parts, " ")
}
