// Command notate formats numbers with the notations of package notation.
//
// Usage:
//
//	notate [flags] styles
//	notate [flags] format <style> <value>...
//	notate [flags] table <value>...
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/sourcegraph/conc/iter"

	"github.com/govalues/notation"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type options struct {
	places    notation.Places
	jsonOut   bool
	configOpt notation.Option
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("notate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "Path to a YAML formatting config")
		places     = fs.Int("places", 2, "Decimal places of mantissas")
		under1000  = fs.Int("under1000", 0, "Decimal places of values under 1000")
		exponent   = fs.Int("exponent", -1, "Decimal places of formatted exponents (default: same as -places)")
		jsonOut    = fs.Bool("json", false, "Write results as JSON")
		verbose    = fs.Bool("v", false, "Log the resolved configuration")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger := log.New(io.Discard, "notate ", log.LstdFlags)
	if *verbose {
		logger.SetOutput(stderr)
	}

	opts := options{
		places:  notation.Places{Places: *places, Under1000: *under1000, Exponent: *exponent},
		jsonOut: *jsonOut,
	}
	if opts.places.Exponent < 0 {
		opts.places.Exponent = opts.places.Places
	}
	if err := opts.places.Validate(); err != nil {
		return err
	}

	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			return fmt.Errorf("read config: %w", err)
		}
		cfg, err := notation.ParseConfig(data)
		if err != nil {
			return fmt.Errorf("config %s: %w", *configPath, err)
		}
		logger.Printf("config loaded from %s: %+v", *configPath, cfg)
		opts.configOpt = notation.WithConfig(cfg)
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return errors.New("command required (styles|format|table)")
	}
	logger.Printf("command %s with %+v", rest[0], opts.places)

	switch rest[0] {
	case "styles":
		return listStyles(stdout, opts)
	case "format":
		if len(rest) < 3 {
			return errors.New("usage: format <style> <value>...")
		}
		return formatValues(stdout, opts, rest[1], rest[2:])
	case "table":
		if len(rest) < 2 {
			return errors.New("usage: table <value>...")
		}
		return formatTable(stdout, opts, rest[1:])
	default:
		return fmt.Errorf("unknown command %q (expected styles, format or table)", rest[0])
	}
}

func listStyles(w io.Writer, opts options) error {
	names := notation.Names()
	if opts.jsonOut {
		return writeJSON(w, names)
	}
	_, err := fmt.Fprintln(w, strings.Join(names, "\n"))
	return err
}

type result struct {
	Style string `json:"style"`
	Input string `json:"input"`
	Text  string `json:"text"`
}

func formatValues(w io.Writer, opts options, styleName string, inputs []string) error {
	style, err := notation.Lookup(styleName)
	if err != nil {
		return err
	}
	f, err := notation.NewFormatter(style, opts.configOpt)
	if err != nil {
		return err
	}
	values, err := parseValues(inputs)
	if err != nil {
		return err
	}

	results := make([]result, len(values))
	for i, v := range values {
		s, err := f.FormatPlaces(v, opts.places)
		if err != nil {
			return err
		}
		results[i] = result{Style: f.Name(), Input: inputs[i], Text: s}
	}

	if opts.jsonOut {
		return writeJSON(w, results)
	}
	for _, r := range results {
		if _, err := fmt.Fprintln(w, r.Text); err != nil {
			return err
		}
	}
	return nil
}

type row struct {
	Style string   `json:"style"`
	Texts []string `json:"texts"`
}

// formatTable formats every value with every built-in style, one style per goroutine.
func formatTable(w io.Writer, opts options, inputs []string) error {
	values, err := parseValues(inputs)
	if err != nil {
		return err
	}

	var formatters []*notation.Formatter
	for _, s := range notation.Styles() {
		f, err := notation.NewFormatter(s, opts.configOpt)
		if err != nil {
			return err
		}
		formatters = append(formatters, f)
	}

	rows := iter.Map(formatters, func(f **notation.Formatter) row {
		r := row{Style: (*f).Name(), Texts: make([]string, len(values))}
		for i, v := range values {
			// Places were validated by run.
			r.Texts[i], _ = (*f).FormatPlaces(v, opts.places)
		}
		return r
	})

	if opts.jsonOut {
		return writeJSON(w, rows)
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%-26s %s\n", r.Style, strings.Join(r.Texts, "  ")); err != nil {
			return err
		}
	}
	return nil
}

func parseValues(inputs []string) ([]notation.Magnitude, error) {
	values := make([]notation.Magnitude, len(inputs))
	for i, s := range inputs {
		v, err := notation.Parse(s)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
