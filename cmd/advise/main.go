// Command advise runs the advisory engine on observations read from a file or
// stdin and prints one advisory report per observation. Input may be a single
// JSON object or a stream of newline-delimited objects.
//
// Usage:
//
//	go run ./cmd/advise -file testdata/observation.json -units imperial
//	echo '{"temperature":28,...}' | go run ./cmd/advise
//	go run ./cmd/advise -catalog
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/athlete-weather-advisory/internal/domain"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	file        string
	units       string
	minTier     string
	processedAt string
	catalog     bool
	pretty      bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("advise", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	fs.StringVar(&opts.file, "file", "", "observation file (default stdin)")
	fs.StringVar(&opts.units, "units", "", "display units when the observation has none: metric or imperial")
	fs.StringVar(&opts.minTier, "min-tier", "high", "lowest severity tier that raises an alert")
	fs.StringVar(&opts.processedAt, "processed-at", "", "fixed RFC3339 processing time for reproducible output")
	fs.BoolVar(&opts.catalog, "catalog", false, "print the narrative catalog and exit")
	fs.BoolVar(&opts.pretty, "pretty", false, "indent JSON output")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	enc := json.NewEncoder(stdout)
	if opts.pretty {
		enc.SetIndent("", "  ")
	}

	if opts.catalog {
		if err := printCatalog(enc); err != nil {
			fmt.Fprintf(stderr, "advise: %v\n", err)
			return 1
		}
		return 0
	}

	units := domain.UnitSystem(strings.ToLower(strings.TrimSpace(opts.units)))
	switch units {
	case "", domain.Metric, domain.Imperial:
	default:
		fmt.Fprintf(stderr, "advise: invalid -units %q: must be metric or imperial\n", opts.units)
		return 2
	}

	minTier, ok := domain.ParseSeverityTier(opts.minTier)
	if !ok {
		fmt.Fprintf(stderr, "advise: unknown tier %q\n", opts.minTier)
		return 2
	}

	if opts.processedAt != "" {
		t, err := time.Parse(time.RFC3339, opts.processedAt)
		if err != nil {
			fmt.Fprintf(stderr, "advise: -processed-at: %v\n", err)
			return 2
		}
		domain.SetClock(clockwork.NewFakeClockAt(t))
		defer domain.SetClock(nil)
	}

	in := stdin
	if opts.file != "" {
		f, err := os.Open(opts.file)
		if err != nil {
			fmt.Fprintf(stderr, "advise: %v\n", err)
			return 1
		}
		defer f.Close()
		in = f
	}

	failed := 0
	dec := json.NewDecoder(in)
	for n := 1; ; n++ {
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			fmt.Fprintf(stderr, "advise: observation %d: %v\n", n, err)
			return 1
		}

		report, err := advise(raw, domain.ParseUnitSystem(string(units)), minTier)
		if err != nil {
			fmt.Fprintf(stderr, "advise: observation %d: %v\n", n, err)
			failed++
			continue
		}
		if err := enc.Encode(report); err != nil {
			fmt.Fprintf(stderr, "advise: %v\n", err)
			return 1
		}
	}

	if failed > 0 {
		return 1
	}
	return 0
}

func advise(raw []byte, fallback domain.UnitSystem, minTier domain.SeverityTier) (domain.AdvisoryReport, error) {
	msg, err := domain.ParseObservationMessage(raw)
	if err != nil {
		return domain.AdvisoryReport{}, err
	}
	obs := msg.Observation()
	report, err := domain.Advise(obs, msg.Display(fallback))
	if err != nil {
		return domain.AdvisoryReport{}, err
	}
	alerts := domain.SelectAlerts(report, domain.DefaultAlertPreferences(), minTier)
	return domain.NewAdvisoryReport(msg, obs, report, alerts), nil
}

func printCatalog(enc *json.Encoder) error {
	guidance := make(map[domain.Parameter]domain.GuidanceNotes)
	for _, p := range domain.AllParameters() {
		guidance[p] = domain.Guidance(p)
	}
	return enc.Encode(struct {
		Bands    map[domain.Band]domain.Advisory           `json:"bands"`
		Guidance map[domain.Parameter]domain.GuidanceNotes `json:"guidance"`
	}{domain.Catalog(), guidance})
}
