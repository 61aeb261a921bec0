package internal

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"strings"

	"github.com/kvesta/cvssbase/config"
	"github.com/kvesta/cvssbase/internal/report"
	"github.com/kvesta/cvssbase/internal/verify"
	"github.com/kvesta/cvssbase/pkg/cvss"
	"github.com/kvesta/cvssbase/pkg/vulnlib"

	"golang.org/x/xerrors"
)

// DoCalc scores the given vector strings. Template names are accepted in
// place of a vector.
func DoCalc(ctx context.Context, inputs []string) error {

	entries := []*report.Entry{}
	failed := 0

	for _, in := range inputs {
		in = strings.TrimSpace(in)

		v, ok := cvss.Template(in)
		if !ok {
			var err error
			v, err = cvss.Parse(in)
			if err != nil {
				log.Printf("%s %v", config.Red("invalid vector"), err)
				failed++
				continue
			}
		}

		res, err := cvss.Calculate(v)
		if err != nil {
			log.Printf("%s %v", config.Red("invalid vector"), err)
			failed++
			continue
		}

		e := &report.Entry{Name: in, Result: res}
		if in == res.VectorString {
			e.Name = ""
		}

		if detail, _ := ctx.Value("detail").(bool); detail {
			b, err := cvss.Explain(v)
			if err != nil {
				log.Printf("%s %v", config.Red("invalid vector"), err)
				failed++
				continue
			}
			e.Detail = &b
		}

		entries = append(entries, e)
	}

	if err := output(ctx, entries, func() error {
		return report.ResolveResults(os.Stdout, entries)
	}, func() error {
		return report.ResultsToJson(ctx, entries)
	}); err != nil {
		return err
	}

	if failed > 0 {
		return xerrors.Errorf("%d of %d vectors could not be parsed", failed, len(inputs))
	}
	return nil
}

// DoTemplate lists the preset vectors, or shows one of them
func DoTemplate(ctx context.Context, name string) error {

	if name != "" {
		v, ok := cvss.Template(name)
		if !ok {
			return xerrors.Errorf("unknown template %q, see 'cvssbase template'", name)
		}
		return report.ResolveVector(os.Stdout, name, v)
	}

	entries := []*report.Entry{}
	for _, n := range cvss.TemplateNames() {
		v, _ := cvss.Template(n)
		res, err := cvss.Calculate(v)
		if err != nil {
			return err
		}
		entries = append(entries, &report.Entry{Name: n, Result: res})
	}

	return output(ctx, entries, func() error {
		return report.ResolveResults(os.Stdout, entries)
	}, nil)
}

// DoImport loads local NVD files into the record cache
func DoImport(ctx context.Context, files []string) error {
	cli := vulnlib.NewClient(settings(ctx))

	if reset, _ := ctx.Value("reset").(bool); reset {
		cli.Reset()
	}

	err := cli.Init()
	if err != nil {
		log.Printf("failed to init database")
		return err
	}
	defer cli.Close()

	log.Printf(config.Green("Begin importing cvss records"))

	added, err := cli.Import(ctx, files)
	if err != nil {
		return err
	}

	log.Printf(config.Green("Importing finished, %d new records"), added)
	return nil
}

// DoFetch updates the record cache from the NVD api
func DoFetch(ctx context.Context) error {
	cli := vulnlib.NewClient(settings(ctx))
	defer cli.Close()

	_, err := cli.Fetch(ctx)
	if err != nil {
		log.Printf("Updating cvss records failed, error: %v", err)
		return err
	}

	return nil
}

// DoVerify re-scores the cached records and reports every disagreement
func DoVerify(ctx context.Context) error {
	cli := vulnlib.NewClient(settings(ctx))

	err := cli.Init()
	if err != nil {
		log.Printf("failed to init database")
		return err
	}
	defer cli.Close()

	var records []*vulnlib.Record
	if cve, _ := ctx.Value("cve").(string); cve != "" {
		records, err = cli.QueryByCVEID(ctx, cve)
	} else {
		records, err = cli.Records(ctx)
	}
	if err != nil {
		return xerrors.Errorf("failed to query records: %w", err)
	}

	if len(records) == 0 {
		log.Printf(config.Yellow("No records found, run 'cvssbase feed import' or 'cvssbase feed fetch' first"))
		return nil
	}

	log.Printf(config.Green("Begin to verify %d records"), len(records))

	r, err := verify.Verify(ctx, records)
	if err != nil {
		return err
	}

	err = report.ResolveVerifyData(os.Stdout, r)
	if err != nil {
		log.Printf("report error %v", err)
	}

	if ctx.Value("output") != nil && ctx.Value("output").(string) != "" {
		err = report.VerifyToJson(ctx, r)
		if err != nil {
			log.Printf("saving error %v", err)
		}
	}

	return nil
}

// output prints a table, or JSON to stdout with --json, and saves the
// JSON report when -o is given
func output(ctx context.Context, entries []*report.Entry, table, save func() error) error {
	if asJson, _ := ctx.Value("json").(bool); asJson {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(entries); err != nil {
			return err
		}
	} else if err := table(); err != nil {
		log.Printf("report error %v", err)
	}

	if save == nil {
		return nil
	}

	if out, _ := ctx.Value("output").(string); out != "" {
		if err := save(); err != nil {
			log.Printf("saving error %v", err)
		}
	}

	return nil
}

func settings(ctx context.Context) *config.Settings {
	if s, ok := ctx.Value("settings").(*config.Settings); ok && s != nil {
		return s
	}
	return config.Default()
}
