package vulnlib

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	version2 "github.com/hashicorp/go-version"
	"github.com/tidwall/gjson"
	"golang.org/x/xerrors"

	"github.com/kvesta/cvssbase/config"
)

var ErrUnknownFeed = errors.New("neither an NVD 1.1 feed nor an NVD 2.0 response")

// Only v3.1 vectors carry the CVSS:3.1/ prefix the calculator accepts
var scorable = mustConstraint(">= 3.1, < 4.0")

func mustConstraint(c string) version2.Constraints {
	cs, err := version2.NewConstraint(c)
	if err != nil {
		panic(err)
	}
	return cs
}

// Scorable reports whether the record's CVSS version can be re-scored
func (r *Record) Scorable() bool {
	v, err := version2.NewVersion(r.Version)
	if err != nil {
		return false
	}
	return scorable.Check(v)
}

// ParseFeed extracts the CVSS v3 records of an NVD 1.1 JSON feed or an
// NVD 2.0 API response. CVEs without a v3 metric are skipped.
func ParseFeed(data []byte) ([]*Record, error) {
	if !gjson.ValidBytes(data) {
		return nil, xerrors.New("invalid json")
	}

	root := gjson.ParseBytes(data)

	switch {
	case root.Get("vulnerabilities").IsArray():
		return parseAPI(root.Get("vulnerabilities")), nil
	case root.Get("CVE_Items").IsArray():
		return parseLegacy(root.Get("CVE_Items")), nil
	}

	return nil, ErrUnknownFeed
}

// parseLegacy reads the retired nvdcve-1.1-YEAR.json feeds
func parseLegacy(items gjson.Result) []*Record {
	records := []*Record{}

	items.ForEach(func(_, item gjson.Result) bool {
		cveID := item.Get("cve.CVE_data_meta.ID").String()
		cvssV3 := item.Get("impact.baseMetricV3.cvssV3")
		if cveID == "" || !cvssV3.Exists() {
			return true
		}

		records = append(records, &Record{
			CVEID:       cveID,
			Version:     cvssV3.Get("version").String(),
			Vector:      cvssV3.Get("vectorString").String(),
			Score:       cvssV3.Get("baseScore").Float(),
			Severity:    cvssV3.Get("baseSeverity").String(),
			Source:      "NVD",
			PublishDate: publishDate(item.Get("publishedDate").String()),
		})
		return true
	})

	return records
}

func parseAPI(items gjson.Result) []*Record {
	records := []*Record{}

	items.ForEach(func(_, item gjson.Result) bool {
		cve := item.Get("cve")
		cveID := cve.Get("id").String()
		if cveID == "" {
			return true
		}

		metrics := cve.Get("metrics.cvssMetricV31")
		if !metrics.Exists() {
			metrics = cve.Get("metrics.cvssMetricV30")
		}

		metrics.ForEach(func(_, m gjson.Result) bool {
			data := m.Get("cvssData")
			records = append(records, &Record{
				CVEID:       cveID,
				Version:     data.Get("version").String(),
				Vector:      data.Get("vectorString").String(),
				Score:       data.Get("baseScore").Float(),
				Severity:    data.Get("baseSeverity").String(),
				Source:      m.Get("source").String(),
				PublishDate: publishDate(cve.Get("published").String()),
			})
			return true
		})
		return true
	})

	return records
}

func publishDate(ts string) string {
	if len(ts) < 10 {
		return ts
	}
	return ts[:10]
}

// ReadFeed loads a feed file, gzip compressed files end with .gz
func ReadFeed(filename string) ([]*Record, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(filename, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, xerrors.Errorf("failed to decompress %s: %w", filename, err)
		}
		defer gz.Close()
		r = gz
	}

	var buf bytes.Buffer
	if _, err = io.Copy(&buf, r); err != nil {
		return nil, err
	}

	return ParseFeed(buf.Bytes())
}

// Import stores the records of local feed files. A file which cannot be
// read is logged and skipped.
func (cli *Client) Import(ctx context.Context, files []string) (int, error) {
	total := 0

	for _, filename := range files {
		if ctx.Err() != nil {
			return total, ctx.Err()
		}

		records, err := ReadFeed(filename)
		if err != nil {
			log.Printf("%s is stored failed, error: %v", filepath.Base(filename), err)
			continue
		}

		added, err := cli.update(ctx, records)
		if err != nil {
			return total, err
		}

		total += added
		log.Printf("%s is stored successfully, %s new records",
			filepath.Base(filename), config.Yellow(added))
	}

	return total, nil
}
