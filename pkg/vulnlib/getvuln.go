package vulnlib

import (
	"context"
	"io/ioutil"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/xerrors"

	"github.com/kvesta/cvssbase/config"
)

// NVD asks clients without an api key to wait between requests
var requestInterval = 6 * time.Second

// Fetch pages through the NVD 2.0 API and stores the v3 records.
// The context may carry "reset" (bool) and "pages" (int, 0 for all).
func (cli *Client) Fetch(ctx context.Context) (int, error) {
	log.Printf(config.Green("Begin updating cvss records"))

	if ctx.Value("reset") != nil && ctx.Value("reset").(bool) {
		cli.Reset()
	}

	if !cli.checkExpired() {
		log.Printf("Cvss records are already up to date")
		return 0, nil
	}

	if cli.DB == nil {
		if err := cli.Init(); err != nil {
			log.Printf("failed to init database")
			return 0, err
		}
	}

	pages := 0
	if ctx.Value("pages") != nil {
		pages = ctx.Value("pages").(int)
	}

	total, start := 0, 0
	complete := false
	for page := 0; pages == 0 || page < pages; page++ {
		if page > 0 && cli.Settings.NVD.ApiKey == "" {
			select {
			case <-ctx.Done():
				return total, ctx.Err()
			case <-time.After(requestInterval):
			}
		}

		body, err := cli.nvdRequest(ctx, start)
		if err != nil {
			return total, err
		}

		records, err := ParseFeed(body)
		if err != nil {
			return total, xerrors.Errorf("failed to parse page %d: %w", page, err)
		}

		added, err := cli.update(ctx, records)
		if err != nil {
			return total, err
		}
		total += added

		res := gjson.ParseBytes(body)
		perPage := int(res.Get("resultsPerPage").Int())
		totalResults := int(res.Get("totalResults").Int())

		start += perPage
		log.Printf("Page %d stored, %d/%d", page+1, progress(start, totalResults), totalResults)

		if perPage == 0 || start >= totalResults {
			complete = true
			break
		}
	}

	// a page limited fetch leaves the cache expired
	if complete {
		if err := writeLog(cli.Store); err != nil {
			log.Printf("failed to write date log, error: %v", err)
		}
	} else {
		log.Printf(config.Yellow("Stopped after %d pages, the cache is incomplete until a full fetch"), pages)
	}

	log.Printf("Cvss storing finished, %s new records", config.Yellow(total))

	return total, nil
}

// progress clamps the stored count, the last page is usually short
func progress(start, totalResults int) int {
	if start > totalResults {
		return totalResults
	}
	return start
}

func (cli *Client) nvdRequest(ctx context.Context, start int) ([]byte, error) {
	q := url.Values{}
	q.Set("startIndex", strconv.Itoa(start))
	q.Set("resultsPerPage", strconv.Itoa(cli.Settings.NVD.PageSize))

	u := cli.Settings.NVD.URL + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		log.Printf("failed to get url: %s", u)
		return nil, err
	}

	if cli.Settings.NVD.ApiKey != "" {
		req.Header.Set("apiKey", cli.Settings.NVD.ApiKey)
	}

	res, err := cli.Cli.Do(req)
	if err != nil {
		log.Printf("failed to request url: %s", u)
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, xerrors.Errorf("nvd returned %s for %s", res.Status, u)
	}

	return ioutil.ReadAll(res.Body)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	if err != nil {
		if os.IsExist(err) {
			return true
		}

		return false
	}
	return true
}

func mkFolder(path string) error {
	if !exists(path) {
		err := os.MkdirAll(path, os.FileMode(0755))
		if err != nil {
			return err
		}
	}
	return nil
}

func dateFile(path string) string {
	return filepath.Join(path, "date.txt")
}

func (cli *Client) checkExpired() bool {

	filename := dateFile(cli.Store)

	if !exists(filename) {
		return true
	}

	value, err := ioutil.ReadFile(filename)
	if err != nil {
		log.Printf("failed to open date: %v", err)
		return true
	}

	if len(value) < 1 {
		return true
	}

	logDate, err := time.ParseInLocation("02/01/2006", string(value), time.Local)

	// Check whether a time format
	if err != nil {
		log.Printf("Date format error, expired")
		return true
	}

	return time.Now().After(logDate.Add(cli.Settings.Expire))
}

func writeLog(path string) error {
	today := time.Now().Format("02/01/2006")

	if err := ioutil.WriteFile(dateFile(path), []byte(today), 0644); err != nil {
		log.Printf("failed to write log")
		return err
	}
	return nil
}
