package report

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/kvesta/cvssbase/config"
	"github.com/kvesta/cvssbase/internal/verify"
)

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

// getOutputFile resolves the "output" flag, the default value "output"
// means output/<date>.json in the working directory
func getOutputFile(ctx context.Context) (string, error) {
	outfile, _ := ctx.Value("output").(string)
	if outfile == "output" || outfile == "" {
		pwd, _ := os.Getwd()
		folder := filepath.Join(pwd, "output")
		if !exists(folder) {
			err := os.MkdirAll(folder, os.FileMode(0755))
			if err != nil {
				return "", err
			}
		}
		nowStamp := time.Now().Format("2006-01-02")
		file := filepath.Join(folder, fmt.Sprintf("%s.json", nowStamp))

		return file, nil

	} else {
		folder := filepath.Dir(outfile)
		if !exists(folder) {
			err := os.MkdirAll(folder, os.FileMode(0755))
			if err != nil {
				return "", err
			}
		}

		return outfile, nil

	}

}

func writeJson(ctx context.Context, v interface{}) error {
	filename, err := getOutputFile(ctx)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	err = ioutil.WriteFile(filename, data, 0644)
	if err != nil {
		return err
	}

	fmt.Printf("\n")
	log.Printf("Output file is saved in: %s", config.Yellow(filename))

	return nil
}

func ResultsToJson(ctx context.Context, entries []*Entry) error {
	return writeJson(ctx, entries)
}

func VerifyToJson(ctx context.Context, r *verify.Report) error {
	return writeJson(ctx, r)
}
