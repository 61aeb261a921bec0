package vulnlib

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/kvesta/cvssbase/config"
)

type Client struct {
	Cli *http.Client
	DB  *sql.DB

	Store    string
	Settings *config.Settings
}

// Record is one published CVSS v3 assessment of a CVE
type Record struct {
	CVEID       string  `json:"cveID"`
	Version     string  `json:"version"`
	Vector      string  `json:"vectorString"`
	Score       float64 `json:"baseScore"`
	Severity    string  `json:"baseSeverity"`
	Source      string  `json:"source"`
	PublishDate string  `json:"publishDate"`
}

func (r *Record) String() string {
	return fmt.Sprintf("%s %s %.1f %s", r.CVEID, r.Vector, r.Score, r.Severity)
}

func NewClient(s *config.Settings) *Client {
	if s == nil {
		s = config.Default()
	}

	tr := &http.Transport{
		IdleConnTimeout: 60 * time.Second,
	}

	return &Client{
		Cli: &http.Client{
			Transport: tr,
			Timeout:   s.Timeout,
		},
		Store:    s.DataDir,
		Settings: s,
	}
}
