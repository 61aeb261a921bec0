package config

import (
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/fatih/color"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

const (
	NVDApiUrl = "https://services.nvd.nist.gov/rest/json/cves/2.0"

	defaultPageSize = 2000
	defaultTimeout  = 60 * time.Second
)

// Settings is read from a YAML file, every field is optional
type Settings struct {
	DataDir  string        `yaml:"data_dir"`
	NoColor  bool          `yaml:"no_color"`
	NVD      NVDSettings   `yaml:"nvd"`
	Timeout  time.Duration `yaml:"timeout"`
	Expire   time.Duration `yaml:"expire"`
	Database string        `yaml:"database"`
}

type NVDSettings struct {
	URL      string `yaml:"url"`
	ApiKey   string `yaml:"api_key"`
	PageSize int    `yaml:"page_size"`
}

// Default returns the settings used when no file is given
func Default() *Settings {
	s := &Settings{}
	s.fill()
	return s
}

// Load reads path, a missing file at the default location is not an error
func Load(path string) (*Settings, error) {
	s := &Settings{}

	explicit := path != ""
	if !explicit {
		dir, err := DataDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "config.yaml")
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err = yaml.Unmarshal(data, s); err != nil {
			return nil, xerrors.Errorf("failed to parse settings %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
	default:
		return nil, xerrors.Errorf("failed to read settings %s: %w", path, err)
	}

	s.fill()
	if s.NoColor {
		color.NoColor = true
	}

	return s, nil
}

func (s *Settings) fill() {
	if s.DataDir == "" {
		s.DataDir, _ = DataDir()
	}
	if s.Database == "" {
		s.Database = filepath.Join(s.DataDir, "cvssbase.db")
	}
	if s.NVD.URL == "" {
		s.NVD.URL = NVDApiUrl
	}
	if s.NVD.PageSize <= 0 {
		s.NVD.PageSize = defaultPageSize
	}
	if s.Timeout <= 0 {
		s.Timeout = defaultTimeout
	}
	if s.Expire <= 0 {
		s.Expire = 24 * time.Hour
	}
}

// DataDir is ~/.cvssbase, or cvssbasedata in the working directory on windows
func DataDir() (string, error) {
	if runtime.GOOS == "windows" {
		dir, err := os.Getwd()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "cvssbasedata"), nil
	}

	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".cvssbase"), nil
}
