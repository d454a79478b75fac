// Package config resolves solc-select state paths and loads the optional config.toml.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/solc-select/internal/catalog"
	"github.com/conn-castle/solc-select/internal/messages"
)

// Environment keys read by Load.
const (
	EnvDir     = "SOLC_SELECT_DIR"
	EnvBaseURL = "SOLC_SELECT_BASE_URL"
	EnvDebug   = "SOLC_SELECT_DEBUG"
)

// DefaultDownloadRetries is the number of extra attempts for a transient download failure.
const DefaultDownloadRetries = 1

// System abstracts the OS lookups config resolution needs.
type System interface {
	Getenv(key string) string
	HomeDir() (string, error)
	ReadFile(name string) ([]byte, error)
}

// RealSystem implements System using the OS.
type RealSystem struct{}

// Getenv returns the value of the environment variable named by key.
func (RealSystem) Getenv(key string) string {
	return os.Getenv(key)
}

// HomeDir returns the current user's home directory.
func (RealSystem) HomeDir() (string, error) {
	return homedir.Dir()
}

// ReadFile reads the named file and returns the contents.
func (RealSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// Error reports an unusable configuration.
type Error struct {
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf(messages.ConfigErrorFmt, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// File mirrors config.toml. Unset keys keep their defaults.
type File struct {
	BaseURL          string `toml:"base_url"`
	Timeout          string `toml:"timeout"`
	MaxDownloadBytes *int64 `toml:"max_download_bytes"`
	DownloadRetries  *int   `toml:"download_retries"`
}

// Config is the resolved runtime configuration.
type Config struct {
	Paths            Paths
	BaseURL          string
	Timeout          time.Duration
	MaxDownloadBytes int64
	DownloadRetries  int
	Debug            bool
}

// Load resolves paths, applies config.toml when present, then environment overrides.
func Load(sys System) (Config, error) {
	paths, err := ResolvePaths(sys)
	if err != nil {
		return Config{}, err
	}
	cfg := Config{
		Paths:            paths,
		BaseURL:          catalog.DefaultBaseURL,
		Timeout:          catalog.DefaultTimeout,
		MaxDownloadBytes: catalog.DefaultMaxDownloadBytes,
		DownloadRetries:  DefaultDownloadRetries,
	}

	data, err := sys.ReadFile(paths.ConfigPath)
	switch {
	case err == nil:
		file, err := ParseFile(data, paths.ConfigPath)
		if err != nil {
			return Config{}, err
		}
		if err := file.apply(&cfg, paths.ConfigPath); err != nil {
			return Config{}, err
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return Config{}, &Error{Err: fmt.Errorf(messages.ConfigReadFileFmt, paths.ConfigPath, err)}
	}

	if override := strings.TrimSpace(sys.Getenv(EnvBaseURL)); override != "" {
		if err := validateBaseURL(override, EnvBaseURL); err != nil {
			return Config{}, err
		}
		cfg.BaseURL = override
	}
	cfg.Debug = truthy(sys.Getenv(EnvDebug))
	return cfg, nil
}

// ParseFile decodes config.toml, rejecting keys it does not recognize.
func ParseFile(data []byte, source string) (File, error) {
	var file File
	if err := toml.Unmarshal(data, &file); err != nil {
		return File{}, &Error{Err: fmt.Errorf(messages.ConfigInvalidFileFmt, source, err)}
	}
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	var strict File
	if err := decoder.Decode(&strict); err != nil {
		return File{}, &Error{Err: fmt.Errorf(messages.ConfigUnknownKeysFmt, source, err)}
	}
	return file, nil
}

func (f File) apply(cfg *Config, source string) error {
	if f.BaseURL != "" {
		if err := validateBaseURL(f.BaseURL, source); err != nil {
			return err
		}
		cfg.BaseURL = f.BaseURL
	}
	if f.Timeout != "" {
		d, err := time.ParseDuration(f.Timeout)
		if err != nil {
			return &Error{Err: fmt.Errorf(messages.ConfigInvalidTimeoutFmt, source, f.Timeout, err)}
		}
		if d <= 0 {
			return &Error{Err: fmt.Errorf(messages.ConfigNonPositiveFmt, source, "timeout")}
		}
		cfg.Timeout = d
	}
	if f.MaxDownloadBytes != nil {
		if *f.MaxDownloadBytes <= 0 {
			return &Error{Err: fmt.Errorf(messages.ConfigNonPositiveFmt, source, "max_download_bytes")}
		}
		cfg.MaxDownloadBytes = *f.MaxDownloadBytes
	}
	if f.DownloadRetries != nil {
		if *f.DownloadRetries < 0 {
			return &Error{Err: fmt.Errorf(messages.ConfigNegativeFmt, source, "download_retries")}
		}
		cfg.DownloadRetries = *f.DownloadRetries
	}
	return nil
}

func validateBaseURL(raw string, source string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return &Error{Err: fmt.Errorf(messages.ConfigInvalidBaseURLFmt, source, raw)}
	}
	return nil
}

func truthy(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "0", "false", "no", "off":
		return false
	default:
		return true
	}
}
