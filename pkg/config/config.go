// Package config resolves the session configuration from defaults, an
// optional config file and CZ_* environment variables, in that order.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-commitform/pkg/changetype"
	"github.com/goliatone/go-commitform/pkg/form"
	"github.com/goliatone/go-commitform/pkg/policy"
)

// FileNames are looked up, in order, by Discover.
var FileNames = []string{".czform.yaml", ".czform.yml", ".czform.json"}

// Environment variables read by ApplyEnv.
const (
	EnvMaxHeaderWidth = "CZ_MAX_HEADER_WIDTH"
	EnvMaxLineWidth   = "CZ_MAX_LINE_WIDTH"
	EnvDefaultType    = "CZ_DEFAULT_TYPE"
	EnvDefaultScope   = "CZ_DEFAULT_SCOPE"
	EnvDefaultSubject = "CZ_DEFAULT_SUBJECT"
	EnvDefaultBody    = "CZ_DEFAULT_BODY"
	EnvDefaultIssues  = "CZ_DEFAULT_ISSUES"
	EnvCatalog        = "CZ_CATALOG"
)

// Config is the full set of knobs a session depends on.
type Config struct {
	MaxHeaderWidth int    `json:"maxHeaderWidth" yaml:"maxHeaderWidth"`
	MaxLineWidth   int    `json:"maxLineWidth" yaml:"maxLineWidth"`
	DefaultType    string `json:"defaultType" yaml:"defaultType"`
	DefaultScope   string `json:"defaultScope" yaml:"defaultScope"`
	DefaultSubject string `json:"defaultSubject" yaml:"defaultSubject"`
	DefaultBody    string `json:"defaultBody" yaml:"defaultBody"`
	DefaultIssues  string `json:"defaultIssues" yaml:"defaultIssues"`

	// Catalog names a built-in change type preset. Ignored when Types is set.
	Catalog string `json:"catalog" yaml:"catalog"`
	// Types replaces the preset catalog with a custom list.
	Types []changetype.ChangeType `json:"types" yaml:"types"`

	// Source records the file the config was read from, if any.
	Source string `json:"-" yaml:"-"`
}

// Error reports a malformed configuration source.
type Error struct {
	Source string
	Err    error
}

func (e *Error) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("config: %v", e.Err)
	}
	return fmt.Sprintf("config: %s: %v", e.Source, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Default returns the stock configuration: 100 column header and lines, no
// default body or issues, conventional catalog.
func Default() Config {
	return Config{
		MaxHeaderWidth: 100,
		MaxLineWidth:   100,
		Catalog:        changetype.PresetConventional,
	}
}

// Load reads path on top of the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, &Error{Source: path, Err: err}
	}
	cfg, err := Parse(data, path)
	if err != nil {
		return Config{}, err
	}
	cfg.Source = path
	return cfg, nil
}

// Parse decodes a JSON or YAML document on top of the defaults.
func Parse(data []byte, source string) (Config, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Default(), nil
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err == nil {
		return cfg, nil
	}

	cfg = Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, &Error{Source: source, Err: errors.New("invalid JSON or YAML")}
	}
	return cfg, nil
}

// Discover returns the first config file found in dir, or "" when there is
// none.
func Discover(dir string) (string, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path, nil
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", &Error{Source: path, Err: err}
		}
	}
	return "", nil
}

// Resolve loads the explicit path when given, otherwise the file discovered
// in dir, then applies environment overrides and validates the result.
func Resolve(path, dir string, lookup func(string) (string, bool)) (Config, error) {
	var err error
	if path == "" {
		path, err = Discover(dir)
		if err != nil {
			return Config{}, err
		}
	}

	cfg := Default()
	if path != "" {
		cfg, err = Load(path)
		if err != nil {
			return Config{}, err
		}
	}
	if err := cfg.ApplyEnv(lookup); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from CZ_* variables. lookup defaults to
// os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	ints := map[string]*int{
		EnvMaxHeaderWidth: &c.MaxHeaderWidth,
		EnvMaxLineWidth:   &c.MaxLineWidth,
	}
	for key, dst := range ints {
		raw, ok := lookup(key)
		if !ok || strings.TrimSpace(raw) == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return &Error{Source: key, Err: fmt.Errorf("expected an integer, got %q", raw)}
		}
		*dst = n
	}

	strs := map[string]*string{
		EnvDefaultType:    &c.DefaultType,
		EnvDefaultScope:   &c.DefaultScope,
		EnvDefaultSubject: &c.DefaultSubject,
		EnvDefaultBody:    &c.DefaultBody,
		EnvDefaultIssues:  &c.DefaultIssues,
		EnvCatalog:        &c.Catalog,
	}
	for key, dst := range strs {
		if raw, ok := lookup(key); ok {
			*dst = raw
		}
	}
	return nil
}

// Validate rejects values no session can work with.
func (c Config) Validate() error {
	if c.MaxHeaderWidth <= 0 {
		return &Error{Source: c.Source, Err: fmt.Errorf("maxHeaderWidth must be positive, got %d", c.MaxHeaderWidth)}
	}
	if c.MaxLineWidth <= 0 {
		return &Error{Source: c.Source, Err: fmt.Errorf("maxLineWidth must be positive, got %d", c.MaxLineWidth)}
	}
	if len(c.Types) == 0 {
		if _, err := changetype.Preset(c.Catalog); err != nil {
			return &Error{Source: c.Source, Err: err}
		}
	}
	return nil
}

// ChangeTypes builds the catalog: the custom Types when present, the named
// preset otherwise.
func (c Config) ChangeTypes() (*changetype.Catalog, error) {
	if len(c.Types) > 0 {
		catalog, err := changetype.FromList(c.Types)
		if err != nil {
			return nil, &Error{Source: c.Source, Err: err}
		}
		return catalog, nil
	}
	catalog, err := changetype.Preset(c.Catalog)
	if err != nil {
		return nil, &Error{Source: c.Source, Err: err}
	}
	return catalog, nil
}

// PolicyOptions maps the config onto the field policy table options.
func (c Config) PolicyOptions() policy.Options {
	defaultType := c.DefaultType
	if defaultType == "" && len(c.Types) == 0 {
		defaultType = changetype.PresetDefault(c.Catalog)
	}
	return policy.Options{
		MaxHeaderWidth: c.MaxHeaderWidth,
		DefaultType:    defaultType,
		DefaultScope:   c.DefaultScope,
		DefaultSubject: c.DefaultSubject,
		DefaultBody:    c.DefaultBody,
		DefaultIssues:  c.DefaultIssues,
	}
}

// Settings maps the config onto the orchestrator width limits.
func (c Config) Settings() form.Settings {
	return form.Settings{
		MaxHeaderWidth: c.MaxHeaderWidth,
		MaxLineWidth:   c.MaxLineWidth,
	}
}
