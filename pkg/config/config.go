// Package config resolves the optional finestra.yaml file of an
// application together with defaults derived from its Go module.
//
//	finestra: ">= 0.1"
//	app:
//	  name: counter
//	  id: org.example.counter
//	backend: headless
//	window:
//	  title: Counter
//	  width: 320
//	  height: 200
//	  theme: dark
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode"

	"github.com/Masterminds/semver/v3"
	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/finestra/pkg/backend"
	"github.com/go-drift/finestra/pkg/resources"
)

// FileName is the name of the configuration file looked up in the
// application root.
const FileName = "finestra.yaml"

// Config mirrors finestra.yaml.
type Config struct {
	// Requires is a semver constraint on the finestra tool version.
	Requires string       `yaml:"finestra,omitempty"`
	App      AppConfig    `yaml:"app"`
	Backend  string       `yaml:"backend,omitempty"`
	Window   WindowConfig `yaml:"window"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
	ID   string `yaml:"id,omitempty"`
}

// WindowConfig contains the main window defaults.
type WindowConfig struct {
	Title  string  `yaml:"title,omitempty"`
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
	Theme  string  `yaml:"theme,omitempty"`
}

// Window holds the resolved main window defaults. Zero fields were not
// configured.
type Window struct {
	Title  string
	Width  float64
	Height float64
	Theme  resources.Theme
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	AppName    string
	AppID      string
	Backend    backend.Kind
	Window     Window

	// Requires is the raw finestra version constraint, empty when none
	// was configured.
	Requires    string
	constraints *semver.Constraints
}

// CheckVersion reports an error when version does not satisfy the
// configured finestra constraint. Pre-release versions are compared by
// their release part, so 0.2.0-dev satisfies ">= 0.2".
func (r *Resolved) CheckVersion(version string) error {
	if r.constraints == nil {
		return nil
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("invalid finestra version %q: %w", version, err)
	}
	release, err := v.SetPrerelease("")
	if err != nil {
		return err
	}
	if ok, errs := r.constraints.Validate(&release); !ok {
		return fmt.Errorf("finestra %s does not satisfy %q: %w", version, r.Requires, errors.Join(errs...))
	}
	return nil
}

// LoadOptional reads finestra.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}
	return Parse(data)
}

// Parse decodes the contents of a finestra.yaml file. Unknown keys are
// rejected.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	return &cfg, nil
}

// Resolve loads finestra.yaml (if present) from dir and fills in
// defaults. The module path comes from dir/go.mod when there is one.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	return cfg.Resolve(dir, modulePath)
}

// Resolve fills in defaults for the values cfg leaves empty.
func (cfg *Config) Resolve(dir, modulePath string) (*Resolved, error) {
	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(modulePath, dir)
	}

	appID := strings.TrimSpace(cfg.App.ID)
	if appID == "" {
		appID = defaultAppID(modulePath, appName)
	}
	if err := validateAppID(appID); err != nil {
		return nil, err
	}

	kind := backend.Default()
	if name := strings.TrimSpace(cfg.Backend); name != "" {
		var err error
		kind, err = backend.ParseKind(name)
		if err != nil {
			return nil, fmt.Errorf("backend: %w", err)
		}
	}

	win, err := cfg.Window.resolve()
	if err != nil {
		return nil, err
	}

	requires := strings.TrimSpace(cfg.Requires)
	var constraints *semver.Constraints
	if requires != "" {
		if constraints, err = semver.NewConstraint(requires); err != nil {
			return nil, fmt.Errorf("finestra: %w", err)
		}
	}

	return &Resolved{
		Root:       dir,
		ModulePath: modulePath,
		AppName:    appName,
		AppID:      appID,
		Backend:    kind,
		Window:     win,

		Requires:    requires,
		constraints: constraints,
	}, nil
}

func (w WindowConfig) resolve() (Window, error) {
	if w.Width < 0 || w.Height < 0 {
		return Window{}, fmt.Errorf("window size must not be negative (got %gx%g)", w.Width, w.Height)
	}
	if (w.Width == 0) != (w.Height == 0) {
		return Window{}, fmt.Errorf("window.width and window.height must be set together")
	}

	theme := resources.ThemeAutomatic
	if name := strings.TrimSpace(w.Theme); name != "" {
		var ok bool
		if theme, ok = resources.ParseTheme(name); !ok {
			return Window{}, fmt.Errorf("window.theme: unknown theme %q", w.Theme)
		}
	}

	return Window{
		Title:  strings.TrimSpace(w.Title),
		Width:  w.Width,
		Height: w.Height,
		Theme:  theme,
	}, nil
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

// modulePath returns the module path declared in dir/go.mod, or "" when
// dir has no go.mod.
func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modulePath != "" {
		if prefix, _, ok := module.SplitPathVersion(modulePath); ok {
			if i := strings.LastIndex(prefix, "/"); i >= 0 {
				base = prefix[i+1:]
			} else {
				base = prefix
			}
		}
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "finestra_app"
	}
	return base
}

// defaultAppID derives a reverse-DNS identifier from the module path, so
// github.com/acme/notes becomes com.github.acme.notes.
func defaultAppID(modulePath, appName string) string {
	parts := strings.Split(modulePath, "/")
	if len(parts) < 2 || !strings.Contains(parts[0], ".") {
		return "org.finestra." + sanitizeSegment(appName, false)
	}

	host := strings.Split(parts[0], ".")
	slices.Reverse(host)

	segments := host
	for _, p := range parts[1:] {
		if p != "" {
			segments = append(segments, p)
		}
	}
	for i, segment := range segments {
		segments[i] = sanitizeSegment(segment, false)
	}
	return strings.Join(segments, ".")
}

// sanitizeSegment lowercases segment and keeps letters, digits and
// underscores. Segments must not start with a digit unless allowed.
// stripMarks removes combining marks after canonical decomposition, so
// "Café" sanitizes to "cafe" instead of "caf". Chains are stateful, so
// each call builds its own.
func stripMarks() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

func sanitizeSegment(segment string, allowLeadingDigit bool) string {
	folded, _, err := transform.String(stripMarks(), segment)
	if err != nil {
		folded = segment
	}
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(folded)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		case r == '-' || r == '.':
			b.WriteRune('_')
		}
	}
	out := strings.TrimLeft(b.String(), "_")
	if out == "" {
		return "app"
	}
	if !allowLeadingDigit && out[0] >= '0' && out[0] <= '9' {
		out = "a" + out
	}
	return out
}

func validateAppID(appID string) error {
	segments := strings.Split(appID, ".")
	if len(segments) < 2 {
		return fmt.Errorf("app.id must contain at least one '.' (got %q)", appID)
	}
	for _, segment := range segments {
		switch {
		case segment == "":
			return fmt.Errorf("app.id contains an empty segment (%q)", appID)
		case segment[0] >= '0' && segment[0] <= '9':
			return fmt.Errorf("app.id segments cannot start with a digit (%q)", appID)
		case segment[0] == '_':
			return fmt.Errorf("app.id segments cannot start with '_' (%q)", appID)
		}
		for _, r := range segment {
			if !(r == '_' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9') {
				return fmt.Errorf("app.id contains invalid character %q in %q", r, appID)
			}
		}
	}
	return nil
}
