package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/3-lines-studio/toolpages/internal/core"
)

const DefaultFile = "toolpages.yaml"

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	SourceDir       string          `yaml:"source_dir"`
	PagesDir        string          `yaml:"pages_dir"`
	WidgetSuffix    string          `yaml:"widget_suffix"`
	PageSuffix      string          `yaml:"page_suffix"`
	LayoutPath      string          `yaml:"layout"`
	ClientDirective string          `yaml:"client_directive"`
	Naming          core.NamingMode `yaml:"naming"`
	Strict          bool            `yaml:"strict"`
	Manifest        string          `yaml:"manifest"`
	Template        string          `yaml:"template"`
}

func Default() Config {
	return Config{
		SourceDir:       "src/components",
		PagesDir:        "src/pages",
		WidgetSuffix:    ".tsx",
		PageSuffix:      ".astro",
		LayoutPath:      "src/layouts/Layout.astro",
		ClientDirective: "client:load",
		Naming:          core.NamingSplitCapitals,
	}
}

// Load reads path over the defaults. When required is false a missing file
// yields the defaults unchanged.
func Load(path string, required bool) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err = Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.SourceDir) == "" {
		problems = append(problems, "source_dir is required")
	}
	if strings.TrimSpace(c.PagesDir) == "" {
		problems = append(problems, "pages_dir is required")
	}
	if strings.TrimSpace(c.LayoutPath) == "" {
		problems = append(problems, "layout is required")
	}
	if !isSuffix(c.WidgetSuffix) {
		problems = append(problems, fmt.Sprintf("widget_suffix %q must start with a dot", c.WidgetSuffix))
	}
	if !isSuffix(c.PageSuffix) {
		problems = append(problems, fmt.Sprintf("page_suffix %q must start with a dot", c.PageSuffix))
	}
	// Every widget keeps interactive state, so server-only rendering is never valid.
	if !strings.HasPrefix(c.ClientDirective, "client:") {
		problems = append(problems, fmt.Sprintf("client_directive %q must be a client:* directive", c.ClientDirective))
	}
	if !core.ValidNamingMode(c.Naming) {
		problems = append(problems, fmt.Sprintf("naming %q must be %q or %q", c.Naming, core.NamingSplitCapitals, core.NamingAcronym))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

func isSuffix(s string) bool {
	return len(s) > 1 && s[0] == '.'
}
