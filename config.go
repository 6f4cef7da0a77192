package smosidebar

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"slices"
	"strings"
	"unicode"

	"github.com/Masterminds/semver/v3"
	"github.com/eu-nephele/smo-sidebar/internal"
)

type Config struct {
	Logo        string            `json:"logo,omitempty"`
	BasePath    string            `json:"base_path,omitempty"`
	Version     string            `json:"version,omitempty"`
	ActiveClass string            `json:"active_class,omitempty"`
	Classes     map[string]string `json:"classes,omitempty"`
}

func DefaultConfig() Config {
	return Config{
		Logo:        "SMO",
		ActiveClass: "active",
	}
}

// LoadConfig reads a JSON configuration file. A missing file is not an error,
// the defaults are used instead.
func LoadConfig(path string) (Config, error) {
	var conf Config

	err := internal.UnmarshalFile(path, &conf)
	if errors.Is(err, os.ErrNotExist) {
		slog.Warn("configuration file not found, using defaults",
			"path", path)

		return DefaultConfig(), nil
	} else if err != nil {
		return Config{}, fmt.Errorf("load config file: %w", err)
	}

	conf = conf.withDefaults()

	err = conf.Validate()
	if err != nil {
		return Config{}, fmt.Errorf("invalid config %q: %w", path, err)
	}

	return conf, nil
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()

	if c.Logo == "" {
		c.Logo = def.Logo
	}

	if c.ActiveClass == "" {
		c.ActiveClass = def.ActiveClass
	}

	return c
}

func (c Config) Validate() error {
	if c.Version != "" {
		_, err := semver.NewVersion(c.Version)
		if err != nil {
			return fmt.Errorf("version %q: %w", c.Version, err)
		}
	}

	if c.ActiveClass != "" && strings.ContainsFunc(c.ActiveClass, unicode.IsSpace) {
		return fmt.Errorf("active class %q must be a single class name",
			c.ActiveClass)
	}

	activeClass := c.ActiveClass
	if activeClass == "" {
		activeClass = DefaultConfig().ActiveClass
	}

	for element, classes := range c.Classes {
		if slices.Contains(strings.Fields(classes), activeClass) {
			return fmt.Errorf("classes for %q must not include the active class %q",
				element, activeClass)
		}
	}

	if c.BasePath != "" {
		u, err := url.Parse(c.BasePath)
		if err != nil {
			return fmt.Errorf("invalid base path: %w", err)
		}

		if u.Scheme != "" || u.Host != "" {
			return fmt.Errorf("base path %q must be a path, not a URL",
				c.BasePath)
		}
	}

	return nil
}

// version returns the display version and whether it's a prerelease.
func (c Config) version() (string, bool) {
	if c.Version == "" {
		return "", false
	}

	v, err := semver.NewVersion(c.Version)
	if err != nil {
		return c.Version, false
	}

	return "v" + v.String(), v.Prerelease() != ""
}
