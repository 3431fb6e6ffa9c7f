// Package settings resolves the persisted search settings.
//
// Settings live in an INI file with a single [settings] section. A missing
// file is created with defaults; a malformed one is a hard error.
package settings

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/Penguin825/chatlog-search/internal/textenc"
)

// DefaultFile is the settings file name looked up in the working directory.
const DefaultFile = "search_config.ini"

const (
	sectionName = "settings"

	keyUseRegex = "use regex"
	keyDebug    = "debug"
	keyLogs     = "logs folder"
	keyEncoding = "encoding"
	keyFoldCase = "fold case"

	defaultEncoding = "utf-8"
)

// Names are case-insensitive. Backslashes and '#' in values are kept literally.
var loadOptions = ini.LoadOptions{
	Insensitive:         true,
	IgnoreContinuation:  true, // Windows paths end in a backslash
	IgnoreInlineComment: true,
}

// Config holds the resolved settings for one run.
type Config struct {
	UseRegex bool
	Debug    bool
	LogsPath string
	Encoding string
	FoldCase bool
}

// Defaults returns the settings written to a freshly created file.
func Defaults() Config {
	return Config{
		UseRegex: false,
		Debug:    true,
		LogsPath: DefaultLogsPath(),
		Encoding: defaultEncoding,
	}
}

// Resolve loads the settings file at path. If it does not exist, it is
// created with Defaults and those values are returned with created=true.
func Resolve(path string) (cfg Config, created bool, err error) {
	if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
		cfg = Defaults()
		if err := Save(path, cfg); err != nil {
			return Config{}, false, fmt.Errorf("failed to create %s: %w", path, err)
		}
		return cfg, true, nil
	}

	cfg, err = Load(path)
	if err != nil {
		return Config{}, false, err
	}
	return cfg, false, nil
}

// Load parses an existing settings file. Every failure is a *ConfigError.
func Load(path string) (Config, error) {
	f, err := ini.LoadSources(loadOptions, path)
	if err != nil {
		return Config{}, &ConfigError{Path: path, Err: err}
	}

	sec, err := f.GetSection(sectionName)
	if err != nil {
		return Config{}, &ConfigError{Path: path, Err: fmt.Errorf("no section: %q", sectionName)}
	}

	fail := func(err error) (Config, error) {
		return Config{}, &ConfigError{Path: path, Err: err}
	}

	var cfg Config
	if cfg.UseRegex, err = requiredBool(sec, keyUseRegex); err != nil {
		return fail(err)
	}
	if cfg.Debug, err = requiredBool(sec, keyDebug); err != nil {
		return fail(err)
	}
	logs, err := sec.GetKey(keyLogs)
	if err != nil {
		return fail(fmt.Errorf("no option %q in section: %q", keyLogs, sectionName))
	}
	cfg.LogsPath = logs.String()

	cfg.Encoding = defaultEncoding
	if sec.HasKey(keyEncoding) {
		cfg.Encoding = strings.TrimSpace(sec.Key(keyEncoding).String())
		if cfg.Encoding == "" {
			return fail(fmt.Errorf("option %q must not be empty", keyEncoding))
		}
		if _, err := textenc.Lookup(cfg.Encoding); err != nil {
			return fail(err)
		}
	}
	if sec.HasKey(keyFoldCase) {
		if cfg.FoldCase, err = ParseBool(sec.Key(keyFoldCase).String()); err != nil {
			return fail(err)
		}
	}

	return cfg, nil
}

// Save writes cfg to path. The file is written to a temp file first and then
// renamed into place.
func Save(path string, cfg Config) error {
	f := ini.Empty(loadOptions)
	sec, err := f.NewSection(sectionName)
	if err != nil {
		return err
	}
	pairs := [][2]string{
		{keyUseRegex, formatBool(cfg.UseRegex)},
		{keyDebug, formatBool(cfg.Debug)},
		{keyLogs, cfg.LogsPath},
	}
	if cfg.Encoding != "" && cfg.Encoding != defaultEncoding {
		pairs = append(pairs, [2]string{keyEncoding, cfg.Encoding})
	}
	if cfg.FoldCase {
		pairs = append(pairs, [2]string{keyFoldCase, formatBool(cfg.FoldCase)})
	}
	for _, kv := range pairs {
		if _, err := sec.NewKey(kv[0], kv[1]); err != nil {
			return err
		}
	}

	tmp := path + ".tmp"
	if err := f.SaveTo(tmp); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func requiredBool(sec *ini.Section, name string) (bool, error) {
	k, err := sec.GetKey(name)
	if err != nil {
		return false, fmt.Errorf("no option %q in section: %q", name, sectionName)
	}
	return ParseBool(k.String())
}

// ParseBool accepts 1/yes/true/on and 0/no/false/off, in any case.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "yes", "true", "on":
		return true, nil
	case "0", "no", "false", "off":
		return false, nil
	}
	return false, fmt.Errorf("not a boolean: %s", s)
}

func formatBool(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
