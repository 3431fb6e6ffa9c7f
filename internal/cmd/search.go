package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Penguin825/chatlog-search/internal/aggregator"
	"github.com/Penguin825/chatlog-search/internal/logging"
	"github.com/Penguin825/chatlog-search/internal/matcher"
	"github.com/Penguin825/chatlog-search/internal/model"
	"github.com/Penguin825/chatlog-search/internal/opener"
	"github.com/Penguin825/chatlog-search/internal/output"
	"github.com/Penguin825/chatlog-search/internal/scanner"
	"github.com/Penguin825/chatlog-search/internal/settings"
	"github.com/Penguin825/chatlog-search/internal/textenc"
)

// haltError marks a failure that has already been explained to the user.
type haltError struct {
	err error
}

func (e *haltError) Error() string { return e.err.Error() }
func (e *haltError) Unwrap() error { return e.err }

func runSearch(cmd *cobra.Command, args []string, opts *options, v *viper.Viper, op opener.Opener) error {
	out := cmd.OutOrStdout()
	in := bufio.NewReader(cmd.InOrStdin())

	printBanner(out)

	// --- Resolve settings ---
	cfg, err := resolveConfig(cmd, in, opts.cfgFile, v)
	if err != nil {
		return err
	}
	logger := logging.New("search")

	enc, err := textenc.Lookup(cfg.Encoding)
	if err != nil {
		return err
	}

	// --- Choose renderer ---
	var renderer output.Renderer
	switch strings.ToLower(opts.outputFmt) {
	case "json":
		renderer = output.NewJSONRenderer(out)
	case "text", "":
		renderer = output.NewTextRenderer(out)
	default:
		return fmt.Errorf("unknown output format %q (want text or json)", opts.outputFmt)
	}

	if cfg.Debug {
		if err := renderer.SearchType(cfg.UseRegex); err != nil {
			return err
		}
	}

	// --- Get the search term ---
	term, err := searchTerm(out, in, args, opts)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Searching...")

	m, err := matcher.New(term, cfg.UseRegex, cfg.FoldCase)
	if err != nil {
		return err
	}

	// --- Scan ---
	agg := aggregator.New()
	observers := model.Observers{agg}
	if cfg.Debug {
		observers = append(observers, renderer)
	}
	results, err := scanner.Scan(scanner.Options{
		Dir:      cfg.LogsPath,
		Matcher:  m,
		Encoding: enc,
		Observer: observers,
	})
	if err != nil {
		return err
	}
	if err := renderer.Err(); err != nil {
		return err
	}

	// --- Write results ---
	filename := output.ResultFilename(term)
	path := filepath.Join(opts.outDir, filename)
	if cfg.Debug {
		if err := renderer.Writing(filename); err != nil {
			return err
		}
	}
	if err := output.WriteResults(path, results, enc); err != nil {
		return err
	}

	stats := agg.Snapshot()
	logger.Info("results written", "path", path, "matches", stats.TotalMatches)
	for _, name := range stats.Sources() {
		logger.Debug("matches per file", "file", name, "count", stats.MatchCounts[name])
	}

	if cfg.Debug {
		if err := renderer.Summary(stats); err != nil {
			return err
		}
		fmt.Fprint(out, "Done.\n\nPress enter to view results.\n")
		_, _ = in.ReadString('\n')
	}

	// --- Open the result ---
	if opts.noOpen {
		return nil
	}
	if err := op.Open(path); err != nil {
		logging.New("open").Warn("could not open results", "path", path, "err", err)
	}
	return nil
}

// resolveConfig loads the settings file, layers flag/env overrides on top and
// sets up logging for the run. A malformed file is reported to the user and
// halts the run before any override is consulted.
func resolveConfig(cmd *cobra.Command, in *bufio.Reader, path string, v *viper.Viper) (settings.Config, error) {
	out := cmd.OutOrStdout()
	cfg, created, err := settings.Resolve(path)
	if err != nil {
		var cerr *settings.ConfigError
		if errors.As(err, &cerr) {
			fmt.Fprintln(out, cerr.Err)
			fmt.Fprintln(out, cerr.Remediation())
			if interactive(cmd.InOrStdin()) {
				fmt.Fprint(out, "\nPress enter to exit.\n")
				_, _ = in.ReadString('\n')
			}
			return settings.Config{}, &haltError{err: err}
		}
		return settings.Config{}, err
	}

	if created {
		fmt.Fprintln(out, "No config file found.")
		fmt.Fprintf(out, "%s created with the following settings:\nuse regex = %s\ndebug = %s\nlogs folder = %s\n\n",
			path, onOff(cfg.UseRegex), onOff(cfg.Debug), cfg.LogsPath)
	}

	if cfg.UseRegex, err = boolOverride(v, "regex", cfg.UseRegex); err != nil {
		return settings.Config{}, err
	}
	if cfg.Debug, err = boolOverride(v, "debug", cfg.Debug); err != nil {
		return settings.Config{}, err
	}
	if v.IsSet("logs") {
		cfg.LogsPath = v.GetString("logs")
	}

	logging.Setup(cfg.Debug, cmd.ErrOrStderr())
	logger := logging.New("settings")
	if created {
		logger.Debug("created settings file", "path", path)
	} else {
		logger.Debug("loaded settings", "path", path)
	}
	return cfg, nil
}

// boolOverride returns the flag or CHATLOG_* value for key when one is set,
// parsed with the same grammar as the settings file.
func boolOverride(v *viper.Viper, key string, current bool) (bool, error) {
	if !v.IsSet(key) {
		return current, nil
	}
	raw := v.GetString(key)
	b, err := settings.ParseBool(raw)
	if err != nil {
		return false, &settings.OverrideError{Name: key, Value: raw, Err: err}
	}
	return b, nil
}

// interactive reports whether r is a terminal.
func interactive(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// searchTerm returns the term from the arguments, or prompts for it.
func searchTerm(out io.Writer, in *bufio.Reader, args []string, opts *options) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if opts.term != "" {
		return opts.term, nil
	}

	fmt.Fprint(out, "Enter a search string:\n>")
	line, err := in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("failed to read search string: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
