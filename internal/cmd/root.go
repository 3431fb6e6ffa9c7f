package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Penguin825/chatlog-search/internal/opener"
	"github.com/Penguin825/chatlog-search/internal/settings"
)

// version is overridden at build time with -ldflags "-X ...cmd.version=...".
var version = "1.4.0"

// options holds the flag values for one invocation.
type options struct {
	cfgFile   string
	outputFmt string
	term      string
	outDir    string
	noOpen    bool
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd(opener.NewSystem()).Execute(); err != nil {
		var halt *haltError
		if !errors.As(err, &halt) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// NewRootCmd builds the chatlog command. The opener is called with the
// result file once it has been written.
func NewRootCmd(op opener.Opener) *cobra.Command {
	opts := &options{}
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "chatlog [search term]",
		Short: "Chatlog Search: find lines in Minecraft chat logs",
		Long: `Chatlog Search scans a folder of chat logs (*.log and *.log.gz) for a
search term and writes every matching line to ResultsFor_<term>.txt.

Settings are read from search_config.ini, which is created with defaults on
first run. Flags and CHATLOG_* environment variables override it.

A term that is also a subcommand name (such as "settings") must be passed
with --term.

Examples:
  chatlog
  chatlog diamond
  chatlog --regex '^\[\d+:\d+:\d+\] .*joined the game'
  chatlog --logs ~/backups/logs --no-open "trade"
  chatlog --term settings`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args, opts, v, op)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.cfgFile, "config", "c", settings.DefaultFile, "settings file")
	flags.Bool("regex", false, "treat the search term as a regular expression (overrides settings)")
	flags.Bool("debug", false, "print progress while searching (overrides settings)")
	flags.String("logs", "", "folder containing the chat logs (overrides settings)")

	rootCmd.Flags().StringVarP(&opts.term, "term", "t", "", "search term (skips the prompt)")
	rootCmd.Flags().StringVarP(&opts.outputFmt, "output", "o", "text", "progress format: text, json")
	rootCmd.Flags().StringVar(&opts.outDir, "out-dir", ".", "directory for the results file")
	rootCmd.Flags().BoolVar(&opts.noOpen, "no-open", false, "do not open the results file when done")

	initConfig(v, flags)

	rootCmd.AddCommand(newSettingsCmd(opts, v))
	return rootCmd
}

// initConfig wires flag and environment overrides into v.
func initConfig(v *viper.Viper, flags *pflag.FlagSet) {
	for _, name := range []string{"regex", "debug", "logs"} {
		cobra.CheckErr(v.BindPFlag(name, flags.Lookup(name)))
	}
	v.SetEnvPrefix("chatlog")
	v.AutomaticEnv()
}
