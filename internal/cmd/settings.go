package cmd

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newSettingsCmd(opts *options, v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "settings",
		Short: "Show the settings a search would use",
		Long: `Resolve search_config.ini (creating it if missing), apply flag and
environment overrides, and print the result.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			cfg, err := resolveConfig(cmd, bufio.NewReader(cmd.InOrStdin()), opts.cfgFile, v)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "settings file = %s\n", opts.cfgFile)
			fmt.Fprintf(out, "use regex     = %s\n", onOff(cfg.UseRegex))
			fmt.Fprintf(out, "debug         = %s\n", onOff(cfg.Debug))
			fmt.Fprintf(out, "logs folder   = %s\n", cfg.LogsPath)
			fmt.Fprintf(out, "encoding      = %s\n", cfg.Encoding)
			fmt.Fprintf(out, "fold case     = %s\n", onOff(cfg.FoldCase))
			return nil
		},
	}
}
