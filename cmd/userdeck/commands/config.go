package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"userdeck/internal/store"
)

func configCmd() *cobra.Command {
	var save bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration",
		Long: `Print the resolved configuration.

With --save, the base URL and page size (after flags and environment are
applied) are written to the settings file and become the new defaults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if save {
				if err := appCtx.Wire().Settings.SaveSettings(cfg.Settings()); err != nil {
					return err
				}
				fmt.Fprintln(out, "settings saved.")
			}

			appIDState := "not set"
			if cfg.AppID != "" {
				appIDState = "set, fingerprint " + store.Fingerprint(cfg.AppID)
			}
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "home:\t%s\n", cfg.Home)
			fmt.Fprintf(tw, "base-url:\t%s\n", cfg.BaseURL)
			fmt.Fprintf(tw, "page-size:\t%d\n", cfg.PageSize)
			fmt.Fprintf(tw, "timeout:\t%s\n", cfg.Timeout)
			fmt.Fprintf(tw, "app-id:\t%s\n", appIDState)
			fmt.Fprintf(tw, "log-level:\t%s\n", cfg.Logging.Level)
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&save, "save", false, "save base URL and page size as settings")
	return cmd
}
