package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"userdeck/internal/app"
	"userdeck/internal/logging"
	"userdeck/internal/store"
)

var (
	home       string
	passphrase string
	appCtx     *app.App
	cfg        app.Config

	baseURL  string
	appID    string
	pageSize int
	logLevel string
)

// errNoAppID is returned by commands that talk to the service when no app-id
// could be resolved.
var errNoAppID = errors.New("no app-id: set USERDECK_APP_ID, pass --app-id or run `userdeck login`")

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "userdeck",
		Short:         "Browse and manage user records from the terminal",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = app.LoadConfigIn(home)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("base-url") {
				cfg.BaseURL = baseURL
			}
			if flags.Changed("page-size") {
				cfg.PageSize = pageSize
			}
			if flags.Changed("log-level") {
				cfg.Logging.Level = logLevel
			}
			if flags.Changed("app-id") {
				cfg.AppID = appID
			}
			if cfg.AppID == "" && passphrase != "" {
				saved, err := store.NewCredentialFileStore(cfg.Home).LoadAppID(passphrase)
				switch {
				case err == nil:
					cfg.AppID = saved
				case !errors.Is(err, store.ErrNoCredential):
					return fmt.Errorf("unlock app-id: %w", err)
				}
			}

			log := logging.New(cfg.Logging, cmd.ErrOrStderr())
			w, err := app.NewWire(cfg, log)
			if err != nil {
				return err
			}
			appCtx = app.New(w)
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&home, "home", "", "config dir (default ~/.userdeck)")
	pf.StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting the saved app-id")
	pf.StringVar(&baseURL, "base-url", "", "user service base URL (default "+app.DefaultBaseURL+")")
	pf.StringVar(&appID, "app-id", "", "service app-id (overrides the saved one)")
	pf.IntVar(&pageSize, "page-size", 0, "rows per page")
	pf.StringVar(&logLevel, "log-level", "", "debug, info, warn or error")

	root.AddCommand(
		listCmd(), browseCmd(), showCmd(),
		createCmd(), editCmd(), deleteCmd(),
		loginCmd(), logoutCmd(), configCmd(),
	)
	return root
}

func requireAppID() error {
	if cfg.AppID == "" {
		return errNoAppID
	}
	return nil
}
