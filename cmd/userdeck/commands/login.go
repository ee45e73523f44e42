package commands

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login [app-id]",
		Short: "Save the service app-id encrypted under the passphrase",
		Long: `Save the service app-id encrypted under the passphrase (-p).

The app-id is taken from the argument, or read from standard input when no
argument is given. Later commands unlock it with the same passphrase.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return errors.New("passphrase required (-p)")
			}
			var id string
			if len(args) == 1 {
				id = args[0]
			} else {
				fmt.Fprint(cmd.OutOrStdout(), "app-id: ")
				in := bufio.NewScanner(cmd.InOrStdin())
				if in.Scan() {
					id = in.Text()
				}
			}
			id = strings.TrimSpace(id)
			if id == "" {
				return errors.New("empty app-id")
			}
			if err := appCtx.Wire().Credentials.SaveAppID(passphrase, id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "app-id saved.")
			return nil
		},
	}
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved app-id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Wire().Credentials.DeleteAppID(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "app-id removed.")
			return nil
		},
	}
}
