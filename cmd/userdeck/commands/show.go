package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"userdeck/internal/domain"
)

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print one user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAppID(); err != nil {
				return err
			}
			detail := appCtx.UserDetail(cmd.Context(), domain.UserID(args[0]))
			defer detail.Close()
			detail.Wait()

			st := detail.State()
			if st.Error != "" {
				return errors.New(st.Error)
			}
			printUser(cmd.OutOrStdout(), *st.User)
			return nil
		},
	}
}
