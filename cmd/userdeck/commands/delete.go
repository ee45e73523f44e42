package commands

import (
	"bufio"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"userdeck/internal/domain"
)

func deleteCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a user after confirmation",
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
			out := cmd.OutOrStdout()
			detail.RequestDelete()
			if !yes && !confirm(bufio.NewScanner(cmd.InOrStdin()), out, fmt.Sprintf("Delete %s (%s)?", st.User.FullName(), st.User.ID)) {
				detail.DismissDelete()
				fmt.Fprintln(out, "Cancelled.")
				return nil
			}
			detail.Delete()
			detail.Wait()

			st = detail.State()
			if !st.Deleted {
				return errors.New(st.Error)
			}
			fmt.Fprintf(out, "Deleted %s.\n", args[0])
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}
