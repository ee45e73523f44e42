package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	var pages int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the first pages of users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAppID(); err != nil {
				return err
			}
			if pages < 1 {
				return fmt.Errorf("--pages must be at least 1")
			}
			list := appCtx.UserList(cmd.Context())
			defer list.Close()
			list.Wait()

			for i := 1; i < pages && list.State().HasMorePages; i++ {
				list.LoadMore()
				list.Wait()
			}

			st := list.State()
			printUsers(cmd.OutOrStdout(), st.Users)
			if st.HasMorePages {
				fmt.Fprintln(cmd.OutOrStdout(), "(more available: use --pages or browse)")
			}
			if st.Error != "" {
				return errors.New(st.Error)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&pages, "pages", 1, "number of pages to fetch")
	return cmd
}
