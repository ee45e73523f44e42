package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"userdeck/internal/domain"
	"userdeck/internal/screens/userlist"
)

// browse: interactive paging over the list screen.
func browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Page through users interactively",
		Long: `Page through users interactively.

Commands at the prompt:
  n        load the next page
  r        refresh from the first page
  d <id>   delete a user (asks for confirmation)
  q        quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAppID(); err != nil {
				return err
			}
			list := appCtx.UserList(cmd.Context())
			defer list.Close()

			in := bufio.NewScanner(cmd.InOrStdin())
			out := cmd.OutOrStdout()
			list.Wait()
			render(out, list)

			for {
				fmt.Fprint(out, "> ")
				if !in.Scan() {
					return in.Err()
				}
				verb, arg, _ := strings.Cut(strings.TrimSpace(in.Text()), " ")
				switch verb {
				case "", "n":
					if !list.State().HasMorePages {
						fmt.Fprintln(out, "no more users")
						continue
					}
					list.LoadMore()
				case "r":
					list.Refresh()
				case "d":
					id := domain.UserID(strings.TrimSpace(arg))
					if id == "" {
						fmt.Fprintln(out, "usage: d <id>")
						continue
					}
					list.RequestDelete(id)
					if !confirm(in, out, fmt.Sprintf("Delete %s?", id)) {
						list.DismissDelete()
						continue
					}
					list.ConfirmDelete()
				case "q":
					return nil
				default:
					fmt.Fprintf(out, "unknown command %q\n", verb)
					continue
				}
				list.Wait()
				render(out, list)
			}
		},
	}
}

func render(out io.Writer, list *userlist.Holder) {
	st := list.State()
	printUsers(out, st.Users)
	more := ""
	if st.HasMorePages {
		more = ", n for more"
	}
	fmt.Fprintf(out, "%d users shown%s\n", len(st.Users), more)
	if st.Error != "" {
		fmt.Fprintln(out, "error:", st.Error)
		list.ClearError()
	}
}

// confirm asks a y/N question on out and reads the answer from in.
func confirm(in *bufio.Scanner, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N] ", question)
	if !in.Scan() {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(in.Text())) {
	case "y", "yes":
		return true
	}
	return false
}
