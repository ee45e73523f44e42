package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"userdeck/internal/domain"
	"userdeck/internal/screens/userform"
)

// fieldFlags binds the user form fields to command flags.
func fieldFlags(fs *pflag.FlagSet, f *domain.UserFields, withEmail bool) {
	fs.StringVar(&f.Title, "title", "", "mr, ms, mrs or miss")
	fs.StringVar(&f.FirstName, "first-name", "", "first name")
	fs.StringVar(&f.LastName, "last-name", "", "last name")
	fs.StringVar(&f.Gender, "gender", "", "male or female")
	if withEmail {
		fs.StringVar(&f.Email, "email", "", "email address")
	}
	fs.StringVar(&f.DateOfBirth, "dob", "", "date of birth, YYYY-MM-DD")
	fs.StringVar(&f.Phone, "phone", "", "phone number, digits only")
	fs.StringVar(&f.Picture, "picture", "", "picture URL")
}

func createCmd() *cobra.Command {
	var fields domain.UserFields
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAppID(); err != nil {
				return err
			}
			form := appCtx.CreateUser(cmd.Context())
			defer form.Close()
			if err := form.Submit(fields); err != nil {
				return err
			}
			form.Wait()

			st := form.State()
			if !st.Success {
				return errors.New(st.Error)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s.\n", st.Created.ID)
			printUser(cmd.OutOrStdout(), *st.Created)
			return nil
		},
	}
	fieldFlags(cmd.Flags(), &fields, true)
	return cmd
}

func editCmd() *cobra.Command {
	var fields domain.UserFields
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a user's fields; unset flags keep their current value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAppID(); err != nil {
				return err
			}
			form := appCtx.EditUser(cmd.Context(), domain.UserID(args[0]))
			defer form.Close()
			form.Wait()

			st := form.State()
			if st.User == nil {
				return errors.New(st.Error)
			}
			merged := userform.FieldsOf(*st.User)
			flags := cmd.Flags()
			pick := func(name string, dst *string, v string) {
				if flags.Changed(name) {
					*dst = v
				}
			}
			pick("title", &merged.Title, fields.Title)
			pick("first-name", &merged.FirstName, fields.FirstName)
			pick("last-name", &merged.LastName, fields.LastName)
			pick("gender", &merged.Gender, fields.Gender)
			pick("dob", &merged.DateOfBirth, fields.DateOfBirth)
			pick("phone", &merged.Phone, fields.Phone)
			pick("picture", &merged.Picture, fields.Picture)

			if err := form.Submit(merged); err != nil {
				return err
			}
			form.Wait()

			st = form.State()
			if !st.Success {
				return errors.New(st.Error)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s.\n", st.User.ID)
			printUser(cmd.OutOrStdout(), *st.User)
			return nil
		},
	}
	fieldFlags(cmd.Flags(), &fields, false)
	return cmd
}
