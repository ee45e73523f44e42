package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"userdeck/internal/domain"
)

func printUsers(w io.Writer, users []domain.UserPreview) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tNAME")
	for _, u := range users {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", u.ID, u.Title, u.FullName())
	}
	_ = tw.Flush()
}

func printUser(w io.Writer, u domain.UserDetail) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	row := func(k, v string) {
		if v != "" {
			fmt.Fprintf(tw, "%s:\t%s\n", k, v)
		}
	}
	row("ID", u.ID.String())
	row("Name", u.FullName())
	row("Title", u.Title)
	row("Gender", u.Gender)
	row("Email", u.Email)
	row("Phone", u.Phone)
	row("Born", u.DateOfBirth)
	if l := u.Location; l != nil {
		row("Street", l.Street)
		row("City", l.City)
		row("State", l.State)
		row("Country", l.Country)
		row("Timezone", l.Timezone)
	}
	row("Picture", u.Picture)
	row("Registered", u.RegisterDate)
	row("Updated", u.UpdatedDate)
	_ = tw.Flush()
}
