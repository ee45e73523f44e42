package devserver

import (
	"context"
	"fmt"
	"strings"
	"time"

	"userdeck/internal/domain"
)

var seedPeople = []struct {
	title, first, last, gender, city, country string
}{
	{"ms", "Sara", "Andersen", "female", "Kongsvinger", "Norway"},
	{"mr", "Edita", "Vestering", "male", "Harderwijk", "Netherlands"},
	{"miss", "Adina", "Barbosa", "female", "Ibirité", "Brazil"},
	{"mr", "Roberto", "Vega", "male", "Madrid", "Spain"},
	{"mr", "Rudi", "Droste", "male", "Wolfsburg", "Germany"},
	{"mrs", "Carolina", "Lima", "female", "Vitória", "Brazil"},
	{"mr", "Emre", "Asikoglu", "male", "Hatay", "Turkey"},
	{"ms", "Kent", "Brewer", "female", "Hobart", "Australia"},
	{"mr", "Evan", "Carlson", "male", "Ennis", "Ireland"},
	{"miss", "Friedrich-Karl", "Brand", "female", "Bochum", "Germany"},
	{"mrs", "Valentin", "Ortega", "female", "Lyon", "France"},
	{"mr", "Nihal", "Gupta", "male", "Pune", "India"},
}

// Seed inserts n generated users registered one minute apart, newest last.
// Generated emails are unique within one call.
func Seed(ctx context.Context, s Store, n int, now time.Time) error {
	start := now.UTC().Add(-time.Duration(n) * time.Minute)
	for i := range n {
		p := seedPeople[i%len(seedPeople)]
		at := start.Add(time.Duration(i) * time.Minute).Truncate(time.Millisecond)
		u := User{
			ID:          NewID(),
			Title:       p.title,
			FirstName:   p.first,
			LastName:    p.last,
			Gender:      p.gender,
			Email:       fmt.Sprintf("%s.%s.%d@example.com", strings.ToLower(p.first), strings.ToLower(p.last), i),
			DateOfBirth: time.Date(1970+i%40, time.Month(1+i%12), 1+i%28, 0, 0, 0, 0, time.UTC).Format(timeLayout),
			Phone:       fmt.Sprintf("55501%05d", i),
			Picture:     fmt.Sprintf("https://randomuser.me/api/portraits/%s/%d.jpg", portraitDir(p.gender), i%100),
			Location: &domain.LocationDTO{
				Street:   fmt.Sprintf("%d Main Street", 1+i),
				City:     p.city,
				Country:  p.country,
				Timezone: "+0:00",
			},
			RegisterDate: at,
			UpdatedDate:  at,
		}
		if _, err := s.Create(ctx, u); err != nil {
			return fmt.Errorf("seed user %d: %w", i, err)
		}
	}
	return nil
}

func portraitDir(gender string) string {
	if gender == "female" {
		return "women"
	}
	return "men"
}
