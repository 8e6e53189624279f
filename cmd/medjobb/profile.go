package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Abraxas-365/medjobb/internal/platform"
	"github.com/Abraxas-365/medjobb/pkg/kernel"
	"github.com/Abraxas-365/medjobb/recruitment/profile"
	"github.com/pterm/pterm"
)

func (c *cli) openStore(ctx context.Context) (*profile.Store, func(), error) {
	slot, closeSlot, err := platform.ProfileSlot(ctx, c.cfg.Profile)
	if err != nil {
		return nil, closeSlot, err
	}
	return profile.NewStore(ctx, slot), closeSlot, nil
}

func (c *cli) profile(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: profile needs show, login, update or logout", errUsage)
	}

	store, closeStore, err := c.openStore(ctx)
	defer closeStore()
	if err != nil {
		return err
	}

	switch args[0] {
	case "show":
		return c.showProfile(store)
	case "login":
		return c.saveProfile(ctx, store, args[1:], false)
	case "update":
		return c.saveProfile(ctx, store, args[1:], true)
	case "logout":
		store.Logout(ctx)
		c.reportPersistence(store)
		fmt.Fprint(c.out, pterm.Success.Sprintln("Signed out"))
		return nil
	default:
		return fmt.Errorf("%w: unknown profile command %q", errUsage, args[0])
	}
}

func (c *cli) showProfile(store *profile.Store) error {
	p, ok := store.Current()
	if !ok {
		fmt.Fprint(c.out, pterm.Info.Sprintln("Not signed in"))
		return nil
	}

	rows := pterm.TableData{
		{"Name", p.GetFullName()},
		{"Email", string(p.Email)},
		{"Occupation", p.Occupation},
		{"University", p.University},
		{"Term", p.Term},
		{"Graduation", yearOrDash(p.GraduationYear)},
		{"Phone", string(p.Phone)},
		{"City", string(p.City)},
		{"Country", p.Country.GetDisplayName()},
		{"Interests", strings.Join(p.Interests, ", ")},
		{"Available", strings.Join(p.AvailableMonths, ", ")},
	}
	table, err := pterm.DefaultTable.WithData(rows).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, table)
	if p.About != "" {
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, p.About)
	}
	return nil
}

// saveProfile builds a profile from -file and flags. Update starts from the
// current profile so unset flags keep their value; the store still receives
// a complete replacement.
func (c *cli) saveProfile(ctx context.Context, store *profile.Store, args []string, update bool) error {
	name := "login"
	if update {
		name = "update"
	}

	fs := flag.NewFlagSet("profile "+name, flag.ContinueOnError)
	fs.SetOutput(c.out)
	file := fs.String("file", "", "JSON file holding the profile")
	first := fs.String("first", "", "First name")
	last := fs.String("last", "", "Last name")
	email := fs.String("email", "", "Email")
	password := fs.String("password", "", "Password (never stored)")
	occupation := fs.String("occupation", "", "Occupation")
	university := fs.String("university", "", "University")
	term := fs.String("term", "", "Current term")
	grad := fs.Int("grad-year", 0, "Graduation year")
	phone := fs.String("phone", "", "Phone")
	city := fs.String("city", "", "City")
	country := fs.String("country", "", "Sweden or Norway")
	about := fs.String("about", "", "About you")
	interests := fs.String("interests", "", "Comma-separated interests")
	months := fs.String("months", "", "Comma-separated available months")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var p profile.StudentProfile
	if update {
		if current, ok := store.Current(); ok {
			p = *current
		}
	}
	if *file != "" {
		data, err := os.ReadFile(*file)
		if err != nil {
			return fmt.Errorf("read profile file: %w", err)
		}
		if err := json.Unmarshal(data, &p); err != nil {
			return profile.ErrMalformedProfile().WithDetail("file", *file).WithCause(err)
		}
	}

	var countryErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "first":
			p.FirstName = kernel.FirstName(*first)
		case "last":
			p.LastName = kernel.LastName(*last)
		case "email":
			p.Email = kernel.Email(*email)
		case "password":
			p.Password = *password
		case "occupation":
			p.Occupation = *occupation
		case "university":
			p.University = *university
		case "term":
			p.Term = *term
		case "grad-year":
			p.GraduationYear = *grad
		case "phone":
			p.Phone = kernel.Phone(*phone)
		case "city":
			p.City = kernel.City(*city)
		case "country":
			parsed, ok := kernel.ParseCountry(*country)
			if !ok {
				countryErr = profile.ErrInvalidProfile().WithDetail("country", *country)
				return
			}
			p.Country = parsed
		case "about":
			p.About = *about
		case "interests":
			p.Interests = splitList(*interests)
		case "months":
			p.AvailableMonths = splitList(*months)
		}
	})
	if countryErr != nil {
		return countryErr
	}

	if err := p.Validate(); err != nil {
		return err
	}

	if update {
		store.Update(ctx, p)
	} else {
		store.Login(ctx, p)
	}
	c.reportPersistence(store)
	fmt.Fprint(c.out, pterm.Success.Sprintfln("Signed in as %s", p.GetFullName()))
	return nil
}

func (c *cli) reportPersistence(store *profile.Store) {
	if res := store.LastResult(); !res.OK() {
		fmt.Fprint(c.out, pterm.Warning.Sprintln("Profile could not be saved and will be lost when this command exits"))
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func yearOrDash(y int) string {
	if y == 0 {
		return "-"
	}
	return fmt.Sprint(y)
}
