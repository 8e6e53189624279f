package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Abraxas-365/medjobb/internal/platform"
	"github.com/Abraxas-365/medjobb/pkg/config"
	"github.com/Abraxas-365/medjobb/pkg/kernel"
	"github.com/Abraxas-365/medjobb/recruitment/job"
	"github.com/Abraxas-365/medjobb/recruitment/job/jobsrv"
	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"
)

// weekFlag is an optional non-negative week number
type weekFlag struct {
	value *int
}

func (w *weekFlag) String() string {
	if w.value == nil {
		return ""
	}
	return strconv.Itoa(*w.value)
}

func (w *weekFlag) Set(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return job.ErrInvalidWeek().WithDetail("value", s)
	}
	w.value = &n
	return nil
}

// catalog opens the configured catalog source and loads it
func (c *cli) catalog(ctx context.Context) (*jobsrv.JobService, func(), error) {
	cleanup := func() {}

	var repo job.Repository
	var err error
	if c.cfg.Catalog.Source == config.CatalogPostgres {
		db, dbErr := platform.OpenPostgres(c.cfg.Postgres)
		if dbErr != nil {
			return nil, cleanup, dbErr
		}
		cleanup = func() { _ = db.Close() }
		repo, err = platform.JobRepository(c.cfg.Catalog, db)
	} else {
		repo, err = platform.JobRepository(c.cfg.Catalog, nil)
	}
	if err != nil {
		return nil, cleanup, err
	}

	svc := jobsrv.NewJobService(repo)
	if err := svc.Load(ctx); err != nil {
		return nil, cleanup, err
	}
	return svc, cleanup, nil
}

func (c *cli) jobs(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("jobs", flag.ContinueOnError)
	fs.SetOutput(c.out)
	search := fs.String("q", "", "Free-text search term")
	location := fs.String("location", "", "Exact location, e.g. Oslo")
	basic := fs.Bool("basic", false, "Search title, department and location only")
	page := fs.Int("page", 1, "Page number")
	pageSize := fs.Int("page-size", c.cfg.Server.PageSize, "Listings per page")
	var from, to weekFlag
	fs.Var(&from, "from", "Earliest start week")
	fs.Var(&to, "to", "Latest end week")
	if err := fs.Parse(args); err != nil {
		return err
	}

	svc, cleanup, err := c.catalog(ctx)
	defer cleanup()
	if err != nil {
		return err
	}

	fields := job.DefaultSearchFields
	if *basic {
		fields = job.BasicSearchFields
	}

	resp, err := svc.SearchJobs(ctx, job.SearchJobsRequest{
		Criteria: job.FilterCriteria{
			Search:   *search,
			Location: *location,
			WeekFrom: from.value,
			WeekTo:   to.value,
			Fields:   fields,
		},
		Pagination: kernel.PaginationOptions{Page: *page, PageSize: *pageSize},
	})
	if err != nil {
		return err
	}

	if resp.Page.Total == 0 {
		fmt.Fprint(c.out, pterm.Warning.Sprintln("No listings match your filters"))
		return nil
	}

	data := pterm.TableData{{"ID", "Title", "Hospital", "Location", "Period", "Deadline"}}
	for _, r := range resp.Items {
		data = append(data, []string{
			r.ID.String(), r.Title, r.Hospital, r.Location, r.Period, deadline(r.Deadline, r.DeadlinePassed),
		})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, table)
	fmt.Fprintln(c.out, pageLine(resp.Page))
	return nil
}

func (c *cli) job(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: job takes exactly one id", errUsage)
	}

	svc, cleanup, err := c.catalog(ctx)
	defer cleanup()
	if err != nil {
		return err
	}

	r, err := svc.GetJobByID(ctx, kernel.NewJobID(args[0]))
	if err != nil {
		return err
	}

	fmt.Fprint(c.out, pterm.DefaultSection.Sprintln(r.Title))
	rows := pterm.TableData{
		{"Hospital", r.Hospital},
		{"Location", fmt.Sprintf("%s, %s", r.Location, r.Country.GetDisplayName())},
		{"Department", r.Department},
		{"Period", r.Period},
		{"Salary", r.Salary},
		{"Deadline", deadline(r.Deadline, r.DeadlinePassed)},
		{"Contact", strings.TrimSpace(fmt.Sprintf("%s %s %s", r.Contact.Name, r.Contact.Email, r.Contact.Phone))},
	}
	if r.ApplicationURL != "" {
		rows = append(rows, []string{"Apply", r.ApplicationURL})
	}
	table, err := pterm.DefaultTable.WithData(rows).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, table)
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, r.Description)
	for _, req := range r.Requirements {
		fmt.Fprintf(c.out, "  • %s\n", req)
	}
	return nil
}

func (c *cli) locations(ctx context.Context) error {
	svc, cleanup, err := c.catalog(ctx)
	defer cleanup()
	if err != nil {
		return err
	}

	locs, err := svc.ListLocations(ctx)
	if err != nil {
		return err
	}
	for _, l := range locs {
		fmt.Fprintln(c.out, l)
	}
	return nil
}

func deadline(d time.Time, passed bool) string {
	if d.IsZero() {
		return "-"
	}
	s := fmt.Sprintf("%s (%s)", d.Format("2006-01-02"), humanize.Time(d))
	if passed {
		return pterm.Gray(s)
	}
	return s
}

// pageLine reports the position and how to move from it
func pageLine(p kernel.Page) string {
	line := fmt.Sprintf("Page %d of %d (%d listings)", p.Number, p.Pages, p.Total)

	var moves []string
	if p.HasPrevious() {
		moves = append(moves, fmt.Sprintf("previous: -page %d", min(p.Number, p.Pages+1)-1))
	}
	if p.HasNext() {
		moves = append(moves, fmt.Sprintf("next: -page %d", p.Number+1))
	}
	if len(moves) > 0 {
		line += ", " + strings.Join(moves, ", ")
	}
	return line
}
