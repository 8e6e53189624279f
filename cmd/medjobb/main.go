// Command medjobb is the terminal front-end of the summer-job board: browse
// listings, keep a student profile signed in, and read or post ads.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Abraxas-365/medjobb/internal/platform"
	"github.com/Abraxas-365/medjobb/pkg/config"
	"github.com/Abraxas-365/medjobb/pkg/errx"
	"github.com/pterm/pterm"
)

const usage = `usage: medjobb <command> [flags]

commands:
  jobs       search listings (-q -location -from -to -basic -page -page-size)
  job <id>   show one listing
  locations  list locations
  profile    show | login | update | logout
  ads        list | post
`

// errUsage is returned for malformed command lines
var errUsage = errors.New("invalid usage")

// cli carries what every command needs
type cli struct {
	cfg *config.Config
	out io.Writer
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		pterm.Error.Printfln("Invalid configuration: %v", err)
		os.Exit(1)
	}
	platform.ConfigureLogging(cfg.Log)

	app := &cli{cfg: cfg, out: os.Stdout}
	if err := app.run(context.Background(), os.Args[1:]); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		pterm.Error.Println(describe(err))
		os.Exit(1)
	}
}

func (c *cli) run(ctx context.Context, args []string) error {
	err := c.dispatch(ctx, args)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	return err
}

func (c *cli) dispatch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	switch args[0] {
	case "jobs":
		return c.jobs(ctx, args[1:])
	case "job":
		return c.job(ctx, args[1:])
	case "locations":
		return c.locations(ctx)
	case "profile":
		return c.profile(ctx, args[1:])
	case "ads":
		return c.ads(ctx, args[1:])
	case "help", "-h", "--help":
		fmt.Fprint(c.out, usage)
		return nil
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}

// describe renders domain errors with their code and details
func describe(err error) string {
	e, ok := errx.As(err)
	if !ok {
		return err.Error()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)", e.Message, e.Code)
	for k, v := range e.Details {
		fmt.Fprintf(&b, "\n  %s: %v", k, v)
	}
	return b.String()
}
