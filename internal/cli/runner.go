package cli

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/ninebudget/ninebudget/client"
)

// Runner holds what every view needs: where to write, how to reach the API
// and whether to dump decoded entities.
type Runner struct {
	Out       io.Writer
	Config    client.Config
	Logger    logrus.FieldLogger
	NewClient func(cfg client.Config, opts ...client.Option) (*client.Client, error)

	debug  bool
	client *client.Client
}

func NewRunner(out io.Writer, cfg client.Config, logger logrus.FieldLogger) *Runner {
	return &Runner{
		Out:       out,
		Config:    cfg,
		Logger:    logger,
		NewClient: client.New,
	}
}

// App builds the command router with every view registered.
func (r *Runner) App() *cli.App {
	return &cli.App{
		Name:  "ninebudget",
		Usage: "personal budgeting from the terminal",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "debug", Usage: "dump decoded API entities"},
			&cli.StringFlag{Name: "api-url", Usage: "API base URL", Value: r.Config.BaseURL},
		},
		Before: func(c *cli.Context) error {
			r.debug = c.Bool("debug")
			r.Config.BaseURL = c.String("api-url")
			return nil
		},
		Commands:             Views(r),
		Writer:               r.Out,
		EnableBashCompletion: true,
	}
}

// Client returns the API client, creating it on first use.
func (r *Runner) Client() (*client.Client, error) {
	if r.client != nil {
		return r.client, nil
	}
	c, err := r.NewClient(r.Config, client.WithLogger(r.Logger))
	if err != nil {
		return nil, fmt.Errorf("create api client: %w", err)
	}
	r.client = c
	return c, nil
}

func (r *Runner) dump(label string, v any) {
	if !r.debug {
		return
	}
	fmt.Fprintf(r.Out, "--- %s\n", label)
	spew.Fdump(r.Out, v)
}

func (r *Runner) printf(format string, args ...any) {
	fmt.Fprintf(r.Out, format, args...)
}
