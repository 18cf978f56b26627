// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package roadmapctl is a command-line client for the roadmap
// service.  It manipulates milestones and releases through any
// roadmap backend, by default the REST API of a local roadmapd.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/benbjohnson/clock"
	"github.com/diffeo/go-roadmap/backend"
	"github.com/diffeo/go-roadmap/restdata"
	"github.com/diffeo/go-roadmap/roadmap"
	"github.com/urfave/cli"
)

// ctl holds the state shared by all of the commands.
type ctl struct {
	Backend backend.Backend
	Roadmap roadmap.Roadmap
	Clock   clock.Clock
	Out     io.Writer
}

func (t *ctl) ctx() context.Context {
	return context.Background()
}

// print writes v to the output as JSON, one object per line.
func (t *ctl) print(v interface{}) error {
	if err := restdata.Encode(t.Out, v); err != nil {
		return err
	}
	_, err := fmt.Fprintln(t.Out)
	return err
}

// today returns the current date, for use as a default.
func (t *ctl) today() roadmap.Date {
	return roadmap.Today(t.Clock)
}

// dateFlag reads a YYYY-MM-DD flag value, returning def if the flag
// was not given.
func dateFlag(c *cli.Context, name string, def roadmap.Date) (roadmap.Date, error) {
	if !c.IsSet(name) {
		return def, nil
	}
	d, err := roadmap.ParseDate(c.String(name))
	if err != nil {
		return roadmap.Date{}, cli.NewExitError(fmt.Sprintf("invalid --%v: %v", name, err), 2)
	}
	return d, nil
}

// idArg reads the single object ID argument of a command.
func idArg(c *cli.Context) (int64, error) {
	if c.NArg() != 1 {
		return 0, cli.NewExitError("expected exactly one ID argument", 2)
	}
	id, err := strconv.ParseInt(c.Args().First(), 10, 64)
	if err != nil {
		return 0, cli.NewExitError(fmt.Sprintf("invalid ID %q", c.Args().First()), 2)
	}
	return id, nil
}

func notFound(kind string, id int64) error {
	return cli.NewExitError(fmt.Sprintf("%v %v not found", kind, id), 1)
}

func newApp(t *ctl) *cli.App {
	app := cli.NewApp()
	app.Name = "roadmapctl"
	app.Usage = "manage roadmap milestones and releases"
	app.HideVersion = true
	app.Writer = t.Out
	app.Flags = []cli.Flag{
		cli.GenericFlag{
			Name:   "backend",
			Value:  &t.Backend,
			Usage:  "impl:[address] of roadmap backend",
			EnvVar: "ROADMAP_BACKEND",
		},
	}
	app.Commands = []cli.Command{
		t.connected(milestoneCommand(t)),
		t.connected(releaseCommand(t)),
	}
	return app
}

// connect creates the roadmap backend, if it does not exist yet.
func (t *ctl) connect() (err error) {
	if t.Roadmap == nil {
		t.Roadmap, err = t.Backend.Roadmap()
	}
	return
}

// connected wraps every subcommand action of cmd so that the backend
// is only contacted when one of them actually runs, and not to show
// help.
func (t *ctl) connected(cmd cli.Command) cli.Command {
	for i := range cmd.Subcommands {
		action := cmd.Subcommands[i].Action.(func(*cli.Context) error)
		cmd.Subcommands[i].Action = func(c *cli.Context) error {
			if err := t.connect(); err != nil {
				return err
			}
			return action(c)
		}
	}
	return cmd
}

func main() {
	t := &ctl{
		Backend: backend.Backend{Implementation: "http", Address: "//localhost:8080/api/"},
		Clock:   clock.New(),
		Out:     os.Stdout,
	}
	newApp(t).RunAndExitOnError()
}
