// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"github.com/diffeo/go-roadmap/roadmap"
	"github.com/urfave/cli"
)

func releaseCommand(t *ctl) cli.Command {
	flags := []cli.Flag{
		cli.StringFlag{
			Name:  "version",
			Usage: "release version, such as v1.0",
		},
		cli.StringFlag{
			Name:  "date",
			Usage: "release date, YYYY-MM-DD",
		},
	}
	return cli.Command{
		Name:  "release",
		Usage: "manage releases",
		Subcommands: []cli.Command{
			{
				Name:  "list",
				Usage: "list all releases",
				Action: func(c *cli.Context) error {
					list, err := t.Roadmap.Releases().Releases(t.ctx())
					if err != nil {
						return err
					}
					for _, r := range list {
						if err = t.print(r); err != nil {
							return err
						}
					}
					return nil
				},
			},
			{
				Name:      "get",
				Usage:     "show one release",
				ArgsUsage: "ID",
				Action: func(c *cli.Context) error {
					id, err := idArg(c)
					if err != nil {
						return err
					}
					r, found, err := t.Roadmap.Releases().Release(t.ctx(), id)
					if err != nil {
						return err
					}
					if !found {
						return notFound("release", id)
					}
					return t.print(r)
				},
			},
			{
				Name:  "create",
				Usage: "create a release, dated today unless --date is given",
				Flags: flags,
				Action: func(c *cli.Context) error {
					date, err := dateFlag(c, "date", t.today())
					if err != nil {
						return err
					}
					r, err := t.Roadmap.Releases().CreateRelease(t.ctx(), roadmap.Release{
						Version:     c.String("version"),
						ReleaseDate: date,
					})
					if err != nil {
						return err
					}
					return t.print(r)
				},
			},
			{
				Name:      "update",
				Usage:     "change the version or date of a release",
				ArgsUsage: "ID",
				Flags:     flags,
				Action: func(c *cli.Context) error {
					id, err := idArg(c)
					if err != nil {
						return err
					}
					svc := t.Roadmap.Releases()
					r, found, err := svc.Release(t.ctx(), id)
					if err != nil {
						return err
					}
					if !found {
						return notFound("release", id)
					}
					if c.IsSet("version") {
						r.Version = c.String("version")
					}
					if r.ReleaseDate, err = dateFlag(c, "date", r.ReleaseDate); err != nil {
						return err
					}
					r, found, err = svc.UpdateRelease(t.ctx(), id, r)
					if err != nil {
						return err
					}
					if !found {
						return notFound("release", id)
					}
					return t.print(r)
				},
			},
			{
				Name:      "delete",
				Usage:     "delete a release",
				ArgsUsage: "ID",
				Action: func(c *cli.Context) error {
					id, err := idArg(c)
					if err != nil {
						return err
					}
					deleted, err := t.Roadmap.Releases().DeleteRelease(t.ctx(), id)
					if err != nil {
						return err
					}
					if !deleted {
						return notFound("release", id)
					}
					return nil
				},
			},
		},
	}
}
