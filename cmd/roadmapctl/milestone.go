// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"github.com/diffeo/go-roadmap/roadmap"
	"github.com/urfave/cli"
)

func milestoneCommand(t *ctl) cli.Command {
	flags := []cli.Flag{
		cli.StringFlag{
			Name:  "name",
			Usage: "milestone name",
		},
		cli.StringFlag{
			Name:  "due",
			Usage: "due date, YYYY-MM-DD",
		},
	}
	return cli.Command{
		Name:  "milestone",
		Usage: "manage milestones",
		Subcommands: []cli.Command{
			{
				Name:  "list",
				Usage: "list all milestones",
				Action: func(c *cli.Context) error {
					list, err := t.Roadmap.Milestones().Milestones(t.ctx())
					if err != nil {
						return err
					}
					for _, m := range list {
						if err = t.print(m); err != nil {
							return err
						}
					}
					return nil
				},
			},
			{
				Name:      "get",
				Usage:     "show one milestone",
				ArgsUsage: "ID",
				Action: func(c *cli.Context) error {
					id, err := idArg(c)
					if err != nil {
						return err
					}
					m, found, err := t.Roadmap.Milestones().Milestone(t.ctx(), id)
					if err != nil {
						return err
					}
					if !found {
						return notFound("milestone", id)
					}
					return t.print(m)
				},
			},
			{
				Name:  "create",
				Usage: "create a milestone, due today unless --due is given",
				Flags: flags,
				Action: func(c *cli.Context) error {
					due, err := dateFlag(c, "due", t.today())
					if err != nil {
						return err
					}
					m, err := t.Roadmap.Milestones().CreateMilestone(t.ctx(), roadmap.Milestone{
						Name:    c.String("name"),
						DueDate: due,
					})
					if err != nil {
						return err
					}
					return t.print(m)
				},
			},
			{
				Name:      "update",
				Usage:     "change the name or due date of a milestone",
				ArgsUsage: "ID",
				Flags:     flags,
				Action: func(c *cli.Context) error {
					id, err := idArg(c)
					if err != nil {
						return err
					}
					svc := t.Roadmap.Milestones()
					m, found, err := svc.Milestone(t.ctx(), id)
					if err != nil {
						return err
					}
					if !found {
						return notFound("milestone", id)
					}
					if c.IsSet("name") {
						m.Name = c.String("name")
					}
					if m.DueDate, err = dateFlag(c, "due", m.DueDate); err != nil {
						return err
					}
					m, found, err = svc.UpdateMilestone(t.ctx(), id, m)
					if err != nil {
						return err
					}
					if !found {
						return notFound("milestone", id)
					}
					return t.print(m)
				},
			},
			{
				Name:      "delete",
				Usage:     "delete a milestone",
				ArgsUsage: "ID",
				Action: func(c *cli.Context) error {
					id, err := idArg(c)
					if err != nil {
						return err
					}
					deleted, err := t.Roadmap.Milestones().DeleteMilestone(t.ctx(), id)
					if err != nil {
						return err
					}
					if !deleted {
						return notFound("milestone", id)
					}
					return nil
				},
			},
		},
	}
}
