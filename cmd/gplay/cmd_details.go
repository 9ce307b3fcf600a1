// -*- Mode: Go; indent-tabs-mode: t -*-

/*
 * Copyright (C) 2026 Aurora OSS
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License version 3 as
 * published by the Free Software Foundation.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 */

package main

import (
	"fmt"

	"github.com/jessevdk/go-flags"
)

type cmdDetails struct {
	Positional struct {
		Package string `positional-arg-name:"<package>" required:"true"`
	} `positional-args:"true"`
}

func init() {
	addCommand("details",
		"Show the catalog record of a package",
		"The details command fetches and prints the catalog record of one package.",
		func() flags.Commander { return &cmdDetails{} })
}

func (x *cmdDetails) Execute(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("too many arguments: %v", args)
	}

	st, _, err := storeClient()
	if err != nil {
		return err
	}
	app, err := st.AppDetails(x.Positional.Package)
	if err != nil {
		return err
	}

	fmt.Fprintf(Stdout, "package:\t%s\n", app.PackageName)
	fmt.Fprintf(Stdout, "title:\t%s\n", app.Title)
	if app.Subtitle != "" {
		fmt.Fprintf(Stdout, "developer:\t%s\n", app.Subtitle)
	}
	if app.Price.FormattedAmount != "" {
		fmt.Fprintf(Stdout, "price:\t%s\n", app.Price.FormattedAmount)
	}
	if app.Description != "" {
		fmt.Fprintf(Stdout, "description: |\n  %s\n", app.Description)
	}
	return nil
}
