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
	"strings"
	"text/tabwriter"

	"github.com/jessevdk/go-flags"
)

type cmdSearch struct {
	Positional struct {
		Query []string `positional-arg-name:"<query>" required:"true"`
	} `positional-args:"true"`
}

func init() {
	addCommand("search",
		"Search the catalog",
		"The search command queries the catalog and lists matching apps.",
		func() flags.Commander { return &cmdSearch{} })
}

func (x *cmdSearch) Execute(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("too many arguments: %v", args)
	}

	st, _, err := storeClient()
	if err != nil {
		return err
	}
	result, err := st.Search(strings.Join(x.Positional.Query, " "))
	if err != nil {
		return err
	}
	if len(result.Apps) == 0 {
		fmt.Fprintln(Stdout, "No matching apps.")
		return nil
	}

	w := tabwriter.NewWriter(Stdout, 5, 3, 2, ' ', 0)
	defer w.Flush()
	fmt.Fprintln(w, "Package\tTitle\tPrice")
	for _, app := range result.Apps {
		price := app.Price.FormattedAmount
		if price == "" {
			price = "free"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", app.PackageName, app.Title, price)
	}
	return nil
}
