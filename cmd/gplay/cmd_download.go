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
	"path/filepath"

	"github.com/jessevdk/go-flags"
)

type cmdDownload struct {
	VersionCode int    `long:"version-code" description:"Version to download (0 means latest known)" default:"0"`
	OfferType   int    `long:"offer-type" default:"1" hidden:"true"`
	TargetDir   string `long:"target-dir" description:"Directory to download into" default:"."`

	Positional struct {
		Package string `positional-arg-name:"<package>" required:"true"`
	} `positional-args:"true"`
}

func init() {
	addCommand("download",
		"Purchase and download a package",
		"The download command acquires the entitlement for a package and downloads all its delivery artifacts.",
		func() flags.Commander { return &cmdDownload{} })
}

func (x *cmdDownload) Execute(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("too many arguments: %v", args)
	}

	st, deviceName, err := storeClient()
	if err != nil {
		return err
	}

	artifacts, err := st.Purchase(x.Positional.Package, x.VersionCode, x.OfferType)
	if err != nil {
		return err
	}
	// the handshake may have refreshed tokens along the way
	if err := saveSession(st.Session(), deviceName); err != nil {
		return err
	}

	for _, artifact := range artifacts {
		target := filepath.Join(x.TargetDir, artifact.Name)
		fmt.Fprintf(Stdout, "Downloading %s (%d bytes)...\n", artifact.Name, artifact.Size)
		if err := st.Download(artifact, target); err != nil {
			return err
		}
		fmt.Fprintf(Stdout, "Saved %s\n", target)
	}
	return nil
}
