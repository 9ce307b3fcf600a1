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

// Command gplay is a thin command line front end to the store client:
// it authenticates an account, inspects the catalog and downloads
// purchased packages.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"

	"github.com/aurora-oss/gplay/httputil"
	"github.com/aurora-oss/gplay/logger"
)

var version = "unknown"

// overridden in tests
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

type options struct {
	SessionPath string `long:"session" description:"Path of the session file" default:""`
	Device      string `long:"device" description:"Built-in device profile to impersonate" default:"px_3a"`
	Locale      string `long:"locale" description:"Locale sent to the store" default:"en_US"`
}

var opts options

var parser = flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)

type cmdInfo struct {
	name, shortHelp, longHelp string
	builder                   func() flags.Commander
}

var commands []*cmdInfo

func addCommand(name, shortHelp, longHelp string, builder func() flags.Commander) *cmdInfo {
	info := &cmdInfo{name: name, shortHelp: shortHelp, longHelp: longHelp, builder: builder}
	commands = append(commands, info)
	return info
}

func defaultSessionPath() string {
	if opts.SessionPath != "" {
		return opts.SessionPath
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "gplay-session.yaml"
	}
	return filepath.Join(home, ".config", "gplay", "session.yaml")
}

func run(args []string) error {
	for _, info := range commands {
		if _, err := parser.AddCommand(info.name, info.shortHelp, info.longHelp, info.builder()); err != nil {
			return fmt.Errorf("cannot add command %q: %v", info.name, err)
		}
	}
	_, err := parser.ParseArgs(args)
	return err
}

func main() {
	httputil.SetUserAgentFromVersion(version)
	if err := logger.SimpleSetup(); err != nil {
		fmt.Fprintf(os.Stderr, "cannot set up logging: %v\n", err)
	}

	if err := run(os.Args[1:]); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stdout)
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
