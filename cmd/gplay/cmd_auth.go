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

	"github.com/aurora-oss/gplay/auth"
	"github.com/aurora-oss/gplay/deviceinfo"
	"github.com/aurora-oss/gplay/store"
)

type cmdAuth struct {
	Positional struct {
		Email    string `positional-arg-name:"<email>" required:"true"`
		AASToken string `positional-arg-name:"<aas-token>" required:"true"`
	} `positional-args:"true"`
}

func init() {
	addCommand("auth",
		"Authenticate an account and provision the device",
		"The auth command checks the device in, exchanges the account token for service tokens and stores the resulting session.",
		func() flags.Commander { return &cmdAuth{} })
}

func (x *cmdAuth) Execute(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("too many arguments: %v", args)
	}

	device, err := deviceinfo.ReadProfile(opts.Device)
	if err != nil {
		return err
	}
	session := auth.NewSession(x.Positional.Email, x.Positional.AASToken, device, opts.Locale)

	st := store.New(nil, nil, session)
	if err := st.Bootstrap(); err != nil {
		return err
	}
	if err := saveSession(session, opts.Device); err != nil {
		return err
	}
	fmt.Fprintf(Stdout, "Authenticated %s as device %s.\n", session.Email, session.GsfID)
	return nil
}
