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
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"

	"github.com/aurora-oss/gplay/auth"
	"github.com/aurora-oss/gplay/deviceinfo"
	"github.com/aurora-oss/gplay/store"
)

// sessionFile is the on-disk form of a session; scoped tokens are
// persisted so reruns skip the exchanges they can.
type sessionFile struct {
	Email                   string            `yaml:"email"`
	AASToken                string            `yaml:"aas-token"`
	GsfID                   string            `yaml:"gsf-id,omitempty"`
	CheckinConsistencyToken string            `yaml:"checkin-consistency-token,omitempty"`
	DeviceConfigToken       string            `yaml:"device-config-token,omitempty"`
	Cookie                  string            `yaml:"cookie,omitempty"`
	Locale                  string            `yaml:"locale,omitempty"`
	Device                  string            `yaml:"device,omitempty"`
	Tokens                  map[string]string `yaml:"tokens,omitempty"`
}

func loadSession() (*auth.Session, string, error) {
	path := defaultSessionPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("cannot load session (run \"gplay auth\" first): %v", err)
	}
	var sf sessionFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, "", fmt.Errorf("cannot parse session file %s: %v", path, err)
	}

	deviceName := sf.Device
	if deviceName == "" {
		deviceName = opts.Device
	}
	device, err := deviceinfo.ReadProfile(deviceName)
	if err != nil {
		return nil, "", err
	}

	session := auth.NewSession(sf.Email, sf.AASToken, device, sf.Locale)
	session.SetDeviceIdentity(sf.GsfID, sf.CheckinConsistencyToken)
	session.DeviceConfigToken = sf.DeviceConfigToken
	session.Cookie = sf.Cookie
	for service, token := range sf.Tokens {
		session.SetToken(auth.Service(service), token)
	}
	return session, deviceName, nil
}

func saveSession(session *auth.Session, deviceName string) error {
	sf := sessionFile{
		Email:                   session.Email,
		AASToken:                session.AASToken,
		GsfID:                   session.GsfID,
		CheckinConsistencyToken: session.CheckinConsistencyToken,
		DeviceConfigToken:       session.DeviceConfigToken,
		Cookie:                  session.Cookie,
		Locale:                  session.Locale,
		Device:                  deviceName,
		Tokens:                  map[string]string{},
	}
	for _, service := range auth.Services {
		if token := session.Token(service); token != "" {
			sf.Tokens[string(service)] = token
		}
	}

	data, err := yaml.Marshal(&sf)
	if err != nil {
		return err
	}
	path := defaultSessionPath()
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// storeClient builds a store client for a persisted session.
func storeClient() (*store.Store, string, error) {
	session, deviceName, err := loadSession()
	if err != nil {
		return nil, "", err
	}
	return store.New(nil, nil, session), deviceName, nil
}
