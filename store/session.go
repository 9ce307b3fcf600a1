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

package store

import (
	"fmt"

	"github.com/aurora-oss/gplay/auth"
	"github.com/aurora-oss/gplay/logger"
	"github.com/aurora-oss/gplay/playproto"
)

// bootstrapServices are the token scopes acquired up front; the rest
// are exchanged on demand.
var bootstrapServices = []auth.Service{auth.AC2DM, auth.GCM, auth.Play}

// Bootstrap brings a fresh session to a purchase-ready state: device
// check-in, capability upload, the up-front token exchanges, and the
// terms-of-service round. It is idempotent; completed steps are
// skipped on a rerun.
func (s *Store) Bootstrap() error {
	if s.session.GsfID == "" {
		if err := s.CheckIn(); err != nil {
			return fmt.Errorf("cannot bootstrap session: %v", err)
		}
		logger.Debugf("checked in as device %s", s.session.GsfID)
	}
	if s.session.DeviceConfigToken == "" {
		if err := s.UploadDeviceConfig(); err != nil {
			return fmt.Errorf("cannot bootstrap session: %v", err)
		}
	}
	for _, service := range bootstrapServices {
		if s.session.HasToken(service) {
			continue
		}
		if _, err := s.ExchangeToken(service); err != nil {
			return fmt.Errorf("cannot bootstrap session: %v", err)
		}
	}
	if _, err := s.TermsOfService(); err != nil {
		return fmt.Errorf("cannot bootstrap session: %v", err)
	}
	return s.session.ReadyForPurchase()
}

// Profile describes the signed-in account as the server records it.
type Profile struct {
	Name     string
	Email    string
	ImageURL string
}

// UserProfile fetches the account profile of the session owner.
func (s *Store) UserProfile() (*Profile, error) {
	payload, err := s.getPayload(userProfileEndpoint, nil, playproto.KindUserProfile)
	if err != nil {
		return nil, err
	}
	up := payload.UserProfileResponse.UserProfile
	if up == nil {
		return nil, fmt.Errorf("cannot fetch user profile: server sent no profile")
	}
	profile := &Profile{Name: up.Name, Email: up.Email}
	if len(up.Image) > 0 && up.Image[0] != nil {
		profile.ImageURL = up.Image[0].URL
	}
	return profile, nil
}

// Validate probes whether the session's credentials are still accepted,
// without mutating any state. The content-sync endpoint answers cheaply
// and requires full authentication.
func (s *Store) Validate() error {
	u := s.endpointURL(contentSyncEndpoint)
	resp, err := s.client.Post(u, s.authedHeaders(), nil)
	if err != nil {
		return &TransportError{URL: u, Err: err}
	}
	if !resp.OK {
		return statusError(resp)
	}
	return nil
}
