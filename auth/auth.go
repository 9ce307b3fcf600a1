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

// Package auth holds the per-account session state accumulated over
// the device handshake and token exchanges. A Session is a plain
// value; it carries no transport and performs no network calls.
package auth

import (
	"fmt"

	"github.com/aurora-oss/gplay/deviceinfo"
)

// Service identifies a scoped token obtainable from the token-exchange
// endpoint. Each service has a fixed request shape.
type Service string

const (
	AC2DM              Service = "ac2dm"
	Android            Service = "android"
	AndroidCheckin     Service = "android-checkin"
	ExperimentalConfig Service = "experimental-config"
	GCM                Service = "gcm"
	Play               Service = "play"
	Numberer           Service = "numberer"
	OAuthLogin         Service = "oauthlogin"
)

// Services lists every known token service.
var Services = []Service{
	AC2DM, Android, AndroidCheckin, ExperimentalConfig,
	GCM, Play, Numberer, OAuthLogin,
}

// Session aggregates the credentials and device identity needed to
// talk to the store on behalf of one account on one device.
type Session struct {
	Email    string
	AASToken string

	// GsfID is the device identity from check-in, lowercase hex.
	GsfID string
	// CheckinConsistencyToken comes with the check-in response and
	// is echoed on subsequent calls.
	CheckinConsistencyToken string
	// DeviceConfigToken is issued after the capability upload.
	DeviceConfigToken string

	// Cookie is the session cookie from the terms-of-service
	// document, when the server set one.
	Cookie string

	Locale string
	Device *deviceinfo.Profile

	tokens map[Service]string
}

// NewSession creates a session for the given account credentials and
// device profile.
func NewSession(email, aasToken string, device *deviceinfo.Profile, locale string) *Session {
	if locale == "" {
		locale = "en_US"
	}
	return &Session{
		Email:    email,
		AASToken: aasToken,
		Locale:   locale,
		Device:   device,
		tokens:   make(map[Service]string),
	}
}

// SetToken records a scoped token. Setting the same token again is a
// no-op; setting a different one replaces it.
func (s *Session) SetToken(service Service, token string) {
	if s.tokens == nil {
		s.tokens = make(map[Service]string)
	}
	s.tokens[service] = token
}

// Token returns the recorded token for service, or "".
func (s *Session) Token(service Service) string {
	return s.tokens[service]
}

// HasToken reports whether a token for service was recorded.
func (s *Session) HasToken(service Service) bool {
	_, ok := s.tokens[service]
	return ok
}

// SetDeviceIdentity records the outcome of a device check-in.
func (s *Session) SetDeviceIdentity(gsfID, consistencyToken string) {
	s.GsfID = gsfID
	s.CheckinConsistencyToken = consistencyToken
}

// ReadyForPurchase reports whether the session carries everything the
// purchase and delivery endpoints require. Catalog browsing has weaker
// needs and is not gated on this.
func (s *Session) ReadyForPurchase() error {
	if s.GsfID == "" {
		return fmt.Errorf("session is not ready for purchase: device check-in not performed")
	}
	if s.DeviceConfigToken == "" {
		return fmt.Errorf("session is not ready for purchase: device configuration not uploaded")
	}
	if s.Token(Play) == "" {
		return fmt.Errorf("session is not ready for purchase: no play token")
	}
	return nil
}
