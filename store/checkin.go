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
	"strconv"
	"time"

	"github.com/aurora-oss/gplay/playproto"
)

var timeNow = time.Now

// CheckIn registers the device profile with the provisioning endpoint
// and records the issued device identity on the session. The identity
// is the check-in id rendered as lowercase hex; every later
// authenticated call carries it.
func (s *Store) CheckIn() error {
	if s.session.Device == nil {
		return fmt.Errorf("cannot check in: session has no device profile")
	}
	req := s.session.Device.CheckinRequest(s.session.Locale, timeNow().UnixMilli())

	u := s.endpointURL(checkinEndpoint)
	headers := map[string]string{
		"Content-Type": "application/x-protobuffer",
		"User-Agent":   s.session.Device.AuthUserAgent(),
		"Host":         s.cfg.BaseURL.Host,
	}
	resp, err := s.client.PostBytes(u, headers, req.Marshal())
	if err != nil {
		return &TransportError{URL: u, Err: err}
	}
	if !resp.OK {
		return statusError(resp)
	}
	checkin, err := playproto.DecodeCheckinResponse(resp.Body)
	if err != nil {
		return err
	}
	if checkin.AndroidID == 0 {
		return fmt.Errorf("cannot check in: server issued no device id")
	}

	gsfID := strconv.FormatUint(checkin.AndroidID, 16)
	s.session.SetDeviceIdentity(gsfID, checkin.DeviceCheckinConsistencyToken)
	return nil
}

// UploadDeviceConfig uploads the device capability descriptor and
// records the returned configuration token, completing the handshake.
// Requires a prior CheckIn.
func (s *Store) UploadDeviceConfig() error {
	if s.session.GsfID == "" {
		return fmt.Errorf("cannot upload device config: device check-in not performed")
	}
	req := playproto.UploadDeviceConfigRequest{
		DeviceConfiguration: s.session.Device.DeviceConfiguration(),
	}
	payload, err := s.postPayloadBytes(uploadDeviceConfigEndpoint, req.Marshal(), playproto.KindUploadDeviceConfig)
	if err != nil {
		return err
	}
	token := payload.UploadDeviceConfigResponse.UploadDeviceConfigToken
	if token == "" {
		return fmt.Errorf("cannot upload device config: server issued no config token")
	}
	s.session.DeviceConfigToken = token
	return nil
}
