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

package playproto

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// TocResponse carries the session terms-of-service gate. When both
// TosContent and TosToken are set the client must issue an explicit
// acceptance before the session is usable.
type TocResponse struct {
	TosContent                 string
	HomeURL                    string
	TosToken                   string
	RequiresUploadDeviceConfig bool
	Cookie                     string
}

// AcceptTosResponse acknowledges a terms acceptance.
type AcceptTosResponse struct {
	Token string
}

// UploadDeviceConfigRequest wraps the device configuration for upload.
type UploadDeviceConfigRequest struct {
	DeviceConfiguration *DeviceConfiguration
}

// UploadDeviceConfigResponse returns the token gating every later
// authenticated call.
type UploadDeviceConfigResponse struct {
	UploadDeviceConfigToken string
}

func (t *TocResponse) appendTo(b []byte) []byte {
	b = appendString(b, 3, t.TosContent)
	b = appendString(b, 4, t.HomeURL)
	b = appendString(b, 7, t.TosToken)
	b = appendBool(b, 11, t.RequiresUploadDeviceConfig)
	b = appendString(b, 12, t.Cookie)
	return b
}

func (t *TocResponse) unmarshal(b []byte) error {
	return unmarshalMessage("TocResponse", b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 3:
			return consumeString(b, num, typ, &t.TosContent)
		case 4:
			return consumeString(b, num, typ, &t.HomeURL)
		case 7:
			return consumeString(b, num, typ, &t.TosToken)
		case 11:
			return consumeBool(b, num, typ, &t.RequiresUploadDeviceConfig)
		case 12:
			return consumeString(b, num, typ, &t.Cookie)
		}
		return 0, nil
	})
}

func (a *AcceptTosResponse) appendTo(b []byte) []byte {
	b = appendString(b, 1, a.Token)
	return b
}

func (a *AcceptTosResponse) unmarshal(b []byte) error {
	return unmarshalMessage("AcceptTosResponse", b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return consumeString(b, num, typ, &a.Token)
		}
		return 0, nil
	})
}

// Marshal encodes the request for transmission.
func (r *UploadDeviceConfigRequest) Marshal() []byte { return r.appendTo(nil) }

func (r *UploadDeviceConfigRequest) appendTo(b []byte) []byte {
	if r.DeviceConfiguration != nil {
		b = appendMessage(b, 1, r.DeviceConfiguration.appendTo)
	}
	return b
}

func (r *UploadDeviceConfigRequest) unmarshal(b []byte) error {
	return unmarshalMessage("UploadDeviceConfigRequest", b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return consumeMessage(b, num, typ, func(v []byte) error {
				r.DeviceConfiguration = new(DeviceConfiguration)
				return r.DeviceConfiguration.unmarshal(v)
			})
		}
		return 0, nil
	})
}

func (r *UploadDeviceConfigResponse) appendTo(b []byte) []byte {
	b = appendString(b, 1, r.UploadDeviceConfigToken)
	return b
}

func (r *UploadDeviceConfigResponse) unmarshal(b []byte) error {
	return unmarshalMessage("UploadDeviceConfigResponse", b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return consumeString(b, num, typ, &r.UploadDeviceConfigToken)
		}
		return 0, nil
	})
}
