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

// AndroidCheckinRequest registers a device and obtains its durable
// numeric identity. It is posted directly, not wrapped in an envelope.
type AndroidCheckinRequest struct {
	ID                  int64
	Checkin             *AndroidCheckinProto
	Locale              string
	LoggingID           int64
	TimeZone            string
	Version             int
	DeviceConfiguration *DeviceConfiguration
	Fragment            int
}

// AndroidCheckinProto carries the build and carrier descriptors of the
// checking-in device.
type AndroidCheckinProto struct {
	Build           *AndroidBuildProto
	LastCheckinMsec int64
	CellOperator    string
	SimOperator     string
	Roaming         string
	UserNumber      int
}

// AndroidBuildProto describes the device build fingerprint.
type AndroidBuildProto struct {
	ID             string
	Product        string
	Carrier        string
	Radio          string
	Bootloader     string
	Client         string
	Timestamp      int64
	GoogleServices int
	Device         string
	SdkVersion     int
	Model          string
	Manufacturer   string
	BuildProduct   string
	OtaInstalled   bool
}

// AndroidCheckinResponse answers a check-in; AndroidID is the device's
// permanent identity for the credential that performed the check-in.
type AndroidCheckinResponse struct {
	StatsOK                       bool
	TimeMsec                      int64
	AndroidID                     uint64
	SecurityToken                 uint64
	DeviceCheckinConsistencyToken string
}

// DeviceConfiguration enumerates the hardware and software capabilities
// the store uses to filter deliverable packages.
type DeviceConfiguration struct {
	TouchScreen            int
	Keyboard               int
	Navigation             int
	ScreenLayout           int
	HasHardKeyboard        bool
	HasFiveWayNavigation   bool
	ScreenDensity          int
	GlEsVersion            int
	SystemSharedLibrary    []string
	SystemAvailableFeature []string
	NativePlatform         []string
	ScreenWidth            int
	ScreenHeight           int
	SystemSupportedLocale  []string
	GlExtension            []string
	DeviceClass            int
	MaxApkDownloadSizeMb   int
}

// Marshal encodes the request for transmission.
func (r *AndroidCheckinRequest) Marshal() []byte { return r.appendTo(nil) }

func (r *AndroidCheckinRequest) appendTo(b []byte) []byte {
	b = appendInt64(b, 2, r.ID)
	if r.Checkin != nil {
		b = appendMessage(b, 4, r.Checkin.appendTo)
	}
	b = appendString(b, 6, r.Locale)
	b = appendInt64(b, 7, r.LoggingID)
	b = appendString(b, 12, r.TimeZone)
	b = appendInt(b, 14, r.Version)
	if r.DeviceConfiguration != nil {
		b = appendMessage(b, 18, r.DeviceConfiguration.appendTo)
	}
	b = appendInt(b, 20, r.Fragment)
	return b
}

func (r *AndroidCheckinRequest) unmarshal(b []byte) error {
	return unmarshalMessage("AndroidCheckinRequest", b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 2:
			return consumeInt64(b, num, typ, &r.ID)
		case 4:
			return consumeMessage(b, num, typ, func(v []byte) error {
				r.Checkin = new(AndroidCheckinProto)
				return r.Checkin.unmarshal(v)
			})
		case 6:
			return consumeString(b, num, typ, &r.Locale)
		case 7:
			return consumeInt64(b, num, typ, &r.LoggingID)
		case 12:
			return consumeString(b, num, typ, &r.TimeZone)
		case 14:
			return consumeInt(b, num, typ, &r.Version)
		case 18:
			return consumeMessage(b, num, typ, func(v []byte) error {
				r.DeviceConfiguration = new(DeviceConfiguration)
				return r.DeviceConfiguration.unmarshal(v)
			})
		case 20:
			return consumeInt(b, num, typ, &r.Fragment)
		}
		return 0, nil
	})
}

func (p *AndroidCheckinProto) appendTo(b []byte) []byte {
	if p.Build != nil {
		b = appendMessage(b, 1, p.Build.appendTo)
	}
	b = appendInt64(b, 2, p.LastCheckinMsec)
	b = appendString(b, 6, p.CellOperator)
	b = appendString(b, 7, p.SimOperator)
	b = appendString(b, 8, p.Roaming)
	b = appendInt(b, 9, p.UserNumber)
	return b
}

func (p *AndroidCheckinProto) unmarshal(b []byte) error {
	return unmarshalMessage("AndroidCheckinProto", b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeMessage(b, num, typ, func(v []byte) error {
				p.Build = new(AndroidBuildProto)
				return p.Build.unmarshal(v)
			})
		case 2:
			return consumeInt64(b, num, typ, &p.LastCheckinMsec)
		case 6:
			return consumeString(b, num, typ, &p.CellOperator)
		case 7:
			return consumeString(b, num, typ, &p.SimOperator)
		case 8:
			return consumeString(b, num, typ, &p.Roaming)
		case 9:
			return consumeInt(b, num, typ, &p.UserNumber)
		}
		return 0, nil
	})
}

func (p *AndroidBuildProto) appendTo(b []byte) []byte {
	b = appendString(b, 1, p.ID)
	b = appendString(b, 2, p.Product)
	b = appendString(b, 3, p.Carrier)
	b = appendString(b, 4, p.Radio)
	b = appendString(b, 5, p.Bootloader)
	b = appendString(b, 6, p.Client)
	b = appendInt64(b, 7, p.Timestamp)
	b = appendInt(b, 8, p.GoogleServices)
	b = appendString(b, 9, p.Device)
	b = appendInt(b, 10, p.SdkVersion)
	b = appendString(b, 11, p.Model)
	b = appendString(b, 12, p.Manufacturer)
	b = appendString(b, 13, p.BuildProduct)
	b = appendBool(b, 14, p.OtaInstalled)
	return b
}

func (p *AndroidBuildProto) unmarshal(b []byte) error {
	return unmarshalMessage("AndroidBuildProto", b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(b, num, typ, &p.ID)
		case 2:
			return consumeString(b, num, typ, &p.Product)
		case 3:
			return consumeString(b, num, typ, &p.Carrier)
		case 4:
			return consumeString(b, num, typ, &p.Radio)
		case 5:
			return consumeString(b, num, typ, &p.Bootloader)
		case 6:
			return consumeString(b, num, typ, &p.Client)
		case 7:
			return consumeInt64(b, num, typ, &p.Timestamp)
		case 8:
			return consumeInt(b, num, typ, &p.GoogleServices)
		case 9:
			return consumeString(b, num, typ, &p.Device)
		case 10:
			return consumeInt(b, num, typ, &p.SdkVersion)
		case 11:
			return consumeString(b, num, typ, &p.Model)
		case 12:
			return consumeString(b, num, typ, &p.Manufacturer)
		case 13:
			return consumeString(b, num, typ, &p.BuildProduct)
		case 14:
			return consumeBool(b, num, typ, &p.OtaInstalled)
		}
		return 0, nil
	})
}

// DecodeCheckinResponse decodes a check-in response body. Check-in
// answers come back bare, outside the usual envelope.
func DecodeCheckinResponse(b []byte) (*AndroidCheckinResponse, error) {
	var r AndroidCheckinResponse
	if err := r.unmarshal(b); err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *AndroidCheckinResponse) Marshal() []byte { return r.appendTo(nil) }

func (r *AndroidCheckinResponse) appendTo(b []byte) []byte {
	b = appendBool(b, 1, r.StatsOK)
	b = appendInt64(b, 3, r.TimeMsec)
	b = appendFixed64(b, 7, r.AndroidID)
	b = appendFixed64(b, 8, r.SecurityToken)
	b = appendString(b, 12, r.DeviceCheckinConsistencyToken)
	return b
}

func (r *AndroidCheckinResponse) unmarshal(b []byte) error {
	return unmarshalMessage("AndroidCheckinResponse", b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeBool(b, num, typ, &r.StatsOK)
		case 3:
			return consumeInt64(b, num, typ, &r.TimeMsec)
		case 7:
			return consumeFixed64(b, num, typ, &r.AndroidID)
		case 8:
			return consumeFixed64(b, num, typ, &r.SecurityToken)
		case 12:
			return consumeString(b, num, typ, &r.DeviceCheckinConsistencyToken)
		}
		return 0, nil
	})
}

func (d *DeviceConfiguration) appendTo(b []byte) []byte {
	b = appendInt(b, 1, d.TouchScreen)
	b = appendInt(b, 2, d.Keyboard)
	b = appendInt(b, 3, d.Navigation)
	b = appendInt(b, 4, d.ScreenLayout)
	b = appendBool(b, 5, d.HasHardKeyboard)
	b = appendBool(b, 6, d.HasFiveWayNavigation)
	b = appendInt(b, 7, d.ScreenDensity)
	b = appendInt(b, 8, d.GlEsVersion)
	b = appendStrings(b, 9, d.SystemSharedLibrary)
	b = appendStrings(b, 10, d.SystemAvailableFeature)
	b = appendStrings(b, 11, d.NativePlatform)
	b = appendInt(b, 12, d.ScreenWidth)
	b = appendInt(b, 13, d.ScreenHeight)
	b = appendStrings(b, 14, d.SystemSupportedLocale)
	b = appendStrings(b, 15, d.GlExtension)
	b = appendInt(b, 16, d.DeviceClass)
	b = appendInt(b, 17, d.MaxApkDownloadSizeMb)
	return b
}

func (d *DeviceConfiguration) unmarshal(b []byte) error {
	return unmarshalMessage("DeviceConfiguration", b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeInt(b, num, typ, &d.TouchScreen)
		case 2:
			return consumeInt(b, num, typ, &d.Keyboard)
		case 3:
			return consumeInt(b, num, typ, &d.Navigation)
		case 4:
			return consumeInt(b, num, typ, &d.ScreenLayout)
		case 5:
			return consumeBool(b, num, typ, &d.HasHardKeyboard)
		case 6:
			return consumeBool(b, num, typ, &d.HasFiveWayNavigation)
		case 7:
			return consumeInt(b, num, typ, &d.ScreenDensity)
		case 8:
			return consumeInt(b, num, typ, &d.GlEsVersion)
		case 9:
			return consumeStrings(b, num, typ, &d.SystemSharedLibrary)
		case 10:
			return consumeStrings(b, num, typ, &d.SystemAvailableFeature)
		case 11:
			return consumeStrings(b, num, typ, &d.NativePlatform)
		case 12:
			return consumeInt(b, num, typ, &d.ScreenWidth)
		case 13:
			return consumeInt(b, num, typ, &d.ScreenHeight)
		case 14:
			return consumeStrings(b, num, typ, &d.SystemSupportedLocale)
		case 15:
			return consumeStrings(b, num, typ, &d.GlExtension)
		case 16:
			return consumeInt(b, num, typ, &d.DeviceClass)
		case 17:
			return consumeInt(b, num, typ, &d.MaxApkDownloadSizeMb)
		}
		return 0, nil
	})
}
