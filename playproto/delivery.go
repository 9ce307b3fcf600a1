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

// Delivery status codes reported by the store.
const (
	DeliveryStatusOK           = 1
	DeliveryStatusNotSupported = 2
	DeliveryStatusNotPurchased = 3
)

// BuyResponse grants an entitlement. The delivery token may be empty;
// that is valid and just means there is nothing to forward.
type BuyResponse struct {
	EncodedDeliveryToken string
}

// DeliveryResponse is the delivery manifest: a status code plus, on
// success, the delivery data describing the downloadable artifacts.
type DeliveryResponse struct {
	Status          int
	AppDeliveryData *AndroidAppDeliveryData
}

// AndroidAppDeliveryData describes the base package download plus any
// additional files and split packages.
type AndroidAppDeliveryData struct {
	DownloadSize       int64
	Sha256             string
	DownloadURL        string
	AdditionalFile     []*AppFileMetadata
	DownloadAuthCookie []*HTTPCookie
	SplitDeliveryData  []*SplitDeliveryData
}

// AppFileMetadata is an additional file of a delivery: file type 0 is
// an expansion ("main") file, anything else a patch.
type AppFileMetadata struct {
	FileType    int
	VersionCode int
	Size        int64
	DownloadURL string
}

// HTTPCookie must be presented to the download CDN.
type HTTPCookie struct {
	Name  string
	Value string
}

// SplitDeliveryData describes one split package.
type SplitDeliveryData struct {
	Name         string
	DownloadSize int64
	Sha256       string
	DownloadURL  string
}

func (r *BuyResponse) appendTo(b []byte) []byte {
	b = appendString(b, 1, r.EncodedDeliveryToken)
	return b
}

func (r *BuyResponse) unmarshal(b []byte) error {
	return unmarshalMessage("BuyResponse", b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			return consumeString(b, num, typ, &r.EncodedDeliveryToken)
		}
		return 0, nil
	})
}

func (r *DeliveryResponse) appendTo(b []byte) []byte {
	b = appendInt(b, 1, r.Status)
	if r.AppDeliveryData != nil {
		b = appendMessage(b, 2, r.AppDeliveryData.appendTo)
	}
	return b
}

func (r *DeliveryResponse) unmarshal(b []byte) error {
	return unmarshalMessage("DeliveryResponse", b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeInt(b, num, typ, &r.Status)
		case 2:
			return consumeMessage(b, num, typ, func(v []byte) error {
				r.AppDeliveryData = new(AndroidAppDeliveryData)
				return r.AppDeliveryData.unmarshal(v)
			})
		}
		return 0, nil
	})
}

func (d *AndroidAppDeliveryData) appendTo(b []byte) []byte {
	b = appendInt64(b, 1, d.DownloadSize)
	b = appendString(b, 2, d.Sha256)
	b = appendString(b, 3, d.DownloadURL)
	for _, f := range d.AdditionalFile {
		b = appendMessage(b, 4, f.appendTo)
	}
	for _, c := range d.DownloadAuthCookie {
		b = appendMessage(b, 5, c.appendTo)
	}
	for _, s := range d.SplitDeliveryData {
		b = appendMessage(b, 15, s.appendTo)
	}
	return b
}

func (d *AndroidAppDeliveryData) unmarshal(b []byte) error {
	return unmarshalMessage("AndroidAppDeliveryData", b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeInt64(b, num, typ, &d.DownloadSize)
		case 2:
			return consumeString(b, num, typ, &d.Sha256)
		case 3:
			return consumeString(b, num, typ, &d.DownloadURL)
		case 4:
			return consumeMessage(b, num, typ, func(v []byte) error {
				f := new(AppFileMetadata)
				if err := f.unmarshal(v); err != nil {
					return err
				}
				d.AdditionalFile = append(d.AdditionalFile, f)
				return nil
			})
		case 5:
			return consumeMessage(b, num, typ, func(v []byte) error {
				c := new(HTTPCookie)
				if err := c.unmarshal(v); err != nil {
					return err
				}
				d.DownloadAuthCookie = append(d.DownloadAuthCookie, c)
				return nil
			})
		case 15:
			return consumeMessage(b, num, typ, func(v []byte) error {
				s := new(SplitDeliveryData)
				if err := s.unmarshal(v); err != nil {
					return err
				}
				d.SplitDeliveryData = append(d.SplitDeliveryData, s)
				return nil
			})
		}
		return 0, nil
	})
}

func (f *AppFileMetadata) appendTo(b []byte) []byte {
	b = appendInt(b, 1, f.FileType)
	b = appendInt(b, 2, f.VersionCode)
	b = appendInt64(b, 3, f.Size)
	b = appendString(b, 4, f.DownloadURL)
	return b
}

func (f *AppFileMetadata) unmarshal(b []byte) error {
	return unmarshalMessage("AppFileMetadata", b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeInt(b, num, typ, &f.FileType)
		case 2:
			return consumeInt(b, num, typ, &f.VersionCode)
		case 3:
			return consumeInt64(b, num, typ, &f.Size)
		case 4:
			return consumeString(b, num, typ, &f.DownloadURL)
		}
		return 0, nil
	})
}

func (c *HTTPCookie) appendTo(b []byte) []byte {
	b = appendString(b, 1, c.Name)
	b = appendString(b, 2, c.Value)
	return b
}

func (c *HTTPCookie) unmarshal(b []byte) error {
	return unmarshalMessage("HTTPCookie", b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(b, num, typ, &c.Name)
		case 2:
			return consumeString(b, num, typ, &c.Value)
		}
		return 0, nil
	})
}

func (s *SplitDeliveryData) appendTo(b []byte) []byte {
	b = appendString(b, 1, s.Name)
	b = appendInt64(b, 2, s.DownloadSize)
	b = appendString(b, 3, s.Sha256)
	b = appendString(b, 4, s.DownloadURL)
	return b
}

func (s *SplitDeliveryData) unmarshal(b []byte) error {
	return unmarshalMessage("SplitDeliveryData", b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(b, num, typ, &s.Name)
		case 2:
			return consumeInt64(b, num, typ, &s.DownloadSize)
		case 3:
			return consumeString(b, num, typ, &s.Sha256)
		case 4:
			return consumeString(b, num, typ, &s.DownloadURL)
		}
		return 0, nil
	})
}
