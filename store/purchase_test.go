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

package store_test

import (
	"encoding/hex"
	"net/http"
	"net/url"

	. "gopkg.in/check.v1"

	"github.com/aurora-oss/gplay/playproto"
	"github.com/aurora-oss/gplay/store"
	"github.com/aurora-oss/gplay/testutil"
)

func (s *storeSuite) TestPurchaseFlow(c *C) {
	s.makeReady()

	var buyForm url.Values
	var deliveryQuery url.Values
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/fdfe/purchase":
			c.Check(r.Method, Equals, "POST")
			c.Check(r.Header.Get("Authorization"), Equals, "GoogleLogin auth=play-tok-1")
			c.Assert(r.ParseForm(), IsNil)
			buyForm = r.PostForm
			respondPayload(w, &playproto.Payload{
				BuyResponse: &playproto.BuyResponse{EncodedDeliveryToken: "dtok1"},
			})
		case "/fdfe/delivery":
			c.Check(r.Method, Equals, "GET")
			deliveryQuery = r.URL.Query()
			respondPayload(w, &playproto.Payload{
				DeliveryResponse: &playproto.DeliveryResponse{
					Status: playproto.DeliveryStatusOK,
					AppDeliveryData: &playproto.AndroidAppDeliveryData{
						DownloadSize: 1000,
						DownloadURL:  "https://cdn/x.apk",
					},
				},
			})
		default:
			http.Error(w, "unexpected path "+r.URL.Path, 500)
		}
	}

	artifacts, err := s.store.Purchase("com.example.app", 42, 1)
	c.Assert(err, IsNil)

	c.Check(buyForm.Get("ot"), Equals, "1")
	c.Check(buyForm.Get("doc"), Equals, "com.example.app")
	c.Check(buyForm.Get("vc"), Equals, "42")

	// the delivery token from buy is forwarded
	c.Check(deliveryQuery.Get("dtok"), Equals, "dtok1")
	c.Check(deliveryQuery.Get("ot"), Equals, "1")
	c.Check(deliveryQuery.Get("doc"), Equals, "com.example.app")
	c.Check(deliveryQuery.Get("vc"), Equals, "42")

	c.Assert(artifacts, HasLen, 1)
	c.Check(artifacts[0], DeepEquals, &store.Artifact{
		Name:    "com.example.app.apk",
		Type:    store.ArtifactBase,
		URL:     "https://cdn/x.apk",
		Size:    1000,
		Cookies: map[string]string{},
	})
}

func (s *storeSuite) TestPurchaseExpansionNamedAfterPurchasedVersion(c *C) {
	s.makeReady()

	s.handler = func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/fdfe/purchase":
			respondPayload(w, &playproto.Payload{
				BuyResponse: &playproto.BuyResponse{EncodedDeliveryToken: "dtok1"},
			})
		case "/fdfe/delivery":
			respondPayload(w, &playproto.Payload{
				DeliveryResponse: &playproto.DeliveryResponse{
					Status: playproto.DeliveryStatusOK,
					AppDeliveryData: &playproto.AndroidAppDeliveryData{
						DownloadURL: "https://cdn/x.apk",
						AdditionalFile: []*playproto.AppFileMetadata{
							// no version code of its own
							{FileType: 0, Size: 9000, DownloadURL: "https://cdn/main.obb"},
						},
					},
				},
			})
		default:
			http.Error(w, "unexpected path "+r.URL.Path, 500)
		}
	}

	artifacts, err := s.store.Purchase("com.example.app", 42, 1)
	c.Assert(err, IsNil)
	c.Assert(artifacts, HasLen, 2)
	c.Check(artifacts[1].Name, Equals, "main.42.com.example.app.obb")
}

func (s *storeSuite) TestPurchaseEmptyDeliveryToken(c *C) {
	s.makeReady()

	s.handler = func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/fdfe/purchase":
			respondPayload(w, &playproto.Payload{
				BuyResponse: &playproto.BuyResponse{},
			})
		case "/fdfe/delivery":
			// an empty token is valid and must not be forwarded
			_, hasDtok := r.URL.Query()["dtok"]
			c.Check(hasDtok, Equals, false)
			respondPayload(w, &playproto.Payload{
				DeliveryResponse: &playproto.DeliveryResponse{
					Status: playproto.DeliveryStatusOK,
					AppDeliveryData: &playproto.AndroidAppDeliveryData{
						DownloadURL: "https://cdn/x.apk",
					},
				},
			})
		default:
			http.Error(w, "unexpected path "+r.URL.Path, 500)
		}
	}

	artifacts, err := s.store.Purchase("com.example.app", 42, 1)
	c.Assert(err, IsNil)
	c.Assert(artifacts, HasLen, 1)
}

func (s *storeSuite) TestPurchaseSessionNotReady(c *C) {
	_, err := s.store.Purchase("com.example.app", 42, 1)
	c.Assert(err, ErrorMatches, "session is not ready for purchase: .*")
}

func (s *storeSuite) deliveryWithStatus(status int) {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/fdfe/purchase":
			respondPayload(w, &playproto.Payload{
				BuyResponse: &playproto.BuyResponse{EncodedDeliveryToken: "dtok1"},
			})
		case "/fdfe/delivery":
			respondPayload(w, &playproto.Payload{
				DeliveryResponse: &playproto.DeliveryResponse{Status: status},
			})
		default:
			http.Error(w, "unexpected path "+r.URL.Path, 500)
		}
	}
}

func (s *storeSuite) TestPurchaseNotSupported(c *C) {
	s.makeReady()
	s.deliveryWithStatus(playproto.DeliveryStatusNotSupported)
	_, err := s.store.Purchase("com.example.app", 42, 1)
	c.Assert(err, testutil.ErrorIs, store.ErrAppNotSupported)
}

func (s *storeSuite) TestPurchaseNotPurchased(c *C) {
	s.makeReady()
	s.deliveryWithStatus(playproto.DeliveryStatusNotPurchased)
	_, err := s.store.Purchase("com.example.app", 42, 1)
	c.Assert(err, testutil.ErrorIs, store.ErrAppNotPurchased)
}

func (s *storeSuite) TestPurchaseUnknownStatus(c *C) {
	s.makeReady()
	s.deliveryWithStatus(7)
	_, err := s.store.Purchase("com.example.app", 42, 1)
	deliveryErr, ok := err.(*store.DeliveryError)
	c.Assert(ok, Equals, true, Commentf("got %T: %v", err, err))
	c.Check(deliveryErr.Status, Equals, 7)
	c.Check(deliveryErr, ErrorMatches, "unexpected delivery status 7")
}

func (s *storeSuite) TestPurchaseEmptyDownloads(c *C) {
	s.makeReady()
	// delivery succeeds but describes nothing downloadable
	s.deliveryWithStatus(playproto.DeliveryStatusOK)
	_, err := s.store.Purchase("com.example.app", 42, 1)
	c.Assert(err, testutil.ErrorIs, store.ErrEmptyDownloads)
}

func (s *storeSuite) TestAssembleArtifacts(c *C) {
	data := &playproto.AndroidAppDeliveryData{
		DownloadSize: 5000,
		Sha256:       string([]byte{0xde, 0xad, 0xbe, 0xef}),
		DownloadURL:  "https://cdn/base.apk",
		DownloadAuthCookie: []*playproto.HTTPCookie{
			{Name: "MarketDA", Value: "cookie-1"},
		},
		AdditionalFile: []*playproto.AppFileMetadata{
			{FileType: 0, VersionCode: 41, Size: 9000, DownloadURL: "https://cdn/main.obb"},
			{FileType: 1, VersionCode: 42, Size: 100, DownloadURL: "https://cdn/patch.obb"},
		},
		SplitDeliveryData: []*playproto.SplitDeliveryData{
			{Name: "config.arm64_v8a", DownloadSize: 700, DownloadURL: "https://cdn/split.apk"},
		},
	}

	artifacts := store.AssembleArtifacts("com.example.app", 42, data)
	c.Assert(artifacts, HasLen, 4)

	c.Check(artifacts[0].Name, Equals, "com.example.app.apk")
	c.Check(artifacts[0].Type, Equals, store.ArtifactBase)
	c.Check(artifacts[0].Sha256, Equals, hex.EncodeToString([]byte{0xde, 0xad, 0xbe, 0xef}))
	c.Check(artifacts[0].Cookies, DeepEquals, map[string]string{"MarketDA": "cookie-1"})

	// expansion file names carry the purchased version code, not the
	// (often older) one the file descriptor reports for itself
	c.Check(artifacts[1].Name, Equals, "main.42.com.example.app.obb")
	c.Check(artifacts[1].Type, Equals, store.ArtifactExpansion)
	c.Check(artifacts[2].Name, Equals, "patch.42.com.example.app.obb")
	c.Check(artifacts[2].Type, Equals, store.ArtifactPatch)

	c.Check(artifacts[3].Name, Equals, "config.arm64_v8a.apk")
	c.Check(artifacts[3].Type, Equals, store.ArtifactSplit)
	c.Check(artifacts[3].Size, Equals, int64(700))
}

func (s *storeSuite) TestAssembleArtifactsSkipsURLLess(c *C) {
	data := &playproto.AndroidAppDeliveryData{
		AdditionalFile: []*playproto.AppFileMetadata{
			{FileType: 0, VersionCode: 41, Size: 9000},
		},
		SplitDeliveryData: []*playproto.SplitDeliveryData{
			{Name: "config.en"},
		},
	}
	c.Check(store.AssembleArtifacts("com.example.app", 41, data), HasLen, 0)
	c.Check(store.AssembleArtifacts("com.example.app", 41, nil), HasLen, 0)
}
