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
	"io"
	"net/http"

	. "gopkg.in/check.v1"

	"github.com/aurora-oss/gplay/playproto"
)

func (s *storeSuite) TestWishlistApps(c *C) {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		c.Check(r.URL.Path, Equals, "/fdfe/library")
		c.Check(r.URL.Query().Get("libid"), Equals, "u-wl")
		c.Check(r.URL.Query().Get("dt"), Equals, "7")
		respondPayload(w, &playproto.Payload{
			ListResponse: &playproto.ListResponse{
				Item: []*playproto.Item{{
					SubItem: []*playproto.Item{
						{ID: "com.example.one", Title: "One"},
						{ID: "com.example.two", Title: "Two"},
					},
				}},
			},
		})
	}

	apps, err := s.store.WishlistApps()
	c.Assert(err, IsNil)
	c.Assert(apps, HasLen, 2)
	c.Check(apps[0].PackageName, Equals, "com.example.one")
	c.Check(apps[1].PackageName, Equals, "com.example.two")
}

func (s *storeSuite) TestSetWishlisted(c *C) {
	var body []byte
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		c.Check(r.URL.Path, Equals, "/fdfe/modifyLibrary")
		c.Check(r.Method, Equals, "POST")
		c.Check(r.Header.Get("Content-Type"), Equals, "application/x-protobuf")
		var err error
		body, err = io.ReadAll(r.Body)
		c.Assert(err, IsNil)
		respondPayload(w, &playproto.Payload{})
	}

	c.Assert(s.store.SetWishlisted("com.example.app", true), IsNil)
	want := playproto.ModifyLibraryRequest{
		LibraryID:      "u-wl",
		AddPackageName: []string{"com.example.app"},
	}
	c.Check(body, DeepEquals, want.Marshal())

	c.Assert(s.store.SetWishlisted("com.example.app", false), IsNil)
	want = playproto.ModifyLibraryRequest{
		LibraryID:         "u-wl",
		RemovePackageName: []string{"com.example.app"},
	}
	c.Check(body, DeepEquals, want.Marshal())
}

func (s *storeSuite) TestSetWishlistedServerError(c *C) {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "library is closed", 500)
	}
	err := s.store.SetWishlisted("com.example.app", true)
	c.Assert(err, ErrorMatches, `cannot modify wishlist for "com.example.app": .*library is closed.*`)
}

func (s *storeSuite) TestPurchaseHistory(c *C) {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		c.Check(r.URL.Path, Equals, "/fdfe/purchaseHistory")
		c.Check(r.URL.Query().Get("o"), Equals, "20")
		respondPayload(w, &playproto.Payload{
			ListResponse: &playproto.ListResponse{
				Item: []*playproto.Item{
					{
						// refunded entries are annotated and skipped
						Annotations: &playproto.Annotations{
							PurchaseHistoryDetails: &playproto.PurchaseHistoryDetails{PurchaseStatus: "Refunded"},
						},
						SubItem: []*playproto.Item{
							{ID: "com.example.refunded", Title: "Refunded"},
						},
					},
					{
						SubItem: []*playproto.Item{
							{ID: "com.example.kept", Title: "Kept"},
						},
					},
				},
			},
		})
	}

	apps, err := s.store.PurchaseHistory(20)
	c.Assert(err, IsNil)
	c.Assert(apps, HasLen, 1)
	c.Check(apps[0].PackageName, Equals, "com.example.kept")
}
