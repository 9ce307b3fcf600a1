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

	"github.com/aurora-oss/gplay/playproto"
)

// wishlistLibraryID is the user library holding wishlisted packages.
const wishlistLibraryID = "u-wl"

// WishlistApps lists the apps on the account's wishlist.
func (s *Store) WishlistApps() ([]*App, error) {
	params := map[string]string{
		"c":     "0",
		"dt":    "7",
		"libid": wishlistLibraryID,
	}
	payload, err := s.getPayload(libraryEndpoint, params, playproto.KindList)
	if err != nil {
		return nil, err
	}
	var apps []*App
	for _, it := range payload.ListResponse.Item {
		if it == nil {
			continue
		}
		apps = append(apps, appsFromItems(it.SubItem)...)
	}
	return apps, nil
}

// SetWishlisted adds the package to or removes it from the wishlist.
func (s *Store) SetWishlisted(packageName string, wishlisted bool) error {
	req := playproto.ModifyLibraryRequest{LibraryID: wishlistLibraryID}
	if wishlisted {
		req.AddPackageName = []string{packageName}
	} else {
		req.RemovePackageName = []string{packageName}
	}

	u := s.endpointURL(modifyLibraryEndpoint)
	resp, err := s.client.PostBytes(u, s.authedHeaders(), req.Marshal())
	if err != nil {
		return &TransportError{URL: u, Err: err}
	}
	if !resp.OK {
		return fmt.Errorf("cannot modify wishlist for %q: %v", packageName, statusError(resp))
	}
	return nil
}

// PurchaseHistory lists past purchases of the account, offset into the
// history for pagination. Entries annotated with a purchase status
// (refunded or cancelled ones) are left out.
func (s *Store) PurchaseHistory(offset int) ([]*App, error) {
	params := map[string]string{"o": strconv.Itoa(offset)}
	payload, err := s.getPayload(purchaseHistoryEndpoint, params, playproto.KindList)
	if err != nil {
		return nil, err
	}
	var apps []*App
	for _, it := range payload.ListResponse.Item {
		if it == nil {
			continue
		}
		if a := it.Annotations; a != nil && a.PurchaseHistoryDetails != nil && a.PurchaseHistoryDetails.PurchaseStatus != "" {
			continue
		}
		apps = append(apps, appsFromItems(it.SubItem)...)
	}
	return apps, nil
}
