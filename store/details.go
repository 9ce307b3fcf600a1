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

	"github.com/aurora-oss/gplay/playproto"
)

// AppDetails fetches the catalog record of one package. A package the
// store does not know yields ErrAppNotFound.
func (s *Store) AppDetails(packageName string) (*App, error) {
	params := map[string]string{"doc": packageName}
	payload, err := s.getPayload(detailsEndpoint, params, playproto.KindDetails)
	if err != nil {
		return nil, err
	}
	app := appFromItem(payload.DetailsResponse.Item)
	if app == nil {
		return nil, ErrAppNotFound
	}
	return app, nil
}

// BulkDetails fetches the catalog records of several packages in one
// round-trip. The result preserves request order; packages the store
// does not know come back as nil entries rather than failing the whole
// call.
func (s *Store) BulkDetails(packageNames []string) ([]*App, error) {
	req := playproto.BulkDetailsRequest{
		DocID:            packageNames,
		IncludeChildDocs: false,
	}
	payload, err := s.postPayloadBytes(bulkDetailsEndpoint, req.Marshal(), playproto.KindBulkDetails)
	if err != nil {
		return nil, err
	}
	entries := payload.BulkDetailsResponse.Entry
	if len(entries) != len(packageNames) {
		return nil, fmt.Errorf("cannot decode bulk details: got %d entries for %d packages", len(entries), len(packageNames))
	}
	apps := make([]*App, len(entries))
	for i, e := range entries {
		if e != nil {
			apps[i] = appFromItem(e.Item)
		}
	}
	return apps, nil
}
