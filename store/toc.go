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

// TermsOfService fetches the table-of-contents document, retains its
// session cookie, and performs the acceptance round when the server
// presents terms. It returns the fetched document.
func (s *Store) TermsOfService() (*playproto.TocResponse, error) {
	payload, err := s.getPayload(tocEndpoint, nil, playproto.KindToc)
	if err != nil {
		return nil, err
	}
	toc := payload.TocResponse

	if toc.Cookie != "" {
		s.session.Cookie = toc.Cookie
	}
	if toc.TosContent != "" && toc.TosToken != "" {
		if err := s.acceptTos(toc.TosToken); err != nil {
			return nil, err
		}
	}
	return toc, nil
}

// acceptTos acknowledges the presented terms. The store refuses most
// calls until this round has happened once per account and device.
func (s *Store) acceptTos(tosToken string) error {
	params := map[string]string{
		"tost":   tosToken,
		"toscme": "false",
	}
	if _, err := s.postPayload(acceptTosEndpoint, params, playproto.KindAcceptTos); err != nil {
		return fmt.Errorf("cannot accept terms of service: %v", err)
	}
	return nil
}
