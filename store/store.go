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

// Package store implements the client side of the binary store
// protocol: device handshake, token exchange, catalog access, purchase
// and delivery, and artifact download.
package store

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/aurora-oss/gplay/auth"
	"github.com/aurora-oss/gplay/httputil"
	"github.com/aurora-oss/gplay/playproto"
)

const (
	checkinEndpoint = "checkin"
	authEndpoint    = "auth"

	tocEndpoint                = "fdfe/toc"
	acceptTosEndpoint          = "fdfe/acceptTos"
	uploadDeviceConfigEndpoint = "fdfe/uploadDeviceConfig"
	purchaseEndpoint           = "fdfe/purchase"
	deliveryEndpoint           = "fdfe/delivery"
	detailsEndpoint            = "fdfe/details"
	bulkDetailsEndpoint        = "fdfe/bulkDetails"
	searchEndpoint             = "fdfe/search"
	searchSuggestEndpoint      = "fdfe/searchSuggest"
	categoriesEndpoint         = "fdfe/categoriesList"
	userProfileEndpoint        = "fdfe/api/userProfile"
	reviewsEndpoint            = "fdfe/rev"
	addReviewEndpoint          = "fdfe/addReview"
	topChartsEndpoint          = "fdfe/topChartsStream"
	homeEndpoint               = "fdfe/homeV2"
	libraryEndpoint            = "fdfe/library"
	modifyLibraryEndpoint      = "fdfe/modifyLibrary"
	purchaseHistoryEndpoint    = "fdfe/purchaseHistory"
	contentSyncEndpoint        = "fdfe/apps/contentSync"
)

var defaultBaseURL *url.URL

func init() {
	var err error
	defaultBaseURL, err = url.Parse("https://android.clients.google.com")
	if err != nil {
		panic(err)
	}
}

// Config holds the server endpoints the store client talks to.
type Config struct {
	// BaseURL is the root of the store API; all endpoints hang off it.
	BaseURL *url.URL
}

// DefaultConfig returns the production endpoints.
func DefaultConfig() *Config {
	return &Config{BaseURL: defaultBaseURL}
}

// Store talks to one store server on behalf of one session. It holds no
// global state; transport and session are explicit collaborators.
type Store struct {
	cfg     *Config
	client  httputil.Client
	session *auth.Session
}

// New creates a store client. A nil cfg means production endpoints; a
// nil client means a default HTTP client.
func New(cfg *Config, client httputil.Client, session *auth.Session) *Store {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if client == nil {
		client = httputil.NewDefaultClient(nil)
	}
	return &Store{cfg: cfg, client: client, session: session}
}

// Session returns the session this client operates on.
func (s *Store) Session() *auth.Session {
	return s.session
}

func (s *Store) endpointURL(endpoint string) string {
	return strings.TrimSuffix(s.cfg.BaseURL.String(), "/") + "/" + endpoint
}

// absoluteURL resolves a server-issued relative cursor such as a
// next-page URL against the API base.
func (s *Store) absoluteURL(ref string) string {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	return s.endpointURL("fdfe/" + strings.TrimPrefix(ref, "/"))
}

// authedHeaders builds the header set of authenticated protocol calls.
func (s *Store) authedHeaders() map[string]string {
	headers := map[string]string{
		"Accept-Language":    strings.Replace(s.session.Locale, "_", "-", 1),
		"X-DFE-Client-Id":    "am-android-google",
		"X-DFE-Network-Type": "4",
	}
	if s.session.Device != nil {
		headers["User-Agent"] = s.session.Device.UserAgent()
		if mccmnc := s.session.Device.CellOperator + s.session.Device.SimOperator; mccmnc != "" {
			headers["X-DFE-MCCMNC"] = mccmnc
		}
	}
	if tok := s.session.Token(auth.Play); tok != "" {
		headers["Authorization"] = "GoogleLogin auth=" + tok
	}
	if s.session.GsfID != "" {
		headers["X-DFE-Device-Id"] = s.session.GsfID
	}
	if s.session.DeviceConfigToken != "" {
		headers["X-DFE-Device-Config-Token"] = s.session.DeviceConfigToken
	}
	if s.session.CheckinConsistencyToken != "" {
		headers["X-DFE-Device-Checkin-Consistency-Token"] = s.session.CheckinConsistencyToken
	}
	if s.session.Cookie != "" {
		headers["X-DFE-Cookie"] = s.session.Cookie
	}
	return headers
}

// statusError maps a non-success HTTP response to the error taxonomy.
func statusError(resp *httputil.Response) error {
	switch {
	case resp.StatusCode == 401 || resp.StatusCode == 403:
		reason := resp.ErrorText
		if reason == "" {
			reason = fmt.Sprintf("server rejected credentials (%d)", resp.StatusCode)
		}
		return &AuthError{Reason: reason}
	case resp.StatusCode == 404:
		return ErrAppNotFound
	default:
		return &ServerError{StatusCode: resp.StatusCode, Message: resp.ErrorText}
	}
}

// decodePayload turns a raw protocol response into the payload of the
// expected kind, honoring the prefetch fallback and surfacing server
// directives as errors.
func (s *Store) decodePayload(resp *httputil.Response, kind playproto.Kind) (*playproto.Payload, error) {
	if !resp.OK {
		return nil, statusError(resp)
	}
	wrapper, err := playproto.DecodeResponseWrapper(resp.Body)
	if err != nil {
		return nil, err
	}
	if wrapper.Commands != nil && wrapper.Commands.DisplayErrorMessage != "" {
		return nil, fmt.Errorf("store refused request: %s", wrapper.Commands.DisplayErrorMessage)
	}
	payload := wrapper.PreferredPayload(kind)
	if payload.Kind() != kind {
		return nil, fmt.Errorf("cannot decode store response: no payload of the expected kind")
	}
	return payload, nil
}

func (s *Store) getPayload(endpoint string, params map[string]string, kind playproto.Kind) (*playproto.Payload, error) {
	u := s.endpointURL(endpoint)
	resp, err := s.client.Get(u, s.authedHeaders(), params)
	if err != nil {
		return nil, &TransportError{URL: u, Err: err}
	}
	return s.decodePayload(resp, kind)
}

// getPayloadURL is getPayload for a server-issued cursor that already
// encodes its own query.
func (s *Store) getPayloadURL(rawurl string, kind playproto.Kind) (*playproto.Payload, error) {
	u := s.absoluteURL(rawurl)
	resp, err := s.client.GetWithQuery(u, s.authedHeaders(), "")
	if err != nil {
		return nil, &TransportError{URL: u, Err: err}
	}
	return s.decodePayload(resp, kind)
}

func (s *Store) postPayload(endpoint string, params map[string]string, kind playproto.Kind) (*playproto.Payload, error) {
	u := s.endpointURL(endpoint)
	resp, err := s.client.Post(u, s.authedHeaders(), params)
	if err != nil {
		return nil, &TransportError{URL: u, Err: err}
	}
	return s.decodePayload(resp, kind)
}

func (s *Store) postPayloadBytes(endpoint string, body []byte, kind playproto.Kind) (*playproto.Payload, error) {
	u := s.endpointURL(endpoint)
	resp, err := s.client.PostBytes(u, s.authedHeaders(), body)
	if err != nil {
		return nil, &TransportError{URL: u, Err: err}
	}
	return s.decodePayload(resp, kind)
}
