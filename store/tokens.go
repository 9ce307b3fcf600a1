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
	"strings"

	"github.com/aurora-oss/gplay/auth"
)

// callerSignature is the SHA-1 of the vending package's published
// signing certificate; the exchange endpoint validates it against the
// package named in callerPkg, so both must describe the real client.
const callerSignature = "38918a453d07199354f8b19af05ec6562ced5788"

const vendingPackage = "com.android.vending"

// tokenShapes is the per-service request shaping table. Values merge
// over the base parameter set; an empty value removes the parameter.
var tokenShapes = map[auth.Service]map[string]string{
	auth.AC2DM: {
		"service": "ac2dm",
		"app":     "",
	},
	auth.Android: {
		"service": "android",
	},
	auth.AndroidCheckin: {
		"service":           "AndroidCheckInServer",
		"app":               "com.google.android.gms",
		"oauth2_foreground": "0",
	},
	auth.ExperimentalConfig: {
		"service": "oauth2:https://www.googleapis.com/auth/experimentsandconfigs",
	},
	auth.GCM: {
		"service": "oauth2:https://www.googleapis.com/auth/gcm",
		"app":     "com.google.android.gms",
	},
	auth.Play: {
		"service": "oauth2:https://www.googleapis.com/auth/googleplay",
	},
	auth.Numberer: {
		"service": "oauth2:https://www.googleapis.com/auth/numberer",
		"app":     "com.google.android.gms",
	},
	auth.OAuthLogin: {
		"service":           "oauth2:https://www.google.com/accounts/OAuthLogin",
		"app":               "com.google.android.googlequicksearchbox",
		"callerPkg":         "com.google.android.googlequicksearchbox",
		"oauth2_foreground": "0",
	},
}

// tokenHeaderShapes lists per-service header additions on top of the
// base exchange headers.
var tokenHeaderShapes = map[auth.Service]map[string]string{
	auth.Play: {
		"app": "com.google.android.gms",
	},
}

func (s *Store) baseTokenParams() map[string]string {
	params := map[string]string{
		"androidId":                           s.session.GsfID,
		"Email":                               s.session.Email,
		"Token":                               s.session.AASToken,
		"app":                                 vendingPackage,
		"callerPkg":                           vendingPackage,
		"callerSig":                           callerSignature,
		"lang":                                s.session.Locale,
		"token_request_options":               "CAA4AVAB",
		"system_partition":                    "1",
		"_opt_is_called_from_account_manager": "1",
		"is_called_from_account_manager":      "1",
	}
	if s.session.Device != nil {
		params["sdk_version"] = strconv.Itoa(s.session.Device.SdkVersion)
		params["device_country"] = strings.ToLower(localeCountry(s.session.Locale))
		params["google_play_services_version"] = strconv.Itoa(s.session.Device.GsfVersion)
	}
	return params
}

func (s *Store) baseTokenHeaders() map[string]string {
	headers := map[string]string{
		"app": vendingPackage,
	}
	if s.session.GsfID != "" {
		headers["device"] = s.session.GsfID
	}
	if s.session.Device != nil {
		headers["User-Agent"] = s.session.Device.AuthUserAgent()
	}
	return headers
}

func localeCountry(locale string) string {
	if i := strings.IndexAny(locale, "_-"); i >= 0 && i+1 < len(locale) {
		return locale[i+1:]
	}
	return locale
}

// parseKeyValues parses the flat Key=Value response blocks of the
// exchange endpoint. Lines without "=" are ignored.
func parseKeyValues(body []byte) map[string]string {
	kv := make(map[string]string)
	for _, line := range strings.Split(string(body), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		kv[key] = value
	}
	return kv
}

// ExchangeToken trades the long-lived account token for a scoped
// service token, shaping the request per the service table, and records
// the token on the session. A response without a token is an
// authentication failure even on HTTP success.
func (s *Store) ExchangeToken(service auth.Service) (string, error) {
	shape, ok := tokenShapes[service]
	if !ok {
		return "", fmt.Errorf("unknown token service %q", service)
	}

	params := s.baseTokenParams()
	for k, v := range shape {
		if v == "" {
			delete(params, k)
		} else {
			params[k] = v
		}
	}
	headers := s.baseTokenHeaders()
	for k, v := range tokenHeaderShapes[service] {
		headers[k] = v
	}

	kv, err := s.postTokenForm(params, headers)
	if err != nil {
		return "", err
	}
	token, ok := kv["Auth"]
	if !ok || token == "" {
		return "", &AuthError{Reason: fmt.Sprintf("no token granted for service %q", service)}
	}
	s.session.SetToken(service, token)
	return token, nil
}

// ExchangeAASToken trades a one-time OAuth web token for the long-lived
// account token the session is built on. This is the only exchange that
// answers under the "Token" key.
func (s *Store) ExchangeAASToken(oauthToken string) (string, error) {
	params := s.baseTokenParams()
	params["Token"] = oauthToken
	params["service"] = "ac2dm"
	params["add_account"] = "1"
	params["get_accountid"] = "1"
	params["ACCESS_TOKEN"] = "1"
	delete(params, "app")

	kv, err := s.postTokenForm(params, s.baseTokenHeaders())
	if err != nil {
		return "", err
	}
	token, ok := kv["Token"]
	if !ok || token == "" {
		return "", &AuthError{Reason: "no account token granted"}
	}
	s.session.AASToken = token
	return token, nil
}

func (s *Store) postTokenForm(params, headers map[string]string) (map[string]string, error) {
	u := s.endpointURL(authEndpoint)
	resp, err := s.client.Post(u, headers, params)
	if err != nil {
		return nil, &TransportError{URL: u, Err: err}
	}
	if !resp.OK {
		return nil, statusError(resp)
	}
	return parseKeyValues(resp.Body), nil
}
