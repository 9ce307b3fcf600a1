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
	"net/http"
	"net/url"

	. "gopkg.in/check.v1"

	"github.com/aurora-oss/gplay/auth"
	"github.com/aurora-oss/gplay/store"
)

func (s *storeSuite) TestExchangeTokenPlay(c *C) {
	s.session.SetDeviceIdentity("a1b2c3", "consistency-1")

	var gotPath string
	var gotForm url.Values
	var gotAppHeader, gotDeviceHeader string
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		c.Check(r.Method, Equals, "POST")
		c.Assert(r.ParseForm(), IsNil)
		gotForm = r.PostForm
		gotAppHeader = r.Header.Get("app")
		gotDeviceHeader = r.Header.Get("device")
		w.Write([]byte("issueAdvice=auto\nAuth=play-tok-1\n"))
	}

	token, err := s.store.ExchangeToken(auth.Play)
	c.Assert(err, IsNil)
	c.Check(token, Equals, "play-tok-1")
	c.Check(s.session.Token(auth.Play), Equals, "play-tok-1")

	c.Check(gotPath, Equals, "/auth")
	c.Check(gotForm.Get("service"), Equals, "oauth2:https://www.googleapis.com/auth/googleplay")
	c.Check(gotForm.Get("Email"), Equals, "user@example.com")
	c.Check(gotForm.Get("Token"), Equals, "aas-tok")
	c.Check(gotForm.Get("androidId"), Equals, "a1b2c3")
	c.Check(gotForm.Get("app"), Equals, "com.android.vending")
	c.Check(gotForm.Get("sdk_version"), Equals, "28")
	c.Check(gotForm.Get("device_country"), Equals, "us")
	// this service carries its app as a header too
	c.Check(gotAppHeader, Equals, "com.google.android.gms")
	c.Check(gotDeviceHeader, Equals, "a1b2c3")
}

func (s *storeSuite) TestExchangeTokenAC2DMDropsApp(c *C) {
	var gotForm url.Values
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		c.Assert(r.ParseForm(), IsNil)
		gotForm = r.PostForm
		w.Write([]byte("Auth=ac2dm-tok-1\n"))
	}

	token, err := s.store.ExchangeToken(auth.AC2DM)
	c.Assert(err, IsNil)
	c.Check(token, Equals, "ac2dm-tok-1")
	c.Check(gotForm.Get("service"), Equals, "ac2dm")
	_, hasApp := gotForm["app"]
	c.Check(hasApp, Equals, false)
}

func (s *storeSuite) TestExchangeTokenShapes(c *C) {
	// each service has a fixed request shape
	c.Check(store.TokenShape(auth.Android)["service"], Equals, "android")
	c.Check(store.TokenShape(auth.AndroidCheckin)["service"], Equals, "AndroidCheckInServer")
	c.Check(store.TokenShape(auth.AndroidCheckin)["oauth2_foreground"], Equals, "0")
	c.Check(store.TokenShape(auth.GCM)["service"], Equals, "oauth2:https://www.googleapis.com/auth/gcm")
	c.Check(store.TokenShape(auth.GCM)["app"], Equals, "com.google.android.gms")
	c.Check(store.TokenShape(auth.Numberer)["app"], Equals, "com.google.android.gms")
	c.Check(store.TokenShape(auth.ExperimentalConfig)["service"], Equals, "oauth2:https://www.googleapis.com/auth/experimentsandconfigs")
	c.Check(store.TokenShape(auth.OAuthLogin)["callerPkg"], Equals, "com.google.android.googlequicksearchbox")
}

func (s *storeSuite) TestExchangeTokenUnknownService(c *C) {
	_, err := s.store.ExchangeToken(auth.Service("sorcery"))
	c.Assert(err, ErrorMatches, `unknown token service "sorcery"`)
}

func (s *storeSuite) TestExchangeTokenMissingAuthKey(c *C) {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		// HTTP success, but no token in the block
		w.Write([]byte("Error=BadAuthentication\n"))
	}
	_, err := s.store.ExchangeToken(auth.Play)
	c.Assert(err, NotNil)
	authErr, ok := err.(*store.AuthError)
	c.Assert(ok, Equals, true, Commentf("got %T: %v", err, err))
	c.Check(authErr, ErrorMatches, `authentication failed: no token granted for service "play"`)
	c.Check(s.session.HasToken(auth.Play), Equals, false)
}

func (s *storeSuite) TestExchangeTokenForbidden(c *C) {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Error=BadAuthentication", 403)
	}
	_, err := s.store.ExchangeToken(auth.Play)
	c.Assert(err, NotNil)
	_, ok := err.(*store.AuthError)
	c.Check(ok, Equals, true, Commentf("got %T: %v", err, err))
}

func (s *storeSuite) TestExchangeAASToken(c *C) {
	var gotForm url.Values
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		c.Assert(r.ParseForm(), IsNil)
		gotForm = r.PostForm
		w.Write([]byte("Token=aas-tok-2\nEmail=user@example.com\n"))
	}

	token, err := s.store.ExchangeAASToken("oauth-web-tok")
	c.Assert(err, IsNil)
	c.Check(token, Equals, "aas-tok-2")
	c.Check(s.session.AASToken, Equals, "aas-tok-2")
	c.Check(gotForm.Get("Token"), Equals, "oauth-web-tok")
	c.Check(gotForm.Get("service"), Equals, "ac2dm")
	c.Check(gotForm.Get("add_account"), Equals, "1")
}

func (s *storeSuite) TestExchangeAASTokenMissing(c *C) {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Auth=not-the-right-key\n"))
	}
	_, err := s.store.ExchangeAASToken("oauth-web-tok")
	c.Assert(err, ErrorMatches, "authentication failed: no account token granted")
}

func (s *storeSuite) TestParseKeyValues(c *C) {
	kv := store.ParseKeyValues([]byte("Auth=abc=def\n\nToken=t1\nnoise\n  SID=x  \n"))
	c.Check(kv, DeepEquals, map[string]string{
		"Auth":  "abc=def",
		"Token": "t1",
		"SID":   "x",
	})
}

func (s *storeSuite) TestLocaleCountry(c *C) {
	c.Check(store.LocaleCountry("en_US"), Equals, "US")
	c.Check(store.LocaleCountry("pt-BR"), Equals, "BR")
	c.Check(store.LocaleCountry("de"), Equals, "de")
}
