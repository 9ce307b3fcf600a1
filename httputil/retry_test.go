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

package httputil_test

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"syscall"

	. "gopkg.in/check.v1"
	"gopkg.in/retry.v1"

	"github.com/aurora-oss/gplay/httputil"
)

type retrySuite struct {
	server  *httptest.Server
	handler func(w http.ResponseWriter, r *http.Request)
}

var _ = Suite(&retrySuite{})

var testRetryStrategy = retry.LimitCount(5, retry.Regular{Min: 5})

func (s *retrySuite) SetUpTest(c *C) {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.handler(w, r)
	}))
}

func (s *retrySuite) TearDownTest(c *C) {
	s.server.Close()
}

func (s *retrySuite) doGet() func() (*http.Response, error) {
	return func() (*http.Response, error) {
		return http.Get(s.server.URL)
	}
}

func (s *retrySuite) TestRetryRequestOnServerError(c *C) {
	var requests int
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		requests++
		if requests < 3 {
			http.Error(w, "hiccup", 503)
			return
		}
		w.Write([]byte("finally"))
	}

	var body string
	resp, err := httputil.RetryRequest(s.server.URL, s.doGet(), func(resp *http.Response) error {
		b, err := io.ReadAll(resp.Body)
		body = string(b)
		return err
	}, testRetryStrategy)
	c.Assert(err, IsNil)
	c.Check(resp.StatusCode, Equals, 200)
	c.Check(requests, Equals, 3)
	c.Check(body, Equals, "finally")
}

func (s *retrySuite) TestRetryRequestExhaustsAttempts(c *C) {
	var requests int
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		requests++
		http.Error(w, "still broken", 503)
	}

	var sawStatus int
	_, err := httputil.RetryRequest(s.server.URL, s.doGet(), func(resp *http.Response) error {
		sawStatus = resp.StatusCode
		return nil
	}, testRetryStrategy)
	c.Assert(err, IsNil)
	// the last response is handed to the reader once retries run out
	c.Check(sawStatus, Equals, 503)
	c.Check(requests, Equals, 5)
}

func (s *retrySuite) TestRetryRequestNoRetryOn4xx(c *C) {
	var requests int
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		requests++
		http.Error(w, "bad request", 400)
	}

	resp, err := httputil.RetryRequest(s.server.URL, s.doGet(), func(resp *http.Response) error {
		return nil
	}, testRetryStrategy)
	c.Assert(err, IsNil)
	c.Check(resp.StatusCode, Equals, 400)
	c.Check(requests, Equals, 1)
}

func (s *retrySuite) TestRetryRequestAbortsOnReaderError(c *C) {
	fatal := errors.New("unrecoverable")
	var requests int
	_, err := httputil.RetryRequest(s.server.URL, s.doGet(), func(resp *http.Response) error {
		requests++
		return fatal
	}, testRetryStrategy)
	c.Assert(err, Equals, fatal)
	c.Check(requests, Equals, 1)
}

func (s *retrySuite) TestRetryRequestRetriesRetryableReaderError(c *C) {
	var reads int
	_, err := httputil.RetryRequest(s.server.URL, s.doGet(), func(resp *http.Response) error {
		reads++
		if reads < 2 {
			return io.ErrUnexpectedEOF
		}
		return nil
	}, testRetryStrategy)
	c.Assert(err, IsNil)
	c.Check(reads, Equals, 2)
}

func (s *retrySuite) TestShouldRetryError(c *C) {
	c.Check(httputil.ShouldRetryError(io.EOF), Equals, true)
	c.Check(httputil.ShouldRetryError(io.ErrUnexpectedEOF), Equals, true)
	c.Check(httputil.ShouldRetryError(syscall.ECONNRESET), Equals, true)
	c.Check(httputil.ShouldRetryError(syscall.ECONNREFUSED), Equals, true)
	c.Check(httputil.ShouldRetryError(fmt.Errorf("some random failure")), Equals, false)
	c.Check(httputil.ShouldRetryError(nil), Equals, false)
}
