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

// Package httputil provides the HTTP transport used to talk to the store.
// It knows nothing about the protocol itself; the protocol packages drive
// it through the Client interface and never look below a Response.
package httputil

import (
	"bytes"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Response is the uniform result of a transport round-trip. OK reflects
// a 2xx status; ErrorText carries the server-supplied body text when the
// status is not a success.
type Response struct {
	StatusCode int
	OK         bool
	Body       []byte
	ErrorText  string
}

// Client performs GET/POST round-trips for the protocol core. Params are
// sent as query parameters on GET and as a form body on POST. A returned
// error means the transport failed; a server-side failure comes back as a
// Response with OK false.
type Client interface {
	Get(rawurl string, headers map[string]string, params map[string]string) (*Response, error)
	GetWithQuery(rawurl string, headers map[string]string, rawQuery string) (*Response, error)
	Post(rawurl string, headers map[string]string, params map[string]string) (*Response, error)
	PostBytes(rawurl string, headers map[string]string, body []byte) (*Response, error)
}

// ClientOpts specifies options for the creation of an http.Client.
type ClientOpts struct {
	Timeout    time.Duration
	MayLogBody bool
}

// NewHTTPClient returns a new http.Client with a LoggedTransport and a
// Timeout.
func NewHTTPClient(opts *ClientOpts) *http.Client {
	if opts == nil {
		opts = &ClientOpts{}
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &http.Client{
		Transport: &LoggedTransport{
			Transport: http.DefaultTransport,
			Key:       "GPLAY_DEBUG_HTTP",
			body:      opts.MayLogBody,
		},
		Timeout: timeout,
	}
}

// DefaultClient is the stock Client implementation on top of net/http.
type DefaultClient struct {
	cli *http.Client
}

// NewDefaultClient returns a transport client with bounded timeouts for
// talking to a remote service we do not control.
func NewDefaultClient(opts *ClientOpts) *DefaultClient {
	return &DefaultClient{cli: NewHTTPClient(opts)}
}

func (d *DefaultClient) do(req *http.Request) (*Response, error) {
	resp, err := d.cli.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	r := &Response{
		StatusCode: resp.StatusCode,
		OK:         resp.StatusCode/100 == 2,
		Body:       body,
	}
	if !r.OK {
		r.ErrorText = strings.TrimSpace(string(body))
	}
	return r, nil
}

func (d *DefaultClient) get(rawurl string, headers map[string]string, rawQuery string) (*Response, error) {
	req, err := http.NewRequest("GET", rawurl, nil)
	if err != nil {
		return nil, err
	}
	if rawQuery != "" {
		req.URL.RawQuery = rawQuery
	}
	setHeaders(req, headers)
	return d.do(req)
}

// Get performs a GET with the given headers and query parameters.
func (d *DefaultClient) Get(rawurl string, headers map[string]string, params map[string]string) (*Response, error) {
	return d.get(rawurl, headers, encodeParams(params))
}

// GetWithQuery performs a GET with a pre-encoded query string. Used for
// server-supplied continuation URLs that already carry their parameters.
func (d *DefaultClient) GetWithQuery(rawurl string, headers map[string]string, rawQuery string) (*Response, error) {
	return d.get(rawurl, headers, rawQuery)
}

// Post performs a form-encoded POST.
func (d *DefaultClient) Post(rawurl string, headers map[string]string, params map[string]string) (*Response, error) {
	req, err := http.NewRequest("POST", rawurl, strings.NewReader(encodeParams(params)))
	if err != nil {
		return nil, err
	}
	setHeaders(req, headers)
	if req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	return d.do(req)
}

// PostBytes performs a POST with a raw binary body.
func (d *DefaultClient) PostBytes(rawurl string, headers map[string]string, body []byte) (*Response, error) {
	req, err := http.NewRequest("POST", rawurl, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	setHeaders(req, headers)
	if req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/x-protobuf")
	}
	return d.do(req)
}

func setHeaders(req *http.Request, headers map[string]string) {
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", UserAgent())
	}
	for k, v := range headers {
		// Host is special-cased by net/http
		if http.CanonicalHeaderKey(k) == "Host" {
			req.Host = v
			continue
		}
		req.Header.Set(k, v)
	}
}

func encodeParams(params map[string]string) string {
	if len(params) == 0 {
		return ""
	}
	v := url.Values{}
	for key, value := range params {
		v.Set(key, value)
	}
	return v.Encode()
}
