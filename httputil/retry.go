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

package httputil

import (
	"errors"
	"io"
	"net"
	"net/http"
	"syscall"
	"time"

	"gopkg.in/retry.v1"

	"github.com/aurora-oss/gplay/logger"
)

// DefaultRetryStrategy is used by RetryRequest when the caller passes a
// nil strategy. The protocol core never retries; this exists for the
// artifact downloader and other callers that opt into resilience.
var DefaultRetryStrategy = retry.LimitCount(6, retry.LimitTime(38*time.Second,
	retry.Exponential{
		Initial: 350 * time.Millisecond,
		Factor:  2.5,
	},
))

// MaybeLogRetryAttempt logs about an upcoming retry attempt if it is not
// the first one.
func MaybeLogRetryAttempt(url string, attempt *retry.Attempt, startTime time.Time) {
	if attempt.Count() > 1 {
		logger.Debugf("Retrying %s, attempt %d, elapsed time=%v", url, attempt.Count(), time.Since(startTime))
	}
}

func maybeLogRetrySummary(startTime time.Time, url string, attempt *retry.Attempt, resp *http.Response, err error) {
	if attempt.Count() > 1 {
		var status string
		if err != nil {
			status = err.Error()
		} else if resp != nil {
			status = resp.Status
		}
		logger.Debugf("The retry loop for %s finished after %d retries, elapsed time=%v, status: %s", url, attempt.Count(), time.Since(startTime), status)
	}
}

// ShouldRetryAttempt returns true if the given error indicates a
// transient condition worth another attempt.
func ShouldRetryAttempt(attempt *retry.Attempt, err error) bool {
	if !attempt.More() {
		return false
	}
	return ShouldRetryError(err)
}

// ShouldRetryError returns true for errors a retry may resolve:
// timeouts, connection resets and truncated reads.
func ShouldRetryError(err error) bool {
	if err == nil {
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return true
	}
	if errors.Is(err, syscall.ECONNRESET) || errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr)
}

// ShouldRetryHttpResponse returns true for server-side statuses that are
// plausibly transient.
func ShouldRetryHttpResponse(attempt *retry.Attempt, resp *http.Response) bool {
	if !attempt.More() {
		return false
	}
	return resp.StatusCode >= 500
}

// RetryRequest calls doRequest and reads the response body in a retry
// loop governed by retryStrategy.
func RetryRequest(endpoint string, doRequest func() (*http.Response, error), readResponseBody func(resp *http.Response) error, retryStrategy retry.Strategy) (resp *http.Response, err error) {
	if retryStrategy == nil {
		retryStrategy = DefaultRetryStrategy
	}
	var attempt *retry.Attempt
	startTime := time.Now()
	for attempt = retry.Start(retryStrategy, nil); attempt.Next(); {
		MaybeLogRetryAttempt(endpoint, attempt, startTime)

		resp, err = doRequest()
		if err != nil {
			if ShouldRetryAttempt(attempt, err) {
				continue
			}
			break
		}

		if ShouldRetryHttpResponse(attempt, resp) {
			resp.Body.Close()
			continue
		}

		err = readResponseBody(resp)
		resp.Body.Close()
		if err != nil {
			if ShouldRetryAttempt(attempt, err) {
				continue
			}
			return nil, err
		}
		break
	}
	maybeLogRetrySummary(startTime, endpoint, attempt, resp, err)

	return resp, err
}
