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
	"errors"
	"fmt"
)

var (
	// ErrAppNotFound means the store has no record of the package.
	ErrAppNotFound = errors.New("app not found")

	// ErrAppNotSupported means the store refuses delivery for this
	// device profile.
	ErrAppNotSupported = errors.New("app not supported on this device")

	// ErrAppNotPurchased means delivery was asked for an app the
	// account holds no entitlement for.
	ErrAppNotPurchased = errors.New("app not purchased")

	// ErrEmptyDownloads means the delivery manifest reported success
	// but described no downloadable artifacts.
	ErrEmptyDownloads = errors.New("delivery response carries no downloadable artifacts")
)

// AuthError means the server understood the request but rejected the
// credentials on it, as opposed to the transport failing.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed: %s", e.Reason)
}

// TransportError means the request never produced a usable response;
// the underlying cause is retained for errors.Is/As inspection.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("cannot contact store at %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ServerError reports a non-success HTTP status from the store.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("store server error: %s (%d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("store server error: unexpected HTTP status %d", e.StatusCode)
}

// DeliveryError reports a delivery manifest status this client does not
// know how to act on.
type DeliveryError struct {
	Status int
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("unexpected delivery status %d", e.Status)
}
