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
	"time"

	"gopkg.in/retry.v1"

	"github.com/aurora-oss/gplay/auth"
	"github.com/aurora-oss/gplay/playproto"
)

var (
	ParseKeyValues    = parseKeyValues
	AssembleArtifacts = assembleArtifacts
	BundleFromList    = bundleFromList
	ClusterID         = clusterID
	LocaleCountry     = localeCountry
)

func TokenShape(service auth.Service) map[string]string {
	return tokenShapes[service]
}

func (s *Store) AuthedHeaders() map[string]string {
	return s.authedHeaders()
}

func (s *Store) EndpointURL(endpoint string) string {
	return s.endpointURL(endpoint)
}

func AppFromItem(it *playproto.Item) *App {
	return appFromItem(it)
}

func MockTimeNow(f func() time.Time) (restore func()) {
	old := timeNow
	timeNow = f
	return func() {
		timeNow = old
	}
}

func MockDownloadRetryStrategy(strategy retry.Strategy) (restore func()) {
	old := downloadRetryStrategy
	downloadRetryStrategy = strategy
	return func() {
		downloadRetryStrategy = old
	}
}
