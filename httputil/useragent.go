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
	"fmt"
	"runtime"
	"sync"
)

var (
	uaMu      sync.Mutex
	userAgent = fmt.Sprintf("gplay/unknown (%s %s)", runtime.GOOS, runtime.GOARCH)
)

// SetUserAgentFromVersion sets the default user-agent sent when a request
// carries no protocol-level one.
func SetUserAgentFromVersion(version string) {
	uaMu.Lock()
	defer uaMu.Unlock()
	userAgent = fmt.Sprintf("gplay/%s (%s %s)", version, runtime.GOOS, runtime.GOARCH)
}

// UserAgent returns the fallback user-agent.
func UserAgent() string {
	uaMu.Lock()
	defer uaMu.Unlock()
	return userAgent
}
