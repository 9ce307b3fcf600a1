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

package testutil

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/check.v1"
)

type fileContentChecker struct {
	*check.CheckerInfo
}

// FileEquals verifies that the given file's content equals the expected
// string or []byte exactly.
var FileEquals check.Checker = &fileContentChecker{
	&check.CheckerInfo{Name: "FileEquals", Params: []string{"filename", "contents"}},
}

func (c *fileContentChecker) Check(params []interface{}, names []string) (result bool, error string) {
	filename, ok := params[0].(string)
	if !ok {
		return false, "filename must be a string"
	}
	content, err := os.ReadFile(filename)
	if err != nil {
		return false, fmt.Sprintf("cannot read file: %v", err)
	}
	switch expected := params[1].(type) {
	case string:
		return string(content) == expected, ""
	case []byte:
		return bytes.Equal(content, expected), ""
	}
	return false, "expected contents must be a string or []byte"
}
