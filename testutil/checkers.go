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

// Package testutil offers custom checkers for the check.v1 test library.
package testutil

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"gopkg.in/check.v1"
)

type containsChecker struct {
	*check.CheckerInfo
}

// Contains is a Checker that looks for a needle in a haystack.
// The needle can be any object. The haystack can be an array, slice or string.
var Contains check.Checker = &containsChecker{
	&check.CheckerInfo{Name: "Contains", Params: []string{"haystack", "needle"}},
}

func (c *containsChecker) Check(params []interface{}, names []string) (result bool, error string) {
	defer func() {
		if v := recover(); v != nil {
			result = false
			error = fmt.Sprint(v)
		}
	}()
	var haystack interface{} = params[0]
	var needle interface{} = params[1]
	switch haystackV := reflect.ValueOf(haystack); haystackV.Kind() {
	case reflect.Slice, reflect.Array:
		for length, i := haystackV.Len(), 0; i < length; i++ {
			if reflect.DeepEqual(haystackV.Index(i).Interface(), needle) {
				return true, ""
			}
		}
		return false, ""
	case reflect.Map:
		for _, keyV := range haystackV.MapKeys() {
			if reflect.DeepEqual(haystackV.MapIndex(keyV).Interface(), needle) {
				return true, ""
			}
		}
		return false, ""
	case reflect.String:
		needle, ok := needle.(string)
		if !ok {
			return false, "needle is not a string"
		}
		return strings.Contains(haystack.(string), needle), ""
	default:
		return false, fmt.Sprintf("%T is not a supported haystack", haystack)
	}
}

type errorIsChecker struct {
	*check.CheckerInfo
}

// ErrorIs calls errors.Is with the provided arguments.
var ErrorIs check.Checker = &errorIsChecker{
	&check.CheckerInfo{Name: "ErrorIs", Params: []string{"error", "target"}},
}

func (c *errorIsChecker) Check(params []interface{}, names []string) (result bool, errMsg string) {
	if params[0] == nil {
		return false, "error is nil"
	}
	err, ok := params[0].(error)
	if !ok {
		return false, "first argument is not an error"
	}
	target, ok := params[1].(error)
	if !ok {
		return false, "second argument is not an error"
	}
	return errors.Is(err, target), ""
}
