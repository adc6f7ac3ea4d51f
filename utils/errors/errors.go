// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2024-2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// Package errors is the only errors package this module imports. Wrapping renders as
// "message caused by: cause" so a chain reads left to right from the outermost context.
package errors

import (
	stderrors "errors" //nolint:depguard
	"fmt"
)

var New = stderrors.New
var Is = stderrors.Is
var Join = stderrors.Join

func Errorf(format string, args ...any) error {
	return New(fmt.Sprintf(format, args...))
}

// Wrap adds the wrapping message in front of err, a nil err stays nil so it's safe to wrap unconditionally
// when collecting errors for [Join].
func Wrap(err error, wrapping string) error {
	if err == nil {
		return nil
	}
	return &wrapErr{cause: err, messageErr: New(wrapping)}
}

func Wrapf(err error, format string, args ...any) error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

type wrapErr struct {
	cause      error
	messageErr error
}

func (e *wrapErr) Error() string {
	return e.messageErr.Error() + " caused by: " + e.cause.Error()
}

func (e *wrapErr) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprint(s, e.messageErr)
			fmt.Fprintf(s, " caused by: %+v", e.cause)
			return
		}
		fallthrough
	case 's', 'q':
		fmt.Fprint(s, e.Error())
	}
}

func (e *wrapErr) Unwrap() []error {
	return []error{e.messageErr, e.cause}
}
