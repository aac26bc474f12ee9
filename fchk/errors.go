/*
 * errors.go, part of gofchk.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package fchk

import (
	"errors"
	"fmt"
)

//Sentinel errors. Every error returned by this package wraps exactly one of
//them, so callers can classify failures with errors.Is.
var (
	//ErrNotFound is returned when the file does not exist or can not be opened.
	ErrNotFound = errors.New("fchk: file not found or unreadable")

	//ErrMalformedRecord is returned when a line does not follow the record grammar.
	ErrMalformedRecord = errors.New("fchk: malformed record")

	//ErrTruncatedFile is returned when the input ends in the middle of a record.
	ErrTruncatedFile = errors.New("fchk: truncated file")

	//ErrDimensionMismatch is returned when a declared dimension disagrees with the data.
	ErrDimensionMismatch = errors.New("fchk: dimension mismatch")

	//ErrInconsistentBasis is returned when the shell/primitive/center bookkeeping does not add up.
	ErrInconsistentBasis = errors.New("fchk: inconsistent basis set")

	//ErrValidation is returned when a cross-section consistency check fails.
	ErrValidation = errors.New("fchk: validation failed")
)

//Error is the error type for the fchk package. It fullfills chem.Error and chem.FileError.
//All errors are critical: a file that produced an Error could not be decoded.
type Error struct {
	kind     error //one of the sentinels
	message  string
	filename string
	record   string //the record being processed, if any
	line     int    //1-based, 0 if unknown
	deco     []string
	cause    error
}

func newError(kind error, filename, record string, line int, format string, args ...interface{}) *Error {
	return &Error{kind: kind, message: fmt.Sprintf(format, args...), filename: filename, record: record, line: line}
}

func (err *Error) Error() string {
	where := "fchk file " + err.filename
	if err.line > 0 {
		where += fmt.Sprintf(", line %d", err.line)
	}
	if err.record != "" {
		where += fmt.Sprintf(", record %q", err.record)
	}
	return fmt.Sprintf("%s: %s: %s", where, err.kind.Error(), err.message)
}

//Unwrap returns the sentinel error and, if present, the underlying cause.
func (err *Error) Unwrap() []error {
	if err.cause != nil {
		return []error{err.kind, err.cause}
	}
	return []error{err.kind}
}

//Decorate adds new information to the error and returns the decoration trail.
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the file to which the failing decode was associated
func (err *Error) FileName() string { return err.filename }

//Format returns the format of the file (always "fchk") associated to the error
func (err *Error) Format() string { return "fchk" }

//Critical returns true: no fchk error can be recovered from.
func (err *Error) Critical() bool { return true }

//Record returns the name of the record being processed when the error happened,
//or an empty string.
func (err *Error) Record() string { return err.record }

//Line returns the 1-based line of the input where the error happened, or 0.
func (err *Error) Line() int { return err.line }

//errDecorate decorates err with the caller's name if it is an *Error,
//and returns it.
func errDecorate(err error, caller string) error {
	if e, ok := err.(*Error); ok {
		e.Decorate(caller)
	}
	return err
}
