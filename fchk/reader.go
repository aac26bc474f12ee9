/*
 * reader.go, part of gofchk.
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
	"bufio"
	"io"
	"strconv"
	"strings"
)

//Column layout of a record header line: the name takes the first 40
//columns, followed by 3 blanks, the type character, and either the scalar
//value or "N=" and the number of elements.
const (
	nameWidth  = 40
	typeColumn = 43
	countMark  = "N="
)

//Record types, as they appear in the header.
const (
	TypeInt       byte = 'I'
	TypeReal      byte = 'R'
	TypeChar      byte = 'C' //12-character words
	TypeHollerith byte = 'H' //8-character words
	TypeLogical   byte = 'L'
)

//perLine gives the number of values written per line in arrays of each type,
//and, for text types, the width of each word.
var perLine = map[byte]int{TypeInt: 6, TypeReal: 5, TypeChar: 5, TypeHollerith: 9, TypeLogical: 72}
var wordWidth = map[byte]int{TypeChar: 12, TypeHollerith: 8, TypeLogical: 1}

//maxPrealloc bounds the capacity reserved for an array before its values are read,
//so a corrupt element count can't exhaust the memory.
const maxPrealloc = 1 << 16

//Record is one labeled unit of the file: a scalar, or an array with a declared
//number of elements.
type Record struct {
	Name  string
	Type  byte
	Array bool
	Count int //declared number of elements for arrays, 0 for scalars
	Line  int //line of the header
	Value Value
}

//Reader reads the records of a formatted checkpoint file, in file order.
type Reader struct {
	r        *bufio.Reader
	filename string
	line     int
	title    string
	job      string
	preamble bool
	eof      bool
}

//NewReader returns a Reader that reads records from r. filename is only used
//for error reporting.
func NewReader(r io.Reader, filename string) *Reader {
	R := new(Reader)
	R.r = bufio.NewReader(r)
	R.filename = filename
	return R
}

//readLine returns the next line without the line terminator. It returns io.EOF
//only when there is nothing left to read.
func (R *Reader) readLine() (string, error) {
	if R.eof {
		return "", io.EOF
	}
	line, err := R.r.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			return "", &Error{kind: ErrTruncatedFile, message: "can't read line: " + err.Error(), filename: R.filename, line: R.line + 1, cause: err}
		}
		R.eof = true
		if line == "" {
			return "", io.EOF
		}
	}
	R.line++
	return strings.TrimRight(line, "\r\n"), nil
}

//Preamble returns the title (first line) and the job line (second line) of
//the file. It is called by Next if needed, and can be called any number of times.
func (R *Reader) Preamble() (title, job string, err error) {
	if R.preamble {
		return R.title, R.job, nil
	}
	for i, dest := range []*string{&R.title, &R.job} {
		l, err := R.readLine()
		if err == io.EOF {
			return "", "", newError(ErrTruncatedFile, R.filename, "", R.line, "file ends before the preamble (%d of 2 lines)", i)
		} else if err != nil {
			return "", "", errDecorate(err, "Preamble")
		}
		*dest = l
	}
	R.title = strings.TrimSpace(R.title)
	R.preamble = true
	return R.title, R.job, nil
}

//Next reads the next record. It returns io.EOF, and a nil record, when the
//input ends cleanly between records.
func (R *Reader) Next() (*Record, error) {
	if _, _, err := R.Preamble(); err != nil {
		return nil, err
	}
	var line string
	var err error
	for {
		line, err = R.readLine()
		if err != nil {
			return nil, err //io.EOF included
		}
		if strings.TrimSpace(line) != "" {
			break
		}
	}
	rec, rest, err := R.parseHeader(line)
	if err != nil {
		return nil, err
	}
	if rec.Array {
		err = R.readArray(rec)
	} else {
		err = R.readScalar(rec, rest)
	}
	if err != nil {
		return nil, errDecorate(err, "Next")
	}
	return rec, nil
}

//parseHeader checks that line is a record header, and returns the record it
//declares, plus the text after the type column.
func (R *Reader) parseHeader(line string) (*Record, string, error) {
	malformed := func(format string, args ...interface{}) error {
		e := newError(ErrMalformedRecord, R.filename, "", R.line, format, args...)
		e.Decorate("parseHeader")
		return e
	}
	if len(line) <= typeColumn {
		return nil, "", malformed("not a record header: %q", line)
	}
	name := strings.TrimSpace(line[:nameWidth])
	if name == "" || strings.TrimSpace(line[nameWidth:typeColumn]) != "" {
		return nil, "", malformed("not a record header: %q", line)
	}
	rec := &Record{Name: name, Type: line[typeColumn], Line: R.line}
	if _, ok := perLine[rec.Type]; !ok {
		e := malformed("unknown record type %q", string(rec.Type))
		e.(*Error).record = name
		return nil, "", e
	}
	rest := strings.TrimSpace(line[typeColumn+1:])
	if strings.HasPrefix(rest, countMark) {
		rec.Array = true
		n, err := strconv.Atoi(strings.TrimSpace(rest[len(countMark):]))
		if err != nil || n < 0 {
			e := malformed("invalid element count %q", rest[len(countMark):])
			e.(*Error).record = name
			return nil, "", e
		}
		rec.Count = n
	}
	return rec, rest, nil
}

func (R *Reader) readScalar(rec *Record, val string) error {
	var err error
	switch rec.Type {
	case TypeInt:
		var i int
		i, err = strconv.Atoi(val)
		rec.Value = intValue(i)
	case TypeReal:
		var r float64
		r, err = parseReal(val)
		rec.Value = realValue(r)
	case TypeLogical:
		var b bool
		b, err = parseLogical(val)
		rec.Value = boolValue(b)
	default:
		rec.Value = textValue(val)
	}
	if err != nil {
		return newError(ErrMalformedRecord, R.filename, rec.Name, rec.Line, "can't parse scalar %q: %s", val, err)
	}
	return nil
}

//readArray consumes the lines holding the rec.Count elements of the array.
func (R *Reader) readArray(rec *Record) error {
	switch rec.Type {
	case TypeChar, TypeHollerith:
		return R.readText(rec)
	case TypeLogical:
		return R.readLogicals(rec)
	}
	var ints []int
	var reals []float64
	if rec.Type == TypeInt {
		ints = make([]int, 0, min(rec.Count, maxPrealloc))
	} else {
		reals = make([]float64, 0, min(rec.Count, maxPrealloc))
	}
	read := 0
	for read < rec.Count {
		line, err := R.nextDataLine(rec, read)
		if err != nil {
			return err
		}
		fields := strings.Fields(line)
		if read+len(fields) > rec.Count {
			return newError(ErrMalformedRecord, R.filename, rec.Name, R.line, "%d values found, only %d declared", read+len(fields), rec.Count)
		}
		for _, v := range fields {
			if rec.Type == TypeInt {
				i, err := strconv.Atoi(v)
				if err != nil {
					return newError(ErrMalformedRecord, R.filename, rec.Name, R.line, "can't parse integer %q", v)
				}
				ints = append(ints, i)
			} else {
				r, err := parseReal(v)
				if err != nil {
					return newError(ErrMalformedRecord, R.filename, rec.Name, R.line, "can't parse real %q", v)
				}
				reals = append(reals, r)
			}
		}
		read += len(fields)
	}
	if rec.Type == TypeInt {
		rec.Value = intsValue(ints)
	} else {
		rec.Value = vectorValue(reals)
	}
	return nil
}

//readText reads a C or H array, made of fixed-width words, and joins the words
//in one string.
func (R *Reader) readText(rec *Record) error {
	width := wordWidth[rec.Type]
	n := perLine[rec.Type]
	var text strings.Builder
	read := 0
	for read < rec.Count {
		line, err := R.nextDataLine(rec, read)
		if err != nil {
			return err
		}
		words := rec.Count - read
		if words > n {
			words = n
		}
		if len(line) > words*width {
			return newError(ErrMalformedRecord, R.filename, rec.Name, R.line, "line longer than %d words of %d characters", words, width)
		}
		text.WriteString(line)
		text.WriteString(strings.Repeat(" ", words*width-len(line)))
		read += words
	}
	rec.Value = textValue(strings.TrimSpace(text.String()))
	return nil
}

//readLogicals reads an L array. The values are returned as 1 (true) or 0 (false).
func (R *Reader) readLogicals(rec *Record) error {
	vals := make([]int, 0, min(rec.Count, maxPrealloc))
	for len(vals) < rec.Count {
		line, err := R.nextDataLine(rec, len(vals))
		if err != nil {
			return err
		}
		for _, c := range strings.TrimSpace(line) {
			if c == ' ' {
				continue
			}
			if len(vals) == rec.Count {
				return newError(ErrMalformedRecord, R.filename, rec.Name, R.line, "more than %d logicals", rec.Count)
			}
			b, err := parseLogical(string(c))
			if err != nil {
				return newError(ErrMalformedRecord, R.filename, rec.Name, R.line, "can't parse logical %q", string(c))
			}
			if b {
				vals = append(vals, 1)
			} else {
				vals = append(vals, 0)
			}
		}
	}
	rec.Value = intsValue(vals)
	return nil
}

//nextDataLine returns the next non-blank line inside an array, or an
//ErrTruncatedFile error, pointing to the header of the array, if the input ends.
func (R *Reader) nextDataLine(rec *Record, read int) (string, error) {
	for {
		line, err := R.readLine()
		if err == io.EOF {
			return "", newError(ErrTruncatedFile, R.filename, rec.Name, rec.Line, "file ends after %d of %d elements", read, rec.Count)
		} else if err != nil {
			return "", err
		}
		if strings.TrimSpace(line) != "" {
			return line, nil
		}
	}
}

//parseReal parses a Fortran real. Besides the usual E notation it accepts D
//exponents (1.0D+02) and the form without exponent letter used when the
//exponent has three digits (1.0-100).
func parseReal(s string) (float64, error) {
	s = strings.Map(func(r rune) rune {
		if r == 'D' || r == 'd' {
			return 'E'
		}
		return r
	}, s)
	f, err := strconv.ParseFloat(s, 64)
	if err == nil {
		return f, nil
	}
	if i := strings.LastIndexAny(s, "+-"); i > 0 && s[i-1] != 'E' && s[i-1] != 'e' {
		if f, err2 := strconv.ParseFloat(s[:i]+"E"+s[i:], 64); err2 == nil {
			return f, nil
		}
	}
	return 0, err
}

func parseLogical(s string) (bool, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "T", ".TRUE.", "TRUE":
		return true, nil
	case "F", ".FALSE.", "FALSE":
		return false, nil
	}
	return false, strconv.ErrSyntax
}
