/*
 * options.go, part of gofchk.
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
	"strings"

	"github.com/BurntSushi/toml"
)

//Options controls how a file is decoded. A nil *Options is equivalent to
//DefaultOptions().
type Options struct {
	//Strict makes records with unrecognized names an error (ErrValidation)
	//instead of storing them in Fields.Unknown.
	Strict bool `toml:"strict"`

	//Verbose logs a heads-up for every unrecognized or repeated record.
	Verbose bool `toml:"verbose"`
}

//DefaultOptions returns the default, lenient, options.
func DefaultOptions() *Options {
	return &Options{}
}

//LoadOptions reads decoding options from a TOML file, for instance
//
//	strict = true
//	verbose = false
//
//Keys not in Options are an error.
func LoadOptions(filename string) (*Options, error) {
	opts := DefaultOptions()
	md, err := toml.DecodeFile(filename, opts)
	if err != nil {
		return nil, &Error{kind: ErrValidation, message: "can't decode options: " + err.Error(), filename: filename, deco: []string{"LoadOptions"}, cause: err}
	}
	if und := md.Undecoded(); len(und) > 0 {
		keys := make([]string, len(und))
		for i, k := range und {
			keys[i] = k.String()
		}
		return nil, newError(ErrValidation, filename, "", 0, "unknown option(s) %s", strings.Join(keys, ", "))
	}
	return opts, nil
}
