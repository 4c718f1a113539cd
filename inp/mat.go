// Copyright 2016 The CTM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data files with materials' parameters
package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// Material holds material name, model name and parameters
type Material struct {
	Name  string   `json:"name"`  // name of material
	Model string   `json:"model"` // name of model; e.g. "dahlquist", "hard-soft"
	Prms  fun.Prms `json:"prms"`  // model parameters
}

// MatDb implements a database of materials
type MatDb struct {
	Materials []*Material `json:"materials"` // all materials
}

// ReadMat reads a materials database from a .mat JSON file
//  Note: returns nil on errors
func ReadMat(dir, fn string) (mdb *MatDb) {
	b, err := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil
	}
	mdb = new(MatDb)
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return nil
	}
	return
}

// Get returns a material or nil
func (o MatDb) Get(name string) *Material {
	for _, mat := range o.Materials {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}

// String prints one material
func (o Material) String() (l string) {
	l = io.Sf("{\"name\":%q, \"model\":%q, \"prms\":[", o.Name, o.Model)
	for i, p := range o.Prms {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("{\"n\":%q, \"v\":%g}", p.N, p.V)
	}
	l += "]}"
	return
}

// String prints the materials database
func (o MatDb) String() (l string) {
	l = "{\n  \"materials\" : [\n"
	for i, mat := range o.Materials {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("    %v", mat)
	}
	l += "\n  ]\n}"
	return
}
