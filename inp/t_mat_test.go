// Copyright 2016 The CTM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func Test_mat01(tst *testing.T) {

	//io.Verbose = true
	//chk.Verbose = true
	chk.PrintTitle("mat01. materials database")

	mdb := ReadMat("data", "models.mat")
	if mdb == nil {
		tst.Errorf("cannot read data/models.mat\n")
		return
	}
	io.Pf("%v\n", mdb)

	// dahlquist material
	mat := mdb.Get("decay1")
	if mat == nil {
		tst.Errorf("cannot get 'decay1'\n")
		return
	}
	if mat.Model != "dahlquist" {
		tst.Errorf("wrong model name: %q\n", mat.Model)
		return
	}
	prm := mat.Prms.Find("lam")
	if prm == nil {
		tst.Errorf("cannot find parameter 'lam'\n")
		return
	}
	chk.Scalar(tst, "lam", 1e-17, prm.V, 5)

	// hard-soft material
	mat = mdb.Get("soil1")
	if mat == nil {
		tst.Errorf("cannot get 'soil1'\n")
		return
	}
	for i, nv := range []struct {
		n string
		v float64
	}{
		{"li", 10}, {"lr", 3}, {"y0r", 1}, {"a", 3}, {"b", 5},
	} {
		prm := mat.Prms.Find(nv.n)
		if prm == nil {
			tst.Errorf("cannot find parameter %q (%d)\n", nv.n, i)
			return
		}
		chk.Scalar(tst, nv.n, 1e-17, prm.V, nv.v)
	}

	// nonexistent entries
	if mdb.Get("granite1") != nil {
		tst.Errorf("Get must return nil with nonexistent material\n")
		return
	}
	if ReadMat("data", "nonexistent.mat") != nil {
		tst.Errorf("ReadMat must return nil with nonexistent file\n")
		return
	}
}
