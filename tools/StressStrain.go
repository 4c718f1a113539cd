// Copyright 2016 The CTM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build ignore

package main

import (
	"encoding/json"
	"flag"

	"github.com/cpmech/ctm-demo/inp"
	"github.com/cpmech/ctm-demo/mstress"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

type Input struct {
	Dir     string  // directory with .mat file
	MatFn   string  // materials filename
	MatName string  // material name
	OdeMeth string  // ODE method for the reference update
	X0      float64 // initial strain
	Y0      float64 // initial stress
	Dx      float64 // strain increment
	Nd      int     // number of increments
	FigDir  string  // directory to save figure
	FigKey  string  // figure filename key
	Show    bool    // show figure
}

func (o *Input) PostProcess() {
	if o.OdeMeth == "" {
		o.OdeMeth = "Dopri5"
	}
	if o.FigDir == "" {
		o.FigDir = "/tmp/ctm"
	}
	if o.FigKey == "" {
		o.FigKey = o.MatName
	}
}

func (o Input) String() (l string) {
	l += "\nInput data\n"
	l += "==========\n"
	l += io.Sf("directory with .mat file       : Dir     = %v\n", o.Dir)
	l += io.Sf("materials filename             : MatFn   = %v\n", o.MatFn)
	l += io.Sf("material name                  : MatName = %v\n", o.MatName)
	l += io.Sf("ODE method                     : OdeMeth = %v\n", o.OdeMeth)
	l += io.Sf("initial strain and stress      : X0, Y0  = %v, %v\n", o.X0, o.Y0)
	l += io.Sf("strain increment               : Dx      = %v\n", o.Dx)
	l += io.Sf("number of increments           : Nd      = %v\n", o.Nd)
	l += io.Sf("directory to save figure       : FigDir  = %v\n", o.FigDir)
	l += io.Sf("figure filename key            : FigKey  = %v\n", o.FigKey)
	l += io.Sf("show figure                    : Show    = %v\n", o.Show)
	l += "\n"
	return
}

func main() {

	// input data file
	inpfn := "data/ssdrv1.inp"
	flag.Parse()
	if len(flag.Args()) > 0 {
		inpfn = flag.Arg(0)
	}
	if io.FnExt(inpfn) == "" {
		inpfn += ".inp"
	}

	// read and parse input data
	var in Input
	b, err := io.ReadFile(inpfn)
	if err != nil {
		io.PfRed("cannot read %s\n", inpfn)
		return
	}
	err = json.Unmarshal(b, &in)
	if err != nil {
		io.PfRed("cannot parse %s\n", inpfn)
		return
	}
	in.PostProcess()

	// print input data
	io.Pf("%v\n", in)

	// materials database
	mdb := inp.ReadMat(in.Dir, in.MatFn)
	if mdb == nil {
		io.PfRed("cannot read materials file\n")
		return
	}

	// get material data
	mat := mdb.Get(in.MatName)
	if mat == nil {
		io.PfRed("cannot get material\n")
		return
	}

	// get and initialise model
	mdl := mstress.GetModel(in.MatFn, in.MatName, mat.Model, false)
	if mdl == nil {
		io.PfRed("cannot allocate model\n")
		return
	}
	err = mdl.Init(mat.Prms)
	if err != nil {
		io.PfRed("cannot initialise model: %v\n", err)
		return
	}

	// driver
	var drv mstress.Driver
	err = drv.InitWithModel(in.OdeMeth, mdl)
	if err != nil {
		io.PfRed("driver: Init failed: %v\n", err)
		return
	}

	// run
	err = drv.Run(in.X0, in.Y0, in.Dx, in.Nd)
	if err != nil {
		io.PfRed("driver: Run failed: %v\n", err)
		return
	}
	for i, x := range drv.Xx {
		io.Pforan("x=%13.6f y=%13.6f D=%13.6f\n", x, drv.Yy[i], drv.Dctm[i])
	}

	// plot
	plt.SetForPng(0.75, 800, 150)
	mstress.PlotRes(&drv, in.FigDir, in.FigKey, in.Show)
}
