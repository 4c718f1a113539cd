// Copyright 2016 The CTM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mstress

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/ode"
)

// Driver runs simulations with 1D stress-strain models and computes the
// consistent tangent moduli along the loading (or unloading) path
type Driver struct {

	// settings
	CheckD bool    // do check consistent tangent modulus
	TolD   float64 // tolerance to check consistent tangent modulus
	VerD   bool    // verbose check of D

	// configuration
	NitMax int     // maximum number of iterations in backward Euler update
	TolBE  float64 // tolerance on residual for backward Euler iterations
	Dsmall float64 // increment perturbation to compute numerical D

	// results
	Xx         []float64 // x (strain) values [nd+1]
	Yy         []float64 // y (stress) values computed with backward Euler [nd+1]
	YyOde      []float64 // y (stress) values computed with the ODE solver [nd+1]
	Dcont      []float64 // continuous moduli [nd+1]
	Dctm       []float64 // consistent tangent moduli [nd+1]
	DctmNum    []float64 // numerical consistent tangent moduli (backward Euler) [nd+1]
	DctmNumOde []float64 // numerical consistent tangent moduli (ODE solver) [nd+1]

	// internal
	model Model      // stress-strain model
	fcn   ode.Cb_fcn // function for ode solver
	jac   ode.Cb_jac // Jacobian for ode solver
	sol   ode.ODE    // ode solver
}

// Init initialises driver and model
//  odemeth -- method for the (reference) ODE update; e.g. "Dopri5".
//             "" means default
func (o *Driver) Init(simfnk, modelname, odemeth string, prms fun.Prms) (err error) {
	o.model = GetModel(simfnk, modelname, modelname, false)
	if o.model == nil {
		return chk.Err("driver: cannot get model %q", modelname)
	}
	err = o.model.Init(prms)
	if err != nil {
		return chk.Err("driver: model initialisation failed:\n%v", err)
	}
	return o.InitWithModel(odemeth, o.model)
}

// InitWithModel initialises driver with existent model
func (o *Driver) InitWithModel(odemeth string, mdl Model) (err error) {

	// model and constants
	if mdl == nil {
		return chk.Err("driver: model must be non-nil")
	}
	o.model = mdl
	o.TolD = 1e-3
	o.NitMax = 20
	o.TolBE = 1e-8
	o.Dsmall = 1e-5

	// ODE solver for the reference update. Integration is performed over the
	// pseudo-time T ∈ [0,1] with x = x0 + T・Δx so that unloading increments
	// (Δx < 0) do not need backward integration
	o.fcn = func(f []float64, T float64, y []float64, args ...interface{}) error {
		Δx := args[0].(float64)
		x0 := args[1].(float64)
		f[0] = Δx * o.model.CalcF(x0+T*Δx, y[0])
		return nil
	}
	o.jac = func(dfdy *la.Triplet, T float64, y []float64, args ...interface{}) error {
		if dfdy.Max() == 0 {
			dfdy.Init(1, 1, 1)
		}
		Δx := args[0].(float64)
		x0 := args[1].(float64)
		dfdy.Start()
		dfdy.Put(0, 0, Δx*o.model.CalcJ(x0+T*Δx, y[0]))
		return nil
	}
	if odemeth == "" {
		odemeth = "Dopri5"
	}
	silent := true
	o.sol.Init(odemeth, 1, o.fcn, o.jac, nil, nil, silent)
	o.sol.Distr = false
	o.sol.SetTol(1e-9, 1e-9)
	return
}

// Model returns the internal stress-strain model
func (o *Driver) Model() Model {
	return o.model
}

// Update performs the backward Euler update for a given strain increment Δx
//
//   y1 = y0 + Δx・f(x1,y1)   with   x1 = x0 + Δx
//
// starting from the trial state y0 + Δx・f(x1,y0) and solving the nonlinear
// equation with Newton iterations
func (o *Driver) Update(x, y *float64, Δx float64) (err error) {

	// trial state
	x0, y0 := *x, *y
	x1 := x0 + Δx
	ftr := o.model.CalcF(x1, y0)
	*x = x1
	*y = y0 + Δx*ftr

	// Newton iterations on r = y - y0 - Δx・f(x1,y)
	for it := 0; it < o.NitMax; it++ {
		f1 := o.model.CalcF(x1, *y)
		r1 := *y - y0 - Δx*f1
		if math.Abs(r1) < o.TolBE {
			return
		}
		J1 := o.model.CalcJ(x1, *y)
		*y -= r1 / (1.0 - Δx*J1)
	}
	return chk.Err("driver: backward Euler update did not converge after %d iterations", o.NitMax)
}

// UpdateOde performs an update using the ODE solver
func (o *Driver) UpdateOde(x, y *float64, Δx float64) (err error) {
	x0 := *x
	y1 := []float64{*y}
	err = o.sol.Solve(y1, 0, 1, 1, false, Δx, x0)
	if err != nil {
		return chk.Err("driver: ODE update failed:\n%v", err)
	}
	*x = x0 + Δx
	*y = y1[0]
	return
}

// ContD returns the continuous modulus D = f(x,y)
func (o *Driver) ContD(x, y float64) float64 {
	return o.model.CalcF(x, y)
}

// CalcD computes the consistent tangent modulus D = dy1/dΔx at the updated
// point (x1,y1); i.e. consistent with the backward Euler update
func (o *Driver) CalcD(x1, y1, Δx float64) float64 {
	f1 := o.model.CalcF(x1, y1)
	L1 := o.model.CalcL(x1, y1)
	J1 := o.model.CalcJ(x1, y1)
	return (f1 + Δx*L1) / (1.0 - Δx*J1)
}

// NumD approximates the consistent tangent modulus at the updated point by
// differencing two updates computed from the previous point (x0,y0)
func (o *Driver) NumD(x0, y0, Δx float64, useOde bool) (D float64, err error) {
	xa, ya := x0, y0
	xb, yb := x0, y0
	if useOde {
		err = o.UpdateOde(&xa, &ya, Δx)
		if err != nil {
			return
		}
		err = o.UpdateOde(&xb, &yb, Δx+o.Dsmall)
		if err != nil {
			return
		}
	} else {
		err = o.Update(&xa, &ya, Δx)
		if err != nil {
			return
		}
		err = o.Update(&xb, &yb, Δx+o.Dsmall)
		if err != nil {
			return
		}
	}
	return (yb - ya) / (xb - xa), nil
}

// Run performs nd increments of size Δx starting from (x0,y0) and stores all
// results; the first entries correspond to the initial state with all moduli
// set to the continuous modulus
func (o *Driver) Run(x0, y0, Δx float64, nd int) (err error) {

	// allocate results
	o.Xx = make([]float64, nd+1)
	o.Yy = make([]float64, nd+1)
	o.YyOde = make([]float64, nd+1)
	o.Dcont = make([]float64, nd+1)
	o.Dctm = make([]float64, nd+1)
	o.DctmNum = make([]float64, nd+1)
	o.DctmNumOde = make([]float64, nd+1)

	// initial state
	xbe, ybe := x0, y0
	xode, yode := x0, y0
	D0 := o.ContD(x0, y0)
	o.Xx[0], o.Yy[0], o.YyOde[0] = x0, y0, y0
	o.Dcont[0], o.Dctm[0], o.DctmNum[0], o.DctmNumOde[0] = D0, D0, D0, D0

	// increments
	for k := 1; k <= nd; k++ {

		// previous point
		xa, ya := xbe, ybe

		// backward Euler and ODE updates
		err = o.Update(&xbe, &ybe, Δx)
		if err != nil {
			return
		}
		err = o.UpdateOde(&xode, &yode, Δx)
		if err != nil {
			return
		}

		// moduli @ updated point
		o.Xx[k], o.Yy[k], o.YyOde[k] = xbe, ybe, yode
		o.Dcont[k] = o.ContD(xbe, ybe)
		o.Dctm[k] = o.CalcD(xbe, ybe, Δx)
		o.DctmNum[k], err = o.NumD(xa, ya, Δx, false)
		if err != nil {
			return
		}
		o.DctmNumOde[k], err = o.NumD(xa, ya, Δx, true)
		if err != nil {
			return
		}

		// check consistent tangent modulus
		if o.CheckD {
			diff := math.Abs(o.Dctm[k] - o.DctmNum[k])
			if o.VerD {
				io.Pf("k=%2d x=%13.6e D=%13.6e Dnum=%13.6e diff=%13.6e\n", k, xbe, o.Dctm[k], o.DctmNum[k], diff)
			}
			if diff > o.TolD {
				return chk.Err("driver: D check failed @ x=%g: |D - Dnum| = %g > %g", xbe, diff, o.TolD)
			}
		}
	}
	return
}
