// Copyright 2016 The CTM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mstress

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/num"
)

func Test_dahlquist01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dahlquist01. derivatives")

	mdl, err := New("dahlquist")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init([]*fun.Prm{
		&fun.Prm{N: "lam", V: 5},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	// continuous modulus
	chk.Scalar(tst, "f(0,1)", 1e-17, mdl.CalcF(0, 1), -5)

	// L = ∂f/∂x and J = ∂f/∂y against numerical derivatives
	xat, yat := 0.3, 0.8
	Lnum, _ := num.DerivCentral(func(t float64, args ...interface{}) float64 {
		return mdl.CalcF(t, yat)
	}, xat, 1e-3)
	chk.Scalar(tst, "L = ∂f/∂x", 1e-10, mdl.CalcL(xat, yat), Lnum)
	Jnum, _ := num.DerivCentral(func(t float64, args ...interface{}) float64 {
		return mdl.CalcF(xat, t)
	}, yat, 1e-3)
	chk.Scalar(tst, "J = ∂f/∂y", 1e-10, mdl.CalcJ(xat, yat), Jnum)

	// closed-form solution
	d := mdl.(*Dahlquist)
	chk.Scalar(tst, "y(0)", 1e-17, d.CalcY(0), 1)
	chk.Scalar(tst, "y(0.2)", 1e-15, d.CalcY(0.2), math.Exp(-1))
}

func Test_dahlquist02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dahlquist02. backward Euler and consistent D")

	// driver
	λ := 5.0
	var drv Driver
	err := drv.Init("dahlquist02", "dahlquist", "Dopri5", []*fun.Prm{
		&fun.Prm{N: "lam", V: λ},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	// run: y(0) = 1
	Δx, nd := 0.1, 5
	err = drv.Run(0, 1, Δx, nd)
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}
	io.Pforan("x = %v\n", drv.Xx)
	io.Pforan("y = %v\n", drv.Yy)
	io.Pforan("D = %v\n", drv.Dctm)

	// backward Euler values: y[k] = (2/3)^k (Mathematica)
	yref := []float64{
		1.0,
		0.6666666666666666,
		0.4444444444444444,
		0.2962962962962963,
		0.19753086419753085,
		0.1316872427983539,
	}
	chk.Vector(tst, "y", 1e-15, drv.Yy, yref)

	// consistent tangent moduli (Mathematica)
	Dref := []float64{
		-5.0,
		-2.2222222222222223,
		-1.4814814814814812,
		-0.9876543209876543,
		-0.6584362139917694,
		-0.43895747599451296,
	}
	chk.Vector(tst, "D", 1e-15, drv.Dctm, Dref)

	// closed-form and numerical moduli
	mdl := drv.Model().(*Dahlquist)
	for i := 1; i <= nd; i++ {
		chk.Scalar(tst, io.Sf("Dana(%d)", i), 1e-15, drv.Dctm[i], mdl.CalcD(drv.Yy[i], Δx))
		chk.Scalar(tst, io.Sf("Dnum(%d)", i), 1e-4, drv.Dctm[i], drv.DctmNum[i])
		chk.Scalar(tst, io.Sf("DnumOde(%d)", i), 1e-3, drv.Dctm[i], drv.DctmNumOde[i])
	}

	// ODE solution against the analytical one
	for i, x := range drv.Xx {
		chk.Scalar(tst, io.Sf("yOde(%d)", i), 1e-6, drv.YyOde[i], mdl.CalcY(x))
	}

	// plot
	if false {
		PlotRes(&drv, "/tmp/ctm", "dahlquist02", false)
	}
}
