// Copyright 2016 The CTM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mstress

import (
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// PlotRes plots the results stored in driver after Run
//  dirout -- directory to save figure; "" means do not save
//  fnkey  -- filename key
//  show   -- show figure
func PlotRes(drv *Driver, dirout, fnkey string, show bool) {

	// nothing to plot before Run
	n := len(drv.Xx)
	if n == 0 {
		return
	}

	// stress-strain curves
	plt.Subplot(1, 2, 1)
	if m, ok := drv.model.(Analytical); ok {
		Xf := utl.LinSpace(drv.Xx[0], drv.Xx[n-1], 101)
		Yf := make([]float64, 101)
		for i, x := range Xf {
			Yf[i] = m.CalcY(x)
		}
		plt.Plot(Xf, Yf, "'g-', label='analytical', clip_on=0")
	}
	plt.Plot(drv.Xx, drv.YyOde, "'b--', label='ODE solution', clip_on=0")
	plt.Plot(drv.Xx, drv.Yy, "'ko', label='backward Euler', clip_on=0")
	plt.Gll("$x$", "$y$", "")

	// moduli
	plt.Subplot(1, 2, 2)
	plt.Plot(drv.Xx, drv.Dcont, "'g-', label='continuous', clip_on=0")
	plt.Plot(drv.Xx, drv.Dctm, "'ko', label='consistent', clip_on=0")
	plt.Plot(drv.Xx, drv.DctmNum, "'r+', label='numerical (BE)', clip_on=0")
	plt.Plot(drv.Xx, drv.DctmNumOde, "'m*', label='numerical (ODE)', clip_on=0")
	plt.Gll("$x$", "$D$", "")

	// save and show
	if dirout != "" {
		plt.SaveD(dirout, fnkey+".png")
	}
	if show {
		plt.Show()
	}
}
