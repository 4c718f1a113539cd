// Copyright 2016 The CTM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mstress

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// HardSoft implements a hardening-softening model in which the continuous
// modulus is attracted to the slope of a reference curve
//
//   f(x,y) = λi + (λt - λi)・exp(-α・δ)
//
// where δ = max(0, yr(x) - y) is the distance to the reference curve,
// λt = dyr/dx is the target slope, and the reference curve decays from the
// -λr asymptote towards an exactly horizontal line:
//
//   yr(x) = -λr x + ln(c3 + c2・exp(c1 x)) / β
//
type HardSoft struct {

	// parameters
	λi float64 // initial slope
	λr float64 // reference slope; second slope, after the peak, going down
	α  float64 // smoothing coefficient: transition from λi to λt
	β  float64 // smoothing coefficient: transition from -λr to 0 in yr(x)

	// derived
	c1 float64 // c1 = β λr
	c2 float64 // c2 = exp(β yr0) with yr0 = 0
	c3 float64 // c3 = exp(β y0r) - c2
}

// add model to factory
func init() {
	allocators["hard-soft"] = func() Model { return new(HardSoft) }
}

// Init initialises model
//  "y0r" is the reference ordinate at zero strain; i.e. yr(0)
func (o *HardSoft) Init(prms fun.Prms) (err error) {

	// check
	for _, name := range []string{"li", "lr", "y0r", "a", "b"} {
		if prms.Find(name) == nil {
			return chk.Err("hard-soft: parameter %q is missing", name)
		}
	}

	// parameters
	var y0r float64
	for _, p := range prms {
		switch p.N {
		case "li":
			o.λi = p.V
		case "lr":
			o.λr = p.V
		case "y0r":
			y0r = p.V
		case "a":
			o.α = p.V
		case "b":
			o.β = p.V
		default:
			return chk.Err("hard-soft: parameter named %q is incorrect", p.N)
		}
	}

	// derived
	o.c1 = o.β * o.λr
	o.c2 = 1.0 // exp(β yr0) with yr0 = 0
	o.c3 = math.Exp(o.β*y0r) - o.c2
	return
}

// GetPrms gets (an example) of parameters
func (o HardSoft) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "li", V: 10},
		&fun.Prm{N: "lr", V: 3},
		&fun.Prm{N: "y0r", V: 1},
		&fun.Prm{N: "a", V: 3},
		&fun.Prm{N: "b", V: 5},
	}
}

// Yr computes the reference curve ordinate yr(x)
// (decay reaching an exactly horizontal line)
func (o HardSoft) Yr(x float64) float64 {
	c1x := o.c1 * x
	if c1x >= 500 { // overflow guard
		return 0
	}
	return -o.λr*x + math.Log(o.c3+o.c2*math.Exp(c1x))/o.β
}

// DyrDx computes the slope dyr/dx of the reference curve
func (o HardSoft) DyrDx(x float64) float64 {
	c1x := o.c1 * x
	if c1x >= 500 { // overflow guard
		return 0
	}
	e := math.Exp(c1x)
	h := o.c3 + o.c2*e
	return -o.λr + o.c1*o.c2*e/(o.β*h)
}

// D2yrDx2 computes the second derivative d²yr/dx² of the reference curve
func (o HardSoft) D2yrDx2(x float64) float64 {
	c1x := o.c1 * x
	if c1x >= 500 { // overflow guard
		return 0
	}
	e := math.Exp(c1x)
	h := o.c3 + o.c2*e
	return o.c1 * o.c1 * o.c2 * o.c3 * e / (o.β * h * h)
}

// CalcF computes f = dy/dx == continuous modulus
func (o HardSoft) CalcF(x, y float64) float64 {
	δ := math.Max(0, o.Yr(x)-y)
	λt := o.DyrDx(x) // target slope controlled by the reference curve
	return o.λi + (λt-o.λi)*math.Exp(-o.α*δ)
}

// CalcL computes L = ∂f/∂x
func (o HardSoft) CalcL(x, y float64) float64 {
	δ := math.Max(0, o.Yr(x)-y)
	λt := o.DyrDx(x)
	d2 := o.D2yrDx2(x)
	return math.Exp(-o.α*δ) * (d2 + o.α*o.λi*λt - o.α*λt*λt)
}

// CalcJ computes J = ∂f/∂y
func (o HardSoft) CalcJ(x, y float64) float64 {
	δ := math.Max(0, o.Yr(x)-y)
	λt := o.DyrDx(x)
	return math.Exp(-o.α*δ) * o.α * (λt - o.λi)
}
