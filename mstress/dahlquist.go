// Copyright 2016 The CTM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mstress

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Dahlquist implements the Dahlquist test model
//
//   y(x)  = exp(-λ x)
//   dy/dx = -λ y
//
type Dahlquist struct {
	λ float64 // decay constant
}

// add model to factory
func init() {
	allocators["dahlquist"] = func() Model { return new(Dahlquist) }
}

// Init initialises model
func (o *Dahlquist) Init(prms fun.Prms) (err error) {
	if prms.Find("lam") == nil {
		return chk.Err("dahlquist: parameter %q is missing", "lam")
	}
	for _, p := range prms {
		switch p.N {
		case "lam":
			o.λ = p.V
		default:
			return chk.Err("dahlquist: parameter named %q is incorrect", p.N)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Dahlquist) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "lam", V: 1},
	}
}

// CalcF computes f = dy/dx == continuous modulus
func (o Dahlquist) CalcF(x, y float64) float64 {
	return -o.λ * y
}

// CalcL computes L = ∂f/∂x
func (o Dahlquist) CalcL(x, y float64) float64 {
	return 0
}

// CalcJ computes J = ∂f/∂y
func (o Dahlquist) CalcJ(x, y float64) float64 {
	return -o.λ
}

// CalcY computes y(x) directly
func (o Dahlquist) CalcY(x float64) float64 {
	return math.Exp(-o.λ * x)
}

// CalcD computes the consistent tangent modulus directly, from the closed-form
// backward Euler update y1 = y0 / (1 + Δx λ)
func (o Dahlquist) CalcD(y1, Δx float64) float64 {
	return -o.λ * y1 / (1.0 + Δx*o.λ)
}
