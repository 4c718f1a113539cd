// Copyright 2016 The CTM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mstress implements one-dimensional stress-strain models and the
// computation of consistent tangent moduli
/*
 *   dy
 *   ── = f(x,y)          x: strain,  y: stress,  f: continuous modulus
 *   dx
 *
 *   backward Euler  |  y1 = y0 + Δx・f(x1,y1)          Update
 *   consistent      |  D  = dy1/dΔx                    CalcD
 *   continuous      |  D  = f(x,y)                     ContD
 */
package mstress

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// Model defines the interface for 1D stress-strain models
type Model interface {
	Init(prms fun.Prms) error   // initialises model
	GetPrms() fun.Prms          // gets (an example) of parameters
	CalcF(x, y float64) float64 // computes f = dy/dx == continuous modulus
	CalcL(x, y float64) float64 // computes L = ∂f/∂x
	CalcJ(x, y float64) float64 // computes J = ∂f/∂y
}

// Analytical defines models with a closed-form solution y(x)
type Analytical interface {
	CalcY(x float64) float64 // computes y(x) directly
}

// New returns new model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'mstress' database", name)
	}
	return allocator(), nil
}

// GetModel returns (existent or new) model
//  simfnk  -- unique simulation filename key
//  matname -- name of material
//  getnew  -- force a new allocation; i.e. do not use any model found in database
//  Note: returns nil on errors
func GetModel(simfnk, matname, modelname string, getnew bool) Model {

	// get new model, regardless whether it exists in database or not
	if getnew {
		model, err := New(modelname)
		if err != nil {
			return nil
		}
		return model
	}

	// search database
	key := io.Sf("%s_%s", simfnk, matname)
	if model, ok := _models[key]; ok {
		return model
	}

	// if not found, get new
	model, err := New(modelname)
	if err != nil {
		return nil
	}
	_models[key] = model
	return model
}

// allocators holds all available models; modelname => allocator
var allocators = map[string]func() Model{}

// _models holds pre-allocated models (internal); key => Model
var _models = map[string]Model{}
