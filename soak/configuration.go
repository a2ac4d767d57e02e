// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package soak

import (
	"github.com/bitmark-inc/avlset/fault"
)

// defaults for a configuration that does not set a value
const (
	DefaultWorkers    = 4
	DefaultSeed       = 1
	DefaultOperations = 1000000
	DefaultKeySpace   = 4096
	DefaultRate       = 0 // unlimited
	DefaultReport     = 10
	DefaultAudit      = 1000
	DefaultBurst      = 100
)

// Configuration - parameters of a soak run
type Configuration struct {
	Workers    int     `gluamapper:"workers" json:"workers"`
	Seed       int64   `gluamapper:"seed" json:"seed"`
	Operations int64   `gluamapper:"operations" json:"operations"` // total over all workers, 0 => until stopped
	KeySpace   int     `gluamapper:"key_space" json:"key_space"`   // keys are drawn from [0, KeySpace)
	Rate       float64 `gluamapper:"rate" json:"rate"`             // operations per second over all workers, 0 => unlimited
	Report     int     `gluamapper:"report" json:"report"`         // seconds between progress logs, 0 => none
	Audit      int     `gluamapper:"audit" json:"audit"`           // operations between set algebra audits, 0 => none
}

// DefaultConfiguration - a configuration with every value set to its default
func DefaultConfiguration() Configuration {
	return Configuration{
		Workers:    DefaultWorkers,
		Seed:       DefaultSeed,
		Operations: DefaultOperations,
		KeySpace:   DefaultKeySpace,
		Rate:       DefaultRate,
		Report:     DefaultReport,
		Audit:      DefaultAudit,
	}
}

// Validate - check the values are usable
func (c Configuration) Validate() error {
	if c.Workers <= 0 {
		return fault.ErrInvalidWorkerCount
	}
	if c.Operations < 0 {
		return fault.ErrInvalidOperationCount
	}
	if c.KeySpace <= 0 {
		return fault.ErrInvalidKeySpace
	}
	if c.Rate < 0 {
		return fault.ErrInvalidRate
	}
	if c.Report < 0 || c.Audit < 0 {
		return fault.ErrInvalidOperationCount
	}
	return nil
}

// share of the total operations for worker n; -1 if unlimited
func (c Configuration) quota(n int) int64 {
	if 0 == c.Operations {
		return -1
	}
	q := c.Operations / int64(c.Workers)
	if int64(n) < c.Operations%int64(c.Workers) {
		q += 1
	}
	return q
}
