// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package soak

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/avlset/fault"
)

// shared limiter for all workers, nil if unlimited
func newLimiter(perSecond float64) *rate.Limiter {
	if 0 == perSecond {
		return nil
	}
	burst := DefaultBurst
	if perSecond < float64(burst) {
		burst = int(perSecond) + 1
	}
	return rate.NewLimiter(rate.Limit(perSecond), burst)
}

// wait for a single operation slot
//
// returns false if shutdown was closed while waiting
func rateLimit(limiter *rate.Limiter, shutdown <-chan struct{}) (bool, error) {
	if nil == limiter {
		return true, nil
	}
	r := limiter.Reserve()
	if !r.OK() {
		return false, fault.ErrRateLimiting
	}
	delay := r.Delay()
	if 0 == delay {
		return true, nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-shutdown:
		r.Cancel()
		return false, nil
	case <-timer.C:
		return true, nil
	}
}
