// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avl-soak - run randomised operations against many avl trees and
// verify every result
//
// the configuration is a Lua file returning a table, see
// avl-soak.conf.sample
//
//	avl-soak --config-file=avl-soak.conf
//
// SIGINT or SIGTERM stop the run early; the exit status is non-zero
// if any verification failed.
package main
