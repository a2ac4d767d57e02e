// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type EmptyError GenericError
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrBrokenCount           = ProcessError("tree count does not match reachable nodes")
	ErrBrokenHeight          = ProcessError("cached node height is incorrect")
	ErrBrokenOrder           = ProcessError("keys are not in ascending order")
	ErrBrokenParentLink      = ProcessError("parent link does not match child link")
	ErrEmptyTree             = EmptyError("tree is empty")
	ErrInvalidConfigResult   = InvalidError("configuration file did not return a table")
	ErrInvalidFieldNumber    = InvalidError("field number must not be negative")
	ErrInvalidKeySpace       = InvalidError("key space must be positive")
	ErrInvalidLoggerChannel  = InvalidError("invalid logger channel")
	ErrInvalidOperationCount = InvalidError("operation count must not be negative")
	ErrInvalidRate           = InvalidError("rate must not be negative")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrInvalidWorkerCount    = InvalidError("worker count must be positive")
	ErrKeyNotFound           = NotFoundError("key not found")
	ErrMissingField          = NotFoundError("line has too few fields")
	ErrModelMismatch         = ProcessError("tree disagrees with reference model")
	ErrNotANumber            = InvalidError("key is not a number")
	ErrNotFoundConfigFile    = NotFoundError("config file is not found")
	ErrRateLimiting          = ProcessError("rate limiting")
	ErrStandardInputRepeated = InvalidError("standard input can only be read once")
	ErrTooTall               = ProcessError("tree height exceeds the AVL bound")
	ErrTypeMismatch          = InvalidError("value cannot be ordered by this tree")
	ErrUnbalanced            = ProcessError("balance factor out of range")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e EmptyError) Error() string    { return string(e) }
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrEmpty(e error) bool    { _, ok := e.(EmptyError); return ok }
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
