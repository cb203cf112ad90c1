// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised        = ProcessError("already initialised")
	CapNotSet                 = NotFoundError("cap has not been set")
	ExceededCap               = InvalidError("exceeded cap")
	IncorrectOwner            = InvalidError("incorrect owner")
	InsufficientAllowance     = InvalidError("insufficient allowance")
	InsufficientApproval      = InvalidError("insufficient approval")
	InsufficientBalance       = InvalidError("insufficient balance")
	InvalidAccount            = InvalidError("invalid account identifier")
	InvalidApprover           = InvalidError("invalid approver")
	InvalidCap                = InvalidError("invalid cap")
	InvalidLiveUntilLedger    = InvalidError("invalid live until ledger")
	LessThanZero              = InvalidError("amount is less than zero")
	MathOverflow              = ProcessError("math overflow")
	MigrationNotAllowed       = ProcessError("migration not allowed")
	NonExistentToken          = NotFoundError("non-existent token")
	NotAuthorised             = InvalidError("not authorised")
	NotInitialised            = ProcessError("not initialised")
	RollbackNotAllowed        = ProcessError("rollback not allowed")
	TokenIDInUse              = ExistsError("token id already in use")
	TokenIDsAreDepleted       = ProcessError("token ids are depleted")
	TokenNotFoundInGlobalList = NotFoundError("token not found in global list")
	TokenNotFoundInOwnerList  = NotFoundError("token not found in owner list")
	UnsetMetadata             = NotFoundError("metadata has not been set")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
