// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ConflictError GenericError
type ExistsError GenericError
type InvalidError GenericError
type NotAllowedError GenericError
type NotFoundError GenericError
type NotOwnerError GenericError
type NotRegisteredError GenericError
type ProcessError GenericError
type RecordError GenericError
type TransactionError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrCertificateFileExists = ExistsError("certificate file already exists")
	ErrCommitConflict        = ConflictError("commit conflict: state changed since it was read")
	ErrDatabaseVersion       = InvalidError("database version is not supported")
	ErrInvalidIPAddress      = InvalidError("invalid IP address")
	ErrInvalidKey            = InvalidError("invalid composite key")
	ErrInvalidKeyAttribute   = InvalidError("invalid composite key attribute")
	ErrInvalidLifecycle      = InvalidError("invalid lifecycle state")
	ErrInvalidPropertyStatus = InvalidError("invalid property status")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrInvalidTransaction    = TransactionError("invalid bank transaction id")
	ErrKeyFileExists         = ExistsError("key file already exists")
	ErrMalformedRecord       = RecordError("malformed record")
	ErrMissingParameters     = InvalidError("missing parameters")
	ErrNotInitialised        = ProcessError("not initialised")
	ErrNotOwner              = NotOwnerError("user invoking this transaction is not the owner of the property")
	ErrOwnerNotFound         = NotFoundError("owner not found")
	ErrOwnerNotRegistered    = NotRegisteredError("owner not registered")
	ErrPropertyNotFound      = NotFoundError("property not found")
	ErrPurchaseNotAllowed    = NotAllowedError("property not for sale or insufficient balance")
	ErrRateLimiting          = ProcessError("rate limiting")
	ErrSellerNotFound        = NotFoundError("seller not found")
	ErrStoreClosed           = ProcessError("store is closed")
	ErrTransactionClosed     = ProcessError("transaction is closed")
	ErrTruncatedRecord       = RecordError("truncated record")
	ErrUserNotFound          = NotFoundError("user not found")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ConflictError) Error() string      { return string(e) }
func (e ExistsError) Error() string        { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e NotAllowedError) Error() string    { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e NotOwnerError) Error() string      { return string(e) }
func (e NotRegisteredError) Error() string { return string(e) }
func (e ProcessError) Error() string       { return string(e) }
func (e RecordError) Error() string        { return string(e) }
func (e TransactionError) Error() string   { return string(e) }

// determine the class of an error
func IsErrConflict(e error) bool      { _, ok := e.(ConflictError); return ok }
func IsErrExists(e error) bool        { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrNotAllowed(e error) bool    { _, ok := e.(NotAllowedError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrNotOwner(e error) bool      { _, ok := e.(NotOwnerError); return ok }
func IsErrNotRegistered(e error) bool { _, ok := e.(NotRegisteredError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool        { _, ok := e.(RecordError); return ok }
func IsErrTransaction(e error) bool   { _, ok := e.(TransactionError); return ok }

// IsConflictMessage - errors that travel over RPC arrive as plain
// strings, this recovers the retryable case on the client side
func IsConflictMessage(message string) bool {
	return ErrCommitConflict.Error() == message
}
