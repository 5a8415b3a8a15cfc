// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrAssetAlreadyExists   = ExistsError("asset already exists")
	ErrAssetNotFound        = NotFoundError("asset not found")
	ErrDatabaseVersion      = InvalidError("database version is newer than supported")
	ErrDecodeFailure        = RecordError("record decode failure")
	ErrDuplicateKey         = ExistsError("duplicate key")
	ErrEmptyAssetId         = InvalidError("asset id is empty")
	ErrInvalidBackend       = InvalidError("invalid database backend")
	ErrInvalidConfiguration = InvalidError("configuration file must return a table")
	ErrInvalidCount         = InvalidError("invalid count")
	ErrInvalidCursor        = InvalidError("invalid cursor")
	ErrInvalidDigest        = LengthError("invalid digest length")
	ErrInvalidKey           = InvalidError("invalid key")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidNumber        = InvalidError("invalid number")
	ErrInvalidRecord        = RecordError("invalid record")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrInvalidVersionLength = LengthError("invalid database version length")
	ErrMissingField         = RecordError("missing record field")
	ErrNegativeSize         = InvalidError("size is negative")
	ErrReadOnly             = ProcessError("database is read only")
	ErrSnapshotFormat       = RecordError("unsupported snapshot format")
	ErrSnapshotOrder        = RecordError("snapshot keys are not in order")
	ErrSnapshotTruncated    = LengthError("snapshot is truncated")
	ErrTransactionClosed    = ProcessError("transaction already closed")
	ErrTrailingData         = RecordError("trailing data after record")
	ErrUnknownBackend       = NotFoundError("unknown database backend")
	ErrWrongFieldType       = RecordError("wrong record field type")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
