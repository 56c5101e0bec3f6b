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

// program errors - codes are part of the wire contract, see code.go
var (
	ErrIncorrectAuthority = RecordError("incorrect authority")
	ErrOverflow           = RecordError("calculation overflow")
)

// common errors - keep in alphabetic order
var (
	ErrAccountAlreadyInUse           = ExistsError("account already in use")
	ErrAccountAlreadyInitialized     = ExistsError("account already initialized")
	ErrAccountBorrowFailed           = ProcessError("account data already borrowed")
	ErrAccountDataTooSmall           = LengthError("account data too small")
	ErrAccountNotFound               = NotFoundError("account not found")
	ErrAlreadyInitialised            = ProcessError("already initialised")
	ErrCannotDecodeAccount           = InvalidError("cannot decode account")
	ErrCannotDecodePrivateKey        = InvalidError("cannot decode private key")
	ErrCannotDecodeSeed              = InvalidError("cannot decode seed")
	ErrCertificateFileAlreadyExists  = ExistsError("certificate file already exists")
	ErrChecksumMismatch              = ProcessError("checksum mismatch")
	ErrConfigurationNotTable         = InvalidError("configuration did not return a table")
	ErrCryptoFailed                  = InvalidError("encryption or decryption failed")
	ErrDatabaseIsNotSet              = ProcessError("database is not set")
	ErrDuplicateTransaction          = ExistsError("transaction already processed")
	ErrExternalAccountBalanceSpend   = ProcessError("external account balance spend")
	ErrExternalAccountDataModified   = ProcessError("external account data modified")
	ErrIdentityFileAlreadyExists     = ExistsError("identity file already exists")
	ErrIdentityNameAlreadyExists     = ExistsError("identity name already exists")
	ErrIdentityNameNotFound          = NotFoundError("identity name not found")
	ErrIncorrectProgramId            = InvalidError("incorrect program id")
	ErrInsufficientFunds             = InvalidError("insufficient funds")
	ErrInvalidAccountData            = InvalidError("invalid account data")
	ErrInvalidArgument               = InvalidError("invalid argument")
	ErrInvalidCount                  = InvalidError("invalid count")
	ErrInvalidInstructionData        = InvalidError("invalid instruction data")
	ErrInvalidIpAddress              = InvalidError("invalid IP address")
	ErrInvalidKeyLength              = LengthError("invalid key length")
	ErrInvalidKeyType                = InvalidError("invalid key type")
	ErrInvalidLoggerChannel          = InvalidError("invalid logger channel")
	ErrInvalidPasswordLength         = LengthError("password length is too short")
	ErrInvalidRealloc                = LengthError("invalid account data reallocation")
	ErrInvalidSaltLength             = LengthError("invalid salt length")
	ErrInvalidSeedHeader             = InvalidError("invalid seed header")
	ErrInvalidSeedLength             = LengthError("invalid seed length")
	ErrInvalidSignature              = InvalidError("invalid signature")
	ErrInvalidStructPointer          = InvalidError("invalid struct pointer")
	ErrKeyFileAlreadyExists          = ExistsError("key file already exists")
	ErrMissingParameters             = InvalidError("missing parameters")
	ErrMissingRequiredSignature      = InvalidError("missing required signature")
	ErrModifiedProgramId             = ProcessError("account owner modified")
	ErrNotAPrivateKey                = InvalidError("not a private key")
	ErrNotAPublicKey                 = InvalidError("not a public key")
	ErrNotEnoughAccountKeys          = NotFoundError("not enough account keys")
	ErrNotInitialised                = ProcessError("not initialised")
	ErrNotTransactionId              = InvalidError("not a transaction id")
	ErrPasswordMismatch              = InvalidError("passwords do not match")
	ErrRateLimiting                  = InvalidError("rate limiting")
	ErrReadonlyBalanceChanged        = ProcessError("readonly account balance changed")
	ErrReadonlyDataModified          = ProcessError("readonly account data modified")
	ErrReceiptNotFound               = NotFoundError("receipt not found")
	ErrTooManySignatures             = LengthError("too many signatures")
	ErrTransactionInUse              = ProcessError("transaction already in use")
	ErrTransactionIsNil              = InvalidError("transaction is nil")
	ErrUnbalancedInstruction         = ProcessError("sum of account balances before and after instruction do not match")
	ErrUninitializedAccount          = InvalidError("uninitialized account")
	ErrWrongDatabaseVersion          = ProcessError("wrong database version")
	ErrWrongPassword                 = InvalidError("wrong password")
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
