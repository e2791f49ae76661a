// Package errcode enumerates error codes used across GNtaxa.
package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Preflight errors
	OutputExistsError
	InputMissingError

	// Dump parsing errors
	DumpOpenError
	DumpRecordError
	DuplicateNodeError
	UnknownRankError
	UnknownNameClassError

	// Pipeline errors
	RankConflictError
	NameMissingError
	NameSeparatorError
	NameCollisionError

	// Blacklist configuration errors
	BlacklistParseError
	BlacklistEntryError

	// Output errors
	WriteOutputError
	SQLiteCreateError
	SQLiteInsertError
)
