package common

import (
	"errors"
	"fmt"
)

// RejectKind labels why the store refused a single record. It only feeds
// diagnostics; every kind is handled the same way by callers.
type RejectKind int

const (
	RejectOther RejectKind = iota
	RejectDuplicate
	RejectForeignKey
	RejectMalformed
)

func (k RejectKind) String() string {
	switch k {
	case RejectDuplicate:
		return "duplicate"
	case RejectForeignKey:
		return "foreign_key"
	case RejectMalformed:
		return "malformed"
	default:
		return "other"
	}
}

// RejectError is a recoverable, per-record refusal from the store. Errors that
// are not RejectErrors (lost connections, cancelled contexts) are fatal.
type RejectError struct {
	Table string
	Kind  RejectKind
	Err   error
}

func (e *RejectError) Error() string {
	return fmt.Sprintf("insert into %s rejected (%s): %v", e.Table, e.Kind, e.Err)
}

func (e *RejectError) Unwrap() error {
	return e.Err
}

func Reject(table string, kind RejectKind, err error) error {
	return &RejectError{Table: table, Kind: kind, Err: err}
}

// AsRejection reports whether err carries a RejectError anywhere in its chain.
func AsRejection(err error) (*RejectError, bool) {
	var rej *RejectError
	if errors.As(err, &rej) {
		return rej, true
	}
	return nil, false
}

func IsDuplicate(err error) bool {
	rej, ok := AsRejection(err)
	return ok && rej.Kind == RejectDuplicate
}
