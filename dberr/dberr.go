// Package dberr holds the error taxonomy shared by pager, table, and the
// REPL: fatal system errors the process cannot recover from, and the two
// tagged execution-result errors the REPL reports inline and continues past.
package dberr

import "errors"

// Fatal wraps an unrecoverable system error: corrupt file, I/O failure,
// an out-of-bounds page number, or an attempt to descend into a node
// kind the core does not implement. The REPL prints Fatal.Error() to
// stderr and exits with a non-zero status without attempting to close
// the database: a page that failed to load or decode cannot be trusted
// to flush cleanly.
type Fatal struct {
	msg string
	err error
}

func NewFatal(msg string) *Fatal {
	return &Fatal{msg: msg}
}

func WrapFatal(msg string, err error) *Fatal {
	return &Fatal{msg: msg, err: err}
}

func (f *Fatal) Error() string {
	if f.err == nil {
		return f.msg
	}
	return f.msg + ": " + f.err.Error()
}

func (f *Fatal) Unwrap() error { return f.err }

// ErrTableFull is returned by Insert when the leaf is already at
// LEAF_NODE_MAX_CELLS capacity.
var ErrTableFull = errors.New("table is full")

// ErrDuplicateKey is returned by Insert when the id already exists.
var ErrDuplicateKey = errors.New("duplicate key")

// IsFatal reports whether err (or something it wraps) is a *Fatal.
func IsFatal(err error) bool {
	var f *Fatal
	return errors.As(err, &f)
}
