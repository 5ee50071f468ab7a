package tablecore

import "github.com/pkg/errors"

// Kind identifies one of the four recoverable error categories of §7.
// Every Kind is recoverable at file or page granularity; none of them
// should ever abort a whole dispatcher run.
type Kind int

const (
	// KindDecodeError means the decode collaborator failed to parse a
	// PDF; the caller should skip the file and log path and error.
	KindDecodeError Kind = iota
	// KindEmptyPage means a page had no characters or no rulings; the
	// caller should treat this as an empty table list, not an error.
	KindEmptyPage
	// KindDegenerateRegion means a region collapsed to an empty bbox, or
	// resolved to fewer than 3 rows, or produced no column separators;
	// the caller should discard the region and continue with others.
	KindDegenerateRegion
	// KindExportError means an export sink refused the write; the
	// caller should log and move on to the next table.
	KindExportError
)

func (k Kind) String() string {
	switch k {
	case KindDecodeError:
		return "DecodeError"
	case KindEmptyPage:
		return "EmptyPage"
	case KindDegenerateRegion:
		return "DegenerateRegion"
	case KindExportError:
		return "ExportError"
	default:
		return "Unknown"
	}
}

// CoreError wraps an underlying failure with the Kind a caller needs to
// decide how to recover, plus (via github.com/pkg/errors) a captured
// stack trace for diagnostics. KindEmptyPage errors are not really
// errors in the Go sense: FindTables returns an empty slice for a page
// with no characters or no rulings rather than an error value.
type CoreError struct {
	Kind  Kind
	cause error
}

func (e *CoreError) Error() string {
	return e.Kind.String() + ": " + e.cause.Error()
}

func (e *CoreError) Unwrap() error { return e.cause }

// NewCoreError wraps cause with kind, attaching a stack trace via
// github.com/pkg/errors so diagnostics can report where a
// DegenerateRegion or DecodeError actually originated.
func NewCoreError(kind Kind, cause error) *CoreError {
	return &CoreError{Kind: kind, cause: errors.WithStack(cause)}
}

// Wrapf builds a CoreError from a format string, matching the
// errors.Wrapf convention used elsewhere in the pack.
func Wrapf(kind Kind, format string, args ...any) *CoreError {
	return &CoreError{Kind: kind, cause: errors.Errorf(format, args...)}
}
