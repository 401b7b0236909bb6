package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an error for callers that need to react to its category
// (the HTTP layer maps kinds to status codes).
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConstraint
	KindTransport
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConstraint:
		return "constraint"
	case KindTransport:
		return "transport"
	default:
		return "internal"
	}
}

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrConstraint indicates that the store rejected a write (duplicate key, broken reference, check constraint).
var ErrConstraint = errors.New("constraint violation")

// ErrTransport indicates the store could not be reached or the operation timed out.
var ErrTransport = errors.New("store unavailable")

// ErrInternal is the catch-all for unexpected failures.
var ErrInternal = errors.New("internal error")

// Error codes exposed to API clients.
const (
	CodeInsufficientLedgerItems   = "ERR_INSUFFICIENT_LEDGER_ITEMS"
	CodeInvalidIdentifierFormat   = "ERR_INVALID_IDENTIFIER"
	CodeUnsupportedFilterOperator = "ERR_UNSUPPORTED_FILTER_OPERATOR"
	CodeMissingParameters         = "ERR_MISSING_PARAMETERS"
	CodeUnbalancedVoucher         = "ERR_UNBALANCED_VOUCHER"
	CodeNoInventoryItem           = "ERR_NO_INVENTORY_ITEM"
	CodeNoVoucher                 = "ERR_NO_VOUCHER"
)

// Coded sentinels. Match with errors.Is against any AppError carrying the same code.
var (
	ErrInsufficientLedgerItems   = &AppError{Kind: KindValidation, Code: CodeInsufficientLedgerItems, Message: "a voucher needs at least two items"}
	ErrInvalidIdentifierFormat   = &AppError{Kind: KindValidation, Code: CodeInvalidIdentifierFormat, Message: "invalid identifier format"}
	ErrUnsupportedFilterOperator = &AppError{Kind: KindValidation, Code: CodeUnsupportedFilterOperator, Message: "unsupported filter operator"}
	ErrMissingParameters         = &AppError{Kind: KindValidation, Code: CodeMissingParameters, Message: "date ranges need both a start and an end"}
	ErrUnbalancedVoucher         = &AppError{Kind: KindValidation, Code: CodeUnbalancedVoucher, Message: "voucher debits and credits do not balance"}
	ErrNoInventoryItem           = &AppError{Kind: KindNotFound, Code: CodeNoInventoryItem, Message: "inventory item not found"}
	ErrNoVoucher                 = &AppError{Kind: KindNotFound, Code: CodeNoVoucher, Message: "voucher not found"}
)

// AppError is the error type returned across layers.
type AppError struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches kind sentinels (ErrNotFound, ErrValidation, ...) and other
// AppErrors carrying the same code.
func (e *AppError) Is(target error) bool {
	if t, ok := target.(*AppError); ok {
		return t.Code != "" && t.Code == e.Code
	}
	return target == kindSentinel(e.Kind)
}

// With returns a copy of a coded sentinel carrying extra detail and a cause.
func (e *AppError) With(detail string, err error) *AppError {
	msg := e.Message
	if detail != "" {
		msg = e.Message + ": " + detail
	}
	return &AppError{Kind: e.Kind, Code: e.Code, Message: msg, Err: err}
}

func kindSentinel(k Kind) error {
	switch k {
	case KindValidation:
		return ErrValidation
	case KindNotFound:
		return ErrNotFound
	case KindConstraint:
		return ErrConstraint
	case KindTransport:
		return ErrTransport
	default:
		return ErrInternal
	}
}

// NewAppError creates an AppError of the given kind wrapping err.
func NewAppError(kind Kind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

// NewNotFoundError creates a NotFound AppError for the named resource.
func NewNotFoundError(resource string) *AppError {
	return &AppError{Kind: KindNotFound, Message: resource + " not found"}
}

// NewValidationError creates a Validation AppError.
func NewValidationError(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

// KindOf reports the Kind of the first AppError in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	switch {
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrConstraint):
		return KindConstraint
	case errors.Is(err, ErrTransport):
		return KindTransport
	}
	return KindInternal
}

// CodeOf reports the code of the first coded AppError in err's chain.
func CodeOf(err error) string {
	for err != nil {
		var appErr *AppError
		if !errors.As(err, &appErr) {
			return ""
		}
		if appErr.Code != "" {
			return appErr.Code
		}
		err = appErr.Err
	}
	return ""
}
