package errs

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Kind classifies a domain error for callers and transports.
type Kind string

// Error kinds.
const (
	KindAuthentication Kind = "AuthenticationError"
	KindAuthorisation  Kind = "AuthorisationError"
	KindValidation     Kind = "ValidationError"
	KindConflict       Kind = "ConflictError"
	KindCart           Kind = "CartError"
	KindLicensing      Kind = "LicensingConflict"
	KindPipeline       Kind = "PipelineError"
	KindNotFound       Kind = "NotFoundError"
	KindRateLimited    Kind = "RateLimited"
	KindInternal       Kind = "InternalError"
)

var kindSentinels = map[Kind]error{
	KindAuthentication: ErrUnauthenticated,
	KindAuthorisation:  ErrUnauthorized,
	KindValidation:     ErrValidation,
	KindConflict:       ErrAlreadyExists,
	KindCart:           ErrCart,
	KindLicensing:      ErrLicensingConflict,
	KindPipeline:       ErrPipeline,
	KindNotFound:       ErrNotFound,
	KindRateLimited:    ErrRateLimited,
}

// Error is a domain error with enough structure to be rendered to a user
// without leaking internal state.
type Error struct {
	Kind    Kind
	Code    string            // specific reason clients can branch on, e.g. InconsistentCurrency
	Message string            // human readable
	Details map[string]string // relevant ids
	Err     error             // cause, never rendered
}

// New builds a domain error of the given kind.
func New(kind Kind, code, msg string) *Error {
	return &Error{Kind: kind, Code: code, Message: msg}
}

// Wrap builds a domain error that keeps cause for logging and errors.Is.
func Wrap(kind Kind, code, msg string, cause error) *Error {
	return &Error{Kind: kind, Code: code, Message: msg, Err: cause}
}

// Validationf is a shorthand for validation errors.
func Validationf(format string, args ...any) *Error {
	return New(KindValidation, "InvalidInput", fmt.Sprintf(format, args...))
}

// With returns a copy of e carrying an extra detail.
func (e *Error) With(key, value string) *Error {
	cp := *e
	cp.Details = maps.Clone(e.Details)
	if cp.Details == nil {
		cp.Details = map[string]string{}
	}
	cp.Details[key] = value
	return &cp
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Kind))
	if e.Code != "" {
		b.WriteString("(")
		b.WriteString(e.Code)
		b.WriteString(")")
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	for _, k := range slices.Sorted(maps.Keys(e.Details)) {
		fmt.Fprintf(&b, " %s=%s", k, e.Details[k])
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap exposes the cause.
func (e *Error) Unwrap() error { return e.Err }

// Is matches the sentinel of e's kind, so errors.Is(err, ErrCart) holds for any cart error.
func (e *Error) Is(target error) bool {
	s, ok := kindSentinels[e.Kind]
	return ok && s == target
}

// KindOf resolves the taxonomy kind of err. Unknown errors are KindInternal.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	for _, k := range []Kind{
		KindAuthentication, KindAuthorisation, KindValidation, KindConflict,
		KindCart, KindLicensing, KindPipeline, KindNotFound, KindRateLimited,
	} {
		if errors.Is(err, kindSentinels[k]) {
			return k
		}
	}
	return KindInternal
}
