package service

// Kind classifies a service error for the HTTP boundary.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindConflict
	KindAuth
	KindDelivery
)

// Error is a client-facing failure. Message is safe to return to callers;
// the wrapped cause is for logs only.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// Is matches any *Error with the same kind and message, so a wrapped
// delivery failure still satisfies errors.Is(err, ErrDeliveryFailed).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind && t.Message == e.Message
}

func newError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// Domain errors for auth and reset flows.
var (
	ErrMissingFields    = newError(KindValidation, "fill all fields")
	ErrPasswordMismatch = newError(KindValidation, "passwords don't match")
	ErrEmailRequired    = newError(KindValidation, "email is required")
	ErrEmailTaken       = newError(KindConflict, "email already registered")
	ErrUserNotFound     = newError(KindNotFound, "user not found")
	ErrEmailNotFound    = newError(KindNotFound, "email not found")
	ErrWrongPassword    = newError(KindAuth, "wrong password")
	ErrInvalidCode      = newError(KindAuth, "invalid code")
	ErrDeliveryFailed   = newError(KindDelivery, "failed to send verification email")
)

func deliveryFailed(cause error) error {
	return &Error{Kind: KindDelivery, Message: ErrDeliveryFailed.Message, cause: cause}
}
