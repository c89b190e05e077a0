package errors

import stderrors "errors"

// New, Is, As and Join forward to the standard library so callers importing
// this package do not also need an alias for the standard one.

func New(text string) error { return stderrors.New(text) }

func Is(err, target error) bool { return stderrors.Is(err, target) }

func As(err error, target any) bool { return stderrors.As(err, target) }

func Join(errs ...error) error { return stderrors.Join(errs...) }
