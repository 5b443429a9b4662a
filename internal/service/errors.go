package service

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"

	"gradescan/internal/storage"
)

// Kind classifies pipeline failures. The HTTP layer maps each kind to a status code.
type Kind int

const (
	KindInternal Kind = iota
	KindClientInput
	KindStorage
	KindFormat
)

func (k Kind) String() string {
	switch k {
	case KindClientInput:
		return "client_input"
	case KindStorage:
		return "storage"
	case KindFormat:
		return "format"
	default:
		return "internal"
	}
}

// Client facing messages.
const (
	MsgNoFileSelected = "No file selected for uploading"
	MsgStoreFailed    = "Failed to store the uploaded file"
	MsgFormatFailed   = "Failed to process the PDF file. It might be corrupt or empty."
	MsgInternal       = "An error occurred during processing"
)

// ErrUnacceptable wraps the validator's reason for a rejected document.
var ErrUnacceptable = errors.New("document not acceptable")

// Error is a typed pipeline failure. Message is safe to show to clients.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of err, or KindInternal when err is not a pipeline error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// MessageOf returns the client facing description of err.
// Internal failures carry their cause as detail; every other kind already states
// the violation in Message and never exposes the wrapped error.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Kind == KindInternal && e.Err != nil {
			return e.Error()
		}
		return e.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

func clientInput(msg string) *Error {
	return &Error{Kind: KindClientInput, Message: msg}
}

// storageFailure keeps the wrapped error for logs; the client only sees the failure class.
func storageFailure(err error) *Error {
	return &Error{
		Kind:    KindStorage,
		Message: MsgStoreFailed + ": " + storageDetail(err),
		Err:     err,
	}
}

// storageDetail names the class of a store failure without file system paths.
func storageDetail(err error) string {
	switch {
	case errors.Is(err, syscall.ENOSPC):
		return "disk full"
	case errors.Is(err, fs.ErrPermission):
		return "upload directory not writable"
	case errors.Is(err, storage.ErrPathEscape):
		return "invalid file name"
	default:
		return storage.ErrStorage.Error()
	}
}

func formatFailure(reason string) *Error {
	return &Error{
		Kind:    KindFormat,
		Message: fmt.Sprintf("%s (%s)", MsgFormatFailed, reason),
		Err:     fmt.Errorf("%w: %s", ErrUnacceptable, reason),
	}
}

func internal(v any) *Error {
	return &Error{Kind: KindInternal, Message: MsgInternal, Err: fmt.Errorf("%v", v)}
}
