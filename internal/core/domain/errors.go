package domain

import (
	"errors"
	"fmt"
)

// Kind classifies failures surfaced to users.
type Kind string

const (
	KindValidation        Kind = "validation"
	KindInsufficientFunds Kind = "insufficient_funds"
	KindUserRejected      Kind = "user_rejected"
	KindContractReverted  Kind = "contract_reverted"
	KindTransport         Kind = "transport"
	KindNotFound          Kind = "not_found"
	KindUnknown           Kind = "unknown"
)

// User facing messages.
const (
	MsgMissingFields       = "missing fields"
	MsgInvalidAmount       = "invalid amount"
	MsgInvalidDuration     = "invalid duration"
	MsgRewardExceedsBudget = "reward exceeds budget"
	MsgInsufficientBalance = "insufficient balance"
	MsgBusy                = "another operation is in progress"
	MsgNotActive           = "campaign is not active"
	MsgNotEnded            = "campaign has not ended"
	MsgNotParticipant      = "account has not participated in this campaign"

	msgInsufficientFunds = "Insufficient funds for this transaction"
	msgUserRejected      = "Transaction rejected in wallet"
	msgReverted          = "Smart contract rejected the transaction"
	msgTransport         = "Ledger is unavailable, try again later"
	msgNotFound          = "Campaign not found"
	msgUnknown           = "Transaction failed"
)

// Error is a classified failure. Message is safe to show to users; Err
// keeps the underlying cause for logs.
type Error struct {
	Kind    Kind
	Message string
	// Reason is the revert reason extracted from the ledger, if any.
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches kind sentinels: an *Error target without a message matches
// any error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Message != "" {
		return false
	}
	return t.Kind == e.Kind
}

// Kind sentinels for errors.Is.
var (
	ErrValidation        = &Error{Kind: KindValidation}
	ErrInsufficientFunds = &Error{Kind: KindInsufficientFunds}
	ErrUserRejected      = &Error{Kind: KindUserRejected}
	ErrContractReverted  = &Error{Kind: KindContractReverted}
	ErrTransport         = &Error{Kind: KindTransport}
	ErrNotFound          = &Error{Kind: KindNotFound}
	ErrUnknown           = &Error{Kind: KindUnknown}
)

func NewValidationError(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func NewInsufficientFundsError(err error) *Error {
	return &Error{Kind: KindInsufficientFunds, Message: msgInsufficientFunds, Err: err}
}

func NewUserRejectedError(err error) *Error {
	return &Error{Kind: KindUserRejected, Message: msgUserRejected, Err: err}
}

// NewRevertedError uses the revert reason as the message when one was
// decoded.
func NewRevertedError(reason string, err error) *Error {
	msg := msgReverted
	if reason != "" {
		msg = reason
	}
	return &Error{Kind: KindContractReverted, Message: msg, Reason: reason, Err: err}
}

func NewTransportError(err error) *Error {
	return &Error{Kind: KindTransport, Message: msgTransport, Err: err}
}

func NewNotFoundError(err error) *Error {
	return &Error{Kind: KindNotFound, Message: msgNotFound, Err: err}
}

func NewUnknownError(err error) *Error {
	return &Error{Kind: KindUnknown, Message: msgUnknown, Err: err}
}

// KindOf reports the classification of err. Unclassified errors are
// KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// UserMessage returns the short message for err without leaking raw text
// from unclassified errors.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return msgUnknown
}
