package services

import "errors"

// Recoverable storefront errors. Each one terminates a single user action
// and is surfaced through the notification channel; none aborts the process.
var (
	// ErrUnknownProduct rejects an add-to-cart whose id is missing from the
	// catalog.
	ErrUnknownProduct = errors.New("unknown product")

	// ErrEmptyCart blocks checkout when the cart has no items.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrIncompleteInput covers missing or syntactically invalid booking
	// fields, including an unparsable date.
	ErrIncompleteInput = errors.New("incomplete booking input")

	// ErrPastDate rejects appointment dates before today's calendar date.
	ErrPastDate = errors.New("appointment date is in the past")

	// ErrUnknownService rejects bookings whose service id is not in the
	// catalog.
	ErrUnknownService = errors.New("unknown service")
)
