package domain

import "errors"

var (
	// ErrInvalidSource is returned when a catalog URL or barcode is malformed
	ErrInvalidSource = errors.New("invalid source")

	// ErrFetch is returned when the catalog could not be reached or answered with a non-2xx status
	ErrFetch = errors.New("catalog fetch failed")

	// ErrExtraction marks a page that was fetched but did not carry the expected structure
	ErrExtraction = errors.New("catalog extraction degraded")

	// ErrReconciliation is returned when the identity upsert chain failed and was rolled back
	ErrReconciliation = errors.New("reconciliation failed")

	// ErrWrite is returned when price observations could not be appended
	ErrWrite = errors.New("price history write failed")

	// ErrNotFound is returned when a logical game or record does not exist
	ErrNotFound = errors.New("not found")

	// ErrNotLinked is returned when a logical game has no catalog identity to price against
	ErrNotLinked = errors.New("game is not linked to a catalog identity")

	// ErrInvalidInput is returned for a request field that fails validation
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCondition is returned for a condition outside complete, new and loose
	ErrInvalidCondition = errors.New("invalid condition")

	// ErrAlreadyLent is returned when an ownership record already has an open lending
	ErrAlreadyLent = errors.New("game is already lent")

	// ErrNotLent is returned when returning a game that is not lent out
	ErrNotLent = errors.New("game is not lent")
)
