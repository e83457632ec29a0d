package apperrors

import "errors"

// ErrNotFound indicates that a requested resource (product, sheet, row)
// could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInsufficientStock indicates a sale was rejected because the product
// does not hold enough stock. A business rejection, not an I/O failure.
var ErrInsufficientStock = errors.New("insufficient stock")

// ErrStockLimit indicates a purchase would push stock past the maximum
// representable value for the field.
var ErrStockLimit = errors.New("stock limit exceeded")

// ErrStoreWrite indicates an append/update/delete against the tabular
// store failed.
var ErrStoreWrite = errors.New("store write failed")

// ErrTimeout indicates an outbound call exceeded its deadline. The store
// mutation may or may not have completed; callers should treat it as
// retryable.
var ErrTimeout = errors.New("request timed out")

// ErrRateLimited indicates the local admission control rejected the call
// before any I/O was attempted.
var ErrRateLimited = errors.New("rate limit exceeded")

// ErrInternal is the catch-all for failures that must never leak detail
// to the caller.
var ErrInternal = errors.New("internal error")
