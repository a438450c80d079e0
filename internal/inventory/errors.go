package inventory

import "errors"

// ErrInvalidQuantity is returned when a lot or sale quantity is not strictly
// positive.
var ErrInvalidQuantity = errors.New("quantity must be greater than zero")

// ErrInsufficientStock is returned when a sale would take stock below zero.
var ErrInsufficientStock = errors.New("insufficient stock to complete sale")

// ErrMissingLocation is returned when a new item is created without a location.
var ErrMissingLocation = errors.New("location is required for a new item")
