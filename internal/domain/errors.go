package domain

import (
	"errors"
	"fmt"
)

// Common domain errors
var (
	ErrUnknownStatus = errors.New("unknown payment status")
	ErrUnknownMethod = errors.New("unknown payment method")
)

// ParsePaymentStatus converts a raw string into a PaymentStatus,
// rejecting values outside the closed set.
func ParsePaymentStatus(raw string) (PaymentStatus, error) {
	status := PaymentStatus(raw)
	if !status.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
	}
	return status, nil
}

// ParsePaymentMethod converts a raw string into a PaymentMethod,
// rejecting values outside the closed set.
func ParsePaymentMethod(raw string) (PaymentMethod, error) {
	method := PaymentMethod(raw)
	if !method.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownMethod, raw)
	}
	return method, nil
}
