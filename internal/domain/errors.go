package domain

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidVendor      = errors.New("vendor identity cannot be resolved")
	ErrDuplicateEmail     = errors.New("user with this email already exists")
	ErrWeakPassword       = errors.New("password does not meet complexity requirements")
	ErrInvalidGSTIN       = errors.New("invalid GSTIN format")
	ErrVendorFieldsMissing = errors.New("company name and GSTIN are required for vendor registration")
	ErrProductNotFound    = errors.New("product not found")
	ErrProductNotRentable = errors.New("product is not available for rent")
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvoiceNotFound    = errors.New("invoice not found")
	ErrInvalidOrderState  = errors.New("order is not in a state that allows this action")
	ErrEmptyOrder         = errors.New("order must contain at least one item")
	ErrInvalidRentalDates = errors.New("rental end date must not be before start date")
	ErrUploadFailed       = errors.New("image upload to storage failed")
)
