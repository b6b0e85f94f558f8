package services

import "errors"

var (
	// Cart
	ErrInvalidQuantity  = errors.New("quantity must be greater than zero")
	ErrCartItemNotFound = errors.New("item not in cart")
	ErrEmptyCart        = errors.New("cart is empty")

	// Checkout
	ErrNoCheckout              = errors.New("no checkout in progress")
	ErrSubmissionInFlight      = errors.New("a submission is already being verified")
	ErrCheckoutComplete        = errors.New("checkout already completed")
	ErrUnknownShippingOption   = errors.New("unknown shipping option")
	ErrMissingPaymentDetails   = errors.New("phone number and receipt are required")
	ErrInvalidStep             = errors.New("action not allowed on this step")
	ErrReceiptRejected         = errors.New("receipt rejected by verifier")
	ErrVerificationUnavailable = errors.New("receipt verification failed")

	// Orders
	ErrInvalidOrderStatus = errors.New("invalid order status")

	// Auth
	ErrEmailTaken         = errors.New("account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAdminRequired      = errors.New("admin session required")

	// Catalog
	ErrInvalidProduct = errors.New("invalid product")
)
