package usecase

import (
	"errors"
	"fmt"
)

// Error kinds. Every specific error below wraps exactly one of them so callers
// can match either the precise failure or its kind with errors.Is.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)

var (
	ErrUserNotFound         = fmt.Errorf("user %w", ErrNotFound)
	ErrClientNotFound       = fmt.Errorf("client %w", ErrNotFound)
	ErrVehicleNotFound      = fmt.Errorf("vehicle %w", ErrNotFound)
	ErrOrderNotFound        = fmt.Errorf("order %w", ErrNotFound)
	ErrItemNotFound         = fmt.Errorf("item %w", ErrNotFound)
	ErrChecklistRowNotFound = fmt.Errorf("checklist row %w", ErrNotFound)
)

var (
	ErrInvalidEmail            = fmt.Errorf("%w: invalid email", ErrValidation)
	ErrInvalidPassword         = fmt.Errorf("%w: password must have at least 6 characters", ErrValidation)
	ErrInvalidClientName       = fmt.Errorf("%w: client name is required", ErrValidation)
	ErrInvalidClientPhone      = fmt.Errorf("%w: client phone is required", ErrValidation)
	ErrInvalidVehicle          = fmt.Errorf("%w: plate, make and model are required", ErrValidation)
	ErrInvalidVehicleYear      = fmt.Errorf("%w: invalid vehicle year", ErrValidation)
	ErrVehicleClientMismatch   = fmt.Errorf("%w: vehicle does not belong to client", ErrValidation)
	ErrInvalidOdometer         = fmt.Errorf("%w: odometer must not be negative", ErrValidation)
	ErrInvalidFuelLevel        = fmt.Errorf("%w: fuel level must be between 0 and 100", ErrValidation)
	ErrInvalidDeliveryEstimate = fmt.Errorf("%w: delivery estimate must be YYYY-MM-DD", ErrValidation)
	ErrInvalidChecklist        = fmt.Errorf("%w: checklist item label is required", ErrValidation)
	ErrChecklistAlreadySeeded  = fmt.Errorf("%w: checklist already seeded", ErrConflict)
	ErrInvalidPhotoKind        = fmt.Errorf("%w: photo kind must be antes, durante or depois", ErrValidation)
	ErrInvalidPhotoURL         = fmt.Errorf("%w: photo url is required", ErrValidation)
	ErrInvalidItemKind         = fmt.Errorf("%w: item kind must be peca or servico", ErrValidation)
	ErrInvalidItemDescription  = fmt.Errorf("%w: item description is required", ErrValidation)
	ErrInvalidItemQuantity     = fmt.Errorf("%w: item quantity must be positive", ErrValidation)
	ErrInvalidItemUnitPrice    = fmt.Errorf("%w: item unit price must be positive", ErrValidation)
	ErrInvalidLaborValue       = fmt.Errorf("%w: labor value must be a non-negative number", ErrValidation)
	ErrInvalidOrderStatus      = fmt.Errorf("%w: unknown order status", ErrValidation)
	ErrInvalidChargeAmount     = fmt.Errorf("%w: order total must be positive to be charged", ErrValidation)
	ErrInvalidPaymentMethod    = fmt.Errorf("%w: payment_method_id is required", ErrValidation)
)

var (
	ErrEmailAlreadyRegistered = fmt.Errorf("%w: email already registered", ErrConflict)
	ErrOrderAlreadyPaid       = fmt.Errorf("%w: order already paid", ErrConflict)
	ErrChargeInProgress       = fmt.Errorf("%w: a charge for this order is already in progress", ErrConflict)
	ErrOrderTotalChanged      = fmt.Errorf("%w: order total changed while the charge was processed", ErrConflict)
)

// Payment gateway failures. Rejections caused by the request are validation
// errors; the other two are server side and keep no kind so they map to 5xx.
var (
	ErrPaymentGatewayBadRequest       = fmt.Errorf("%w: payment gateway rejected the request", ErrValidation)
	ErrPaymentGatewayCustomerNotFound = fmt.Errorf("%w: payer not found at the payment gateway", ErrValidation)
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
)

// ErrInvalidCredentials is deliberately not a validation error: it maps to 401.
var ErrInvalidCredentials = errors.New("invalid credentials")
