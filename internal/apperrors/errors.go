package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller is authenticated but lacks permission for the action.
var ErrForbidden = errors.New("forbidden")

// ErrPendingApproval indicates the account exists but has not been approved yet.
var ErrPendingApproval = errors.New("account pending approval")

// ErrChurchSuspended indicates the tenant church has been suspended by the platform owner.
var ErrChurchSuspended = errors.New("church suspended")
