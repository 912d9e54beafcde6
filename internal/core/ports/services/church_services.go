package services

import (
	"context"

	"github.com/ecclesia-hq/ecclesia_backend/internal/core/domain"
	"github.com/ecclesia-hq/ecclesia_backend/internal/dto"
)

// ChurchReaderSvc defines read operations for tenant records.
type ChurchReaderSvc interface {
	// GetChurchByID retrieves a church by ID.
	GetChurchByID(ctx context.Context, churchID string) (*domain.Church, error)

	// ListChurches retrieves every tenant. Platform-owner only at the edge.
	ListChurches(ctx context.Context) ([]domain.Church, error)

	// PlatformOverview aggregates cross-tenant counts for the owner console.
	PlatformOverview(ctx context.Context) (*dto.PlatformOverviewResponse, error)
}

// ChurchWriterSvc defines write operations on a tenant's profile.
type ChurchWriterSvc interface {
	// UpdateChurch applies a partial update to a church's profile.
	UpdateChurch(ctx context.Context, churchID string, req dto.UpdateChurchRequest) (*domain.Church, error)

	// SetCurrency switches the display currency, rescaling all stored amounts.
	// Setting the currency the church already uses is a no-op.
	SetCurrency(ctx context.Context, churchID string, target domain.CurrencyCode) (*domain.Church, error)
}

// ChurchLifecycleSvc defines the platform owner's suspend/activate controls.
type ChurchLifecycleSvc interface {
	SuspendChurch(ctx context.Context, churchID string) (*domain.Church, error)
	ActivateChurch(ctx context.Context, churchID string) (*domain.Church, error)
}

// ChurchSvcFacade combines all church-related service interfaces.
type ChurchSvcFacade interface {
	ChurchReaderSvc
	ChurchWriterSvc
	ChurchLifecycleSvc
}
