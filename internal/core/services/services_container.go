package services

import (
	portssvc "github.com/Alish-p/transport-rewrite-sub001/internal/core/ports/services"
	"github.com/Alish-p/transport-rewrite-sub001/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config) (*portssvc.ServiceContainer, error) {
	billingSvc, err := NewBillingService(cfg.TaxRules)
	if err != nil {
		return nil, err
	}

	return &portssvc.ServiceContainer{
		Billing: billingSvc,
	}, nil
}
