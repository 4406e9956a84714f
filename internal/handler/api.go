package handler

import (
	"fmt"

	"github.com/Hua202512/rundayapp/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db           *gorm.DB
	store        *service.StateStore
	ledger       *service.LedgerService
	plan         *service.PlanService
	profile      *service.ProfileService
	metrics      *service.MetricsService
	maxImageEdge int
}

// NewAPI constructs a handler set with shared services, restoring
// persisted state slices in the process.
func NewAPI(gdb *gorm.DB, maxImageEdge int) (*API, error) {
	store := service.NewStateStore(gdb)

	ledger, err := service.NewLedgerService(store)
	if err != nil {
		return nil, fmt.Errorf("init ledger service: %w", err)
	}

	plan, err := service.NewPlanService(store)
	if err != nil {
		return nil, fmt.Errorf("init plan service: %w", err)
	}

	return &API{
		db:           gdb,
		store:        store,
		ledger:       ledger,
		plan:         plan,
		profile:      service.NewProfileService(store),
		metrics:      service.NewMetricsService(),
		maxImageEdge: maxImageEdge,
	}, nil
}

// DB exposes the underlying gorm instance for legacy paths.
func (a *API) DB() *gorm.DB {
	return a.db
}
