package health

import (
	"context"
	"time"

	"oaknee-backend/internal/recommend"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// CatalogSource reports the exercises available for ranking.
type CatalogSource interface {
	Catalog(ctx context.Context) ([]recommend.Exercise, error)
}

// Status is the health payload.
type Status struct {
	OK          bool   `json:"ok"`
	Database    string `json:"database"`
	CatalogSize int    `json:"catalogSize"`
}

// Service encapsulates health-related checks.
type Service struct {
	DB      Pinger
	Catalog CatalogSource
	Timeout time.Duration
}

// NewService constructs a new health service. db may be nil when running on memory repositories.
func NewService(db Pinger, catalog CatalogSource) *Service {
	return &Service{DB: db, Catalog: catalog, Timeout: 2 * time.Second}
}

// Status reports database reachability and catalog size. OK is false only when
// a configured database cannot be reached.
func (s *Service) Status(ctx context.Context) Status {
	st := Status{OK: true, Database: "memory"}
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if s.DB != nil {
		if err := s.DB.PingContext(ctx); err != nil {
			st.OK = false
			st.Database = "down"
		} else {
			st.Database = "up"
		}
	}
	if s.Catalog != nil {
		if list, err := s.Catalog.Catalog(ctx); err == nil {
			st.CatalogSize = len(list)
		}
	}
	return st
}
