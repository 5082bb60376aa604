package domain

import "context"

// TitleSource is the CRM service that owns the title catalogs. Both methods
// return id -> title maps.
type TitleSource interface {
	PositionTitles(ctx context.Context) (map[string]string, error)
	DomainTitles(ctx context.Context) (map[string]string, error)
}

type CatalogUsecase interface {
	PositionTitles(ctx context.Context) ([]string, error)
	DomainTitles(ctx context.Context) ([]string, error)
}
