package usecase

import (
	"context"

	"tradenomi-backend/internal/domain"
	"tradenomi-backend/pkg/apperror"
	"tradenomi-backend/pkg/collation"
)

type catalogUsecase struct {
	source domain.TitleSource
	sorter *collation.Sorter
}

func NewCatalogUsecase(source domain.TitleSource, sorter *collation.Sorter) domain.CatalogUsecase {
	return &catalogUsecase{source: source, sorter: sorter}
}

func (u *catalogUsecase) PositionTitles(ctx context.Context) ([]string, error) {
	titles, err := u.source.PositionTitles(ctx)
	if err != nil {
		return nil, apperror.Unavailable("Title catalog temporarily unavailable", err)
	}
	return u.sorted(titles), nil
}

func (u *catalogUsecase) DomainTitles(ctx context.Context) ([]string, error) {
	titles, err := u.source.DomainTitles(ctx)
	if err != nil {
		return nil, apperror.Unavailable("Domain catalog temporarily unavailable", err)
	}
	return u.sorted(titles), nil
}

func (u *catalogUsecase) sorted(titles map[string]string) []string {
	values := make([]string, 0, len(titles))
	for _, v := range titles {
		values = append(values, v)
	}
	u.sorter.Strings(values)
	return values
}
