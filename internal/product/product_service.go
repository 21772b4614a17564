package product

import (
	"context"
	"database/sql"
	"errors"
)

type Service interface {
	List(ctx context.Context) ([]ProductResponse, error)
	Get(ctx context.Context, id int64) (ProductResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]ProductResponse, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toResponse(p))
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, id int64) (ProductResponse, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ProductResponse{}, ErrProductNotFound
		}
		return ProductResponse{}, err
	}
	return toResponse(p), nil
}
