package client

import (
	"context"
	"net/http"

	"github.com/gofrs/uuid/v5"

	"github.com/ninebudget/ninebudget/model"
)

// InstitutionService calls the /institutions endpoints.
type InstitutionService struct {
	t *transport
}

func (s *InstitutionService) List(ctx context.Context) ([]model.Institution, error) {
	var institutions []model.Institution
	if err := s.t.do(ctx, http.MethodGet, "/institutions", nil, nil, &institutions); err != nil {
		return nil, err
	}
	return institutions, nil
}

func (s *InstitutionService) Get(ctx context.Context, id uuid.UUID) (model.Institution, error) {
	var institution model.Institution
	err := s.t.do(ctx, http.MethodGet, "/institutions/"+id.String(), nil, nil, &institution)
	return institution, err
}

func (s *InstitutionService) Create(ctx context.Context, institution model.Institution) (model.Institution, error) {
	var created model.Institution
	err := s.t.do(ctx, http.MethodPut, "/institutions", nil, institution, &created)
	return created, err
}
