package paycomponent

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hriscore/payroll-engine-go/internal/domain/paycomponent"
)

type CatalogServiceImpl struct {
	catalogRepo paycomponent.CatalogRepository
	logger      *slog.Logger
}

func NewCatalogService(catalogRepo paycomponent.CatalogRepository, logger *slog.Logger) paycomponent.CatalogService {
	return &CatalogServiceImpl{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

func (s *CatalogServiceImpl) CreateComponent(ctx context.Context, req paycomponent.CreatePayComponentRequest) (paycomponent.PayComponentResponse, error) {
	if err := req.Validate(); err != nil {
		return paycomponent.PayComponentResponse{}, err
	}

	def, err := req.ToDefinition()
	if err != nil {
		return paycomponent.PayComponentResponse{}, fmt.Errorf("failed to build pay component: %w", err)
	}

	created, err := s.catalogRepo.Create(ctx, def)
	if err != nil {
		return paycomponent.PayComponentResponse{}, err
	}

	s.logger.Info("pay component created",
		slog.String("id", created.ID),
		slog.String("title", created.Title),
		slog.String("kind", string(created.Kind)),
	)
	return paycomponent.ToResponse(created), nil
}

func (s *CatalogServiceImpl) GetComponent(ctx context.Context, id string) (paycomponent.PayComponentResponse, error) {
	def, err := s.catalogRepo.GetByID(ctx, id)
	if err != nil {
		return paycomponent.PayComponentResponse{}, err
	}
	return paycomponent.ToResponse(def), nil
}

func (s *CatalogServiceImpl) ListComponents(ctx context.Context, kind paycomponent.Kind) ([]paycomponent.PayComponentResponse, error) {
	defs, err := s.catalogRepo.ListActive(ctx, kind)
	if err != nil {
		return nil, err
	}

	responses := make([]paycomponent.PayComponentResponse, 0, len(defs))
	for _, def := range defs {
		responses = append(responses, paycomponent.ToResponse(def))
	}
	return responses, nil
}

func (s *CatalogServiceImpl) UpdateComponent(ctx context.Context, id string, req paycomponent.CreatePayComponentRequest) (paycomponent.PayComponentResponse, error) {
	if err := req.Validate(); err != nil {
		return paycomponent.PayComponentResponse{}, err
	}

	existing, err := s.catalogRepo.GetByID(ctx, id)
	if err != nil {
		return paycomponent.PayComponentResponse{}, err
	}

	def, err := req.ToDefinition()
	if err != nil {
		return paycomponent.PayComponentResponse{}, fmt.Errorf("failed to build pay component: %w", err)
	}
	def.ID = existing.ID
	def.Kind = existing.Kind

	updated, err := s.catalogRepo.Update(ctx, def)
	if err != nil {
		return paycomponent.PayComponentResponse{}, err
	}

	s.logger.Info("pay component updated", slog.String("id", updated.ID))
	return paycomponent.ToResponse(updated), nil
}

func (s *CatalogServiceImpl) DeleteComponent(ctx context.Context, id string) error {
	if err := s.catalogRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("pay component deleted", slog.String("id", id))
	return nil
}
