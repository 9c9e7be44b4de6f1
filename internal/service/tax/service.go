package tax

import (
	"context"
	"log/slog"

	"github.com/hriscore/payroll-engine-go/internal/domain/tax"
)

type TaxServiceImpl struct {
	taxRepo tax.TaxRepository
	logger  *slog.Logger
}

func NewTaxService(taxRepo tax.TaxRepository, logger *slog.Logger) tax.TaxService {
	return &TaxServiceImpl{
		taxRepo: taxRepo,
		logger:  logger,
	}
}

func (s *TaxServiceImpl) ListFilingStatuses(ctx context.Context) ([]tax.FilingStatusResponse, error) {
	statuses, err := s.taxRepo.ListFilingStatuses(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]tax.FilingStatusResponse, 0, len(statuses))
	for _, fs := range statuses {
		responses = append(responses, tax.FilingStatusResponse{
			ID:       fs.ID,
			Name:     fs.Name,
			IsActive: fs.IsActive,
		})
	}
	return responses, nil
}

func (s *TaxServiceImpl) GetFilingStatus(ctx context.Context, id string) (tax.FilingStatusResponse, error) {
	fs, err := s.taxRepo.GetFilingStatusByID(ctx, id)
	if err != nil {
		return tax.FilingStatusResponse{}, err
	}

	brackets, err := s.taxRepo.ListBracketsByFilingStatus(ctx, fs.ID)
	if err != nil {
		return tax.FilingStatusResponse{}, err
	}

	resp := tax.FilingStatusResponse{
		ID:       fs.ID,
		Name:     fs.Name,
		IsActive: fs.IsActive,
	}
	for _, b := range brackets {
		resp.Brackets = append(resp.Brackets, tax.ToBracketResponse(b))
	}
	return resp, nil
}

func (s *TaxServiceImpl) ReplaceBrackets(ctx context.Context, req tax.ReplaceBracketsRequest) ([]tax.BracketResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.taxRepo.GetFilingStatusByID(ctx, req.FilingStatusID); err != nil {
		return nil, err
	}

	brackets := req.ToBrackets()
	if err := tax.ValidateBrackets(brackets); err != nil {
		return nil, err
	}

	replaced, err := s.taxRepo.ReplaceBrackets(ctx, req.FilingStatusID, brackets)
	if err != nil {
		return nil, err
	}

	s.logger.Info("tax brackets replaced",
		slog.String("filing_status_id", req.FilingStatusID),
		slog.Int("brackets", len(replaced)),
	)

	responses := make([]tax.BracketResponse, 0, len(replaced))
	for _, b := range replaced {
		responses = append(responses, tax.ToBracketResponse(b))
	}
	return responses, nil
}
