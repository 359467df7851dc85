package service

import (
	"context"

	"github.com/stemsi/curriculum-backend/internal/model"
	"github.com/stemsi/curriculum-backend/internal/repository"
)

type ExchangeService struct {
	exchangeRepo *repository.ExchangeRepository
}

func NewExchangeService(exchangeRepo *repository.ExchangeRepository) *ExchangeService {
	return &ExchangeService{exchangeRepo: exchangeRepo}
}

func (s *ExchangeService) GetByID(ctx context.Context, exchangeID string) (*model.Exchange, error) {
	return s.exchangeRepo.GetByID(ctx, exchangeID)
}

func (s *ExchangeService) List(ctx context.Context, filter model.ExchangeFilter) ([]model.Exchange, error) {
	return s.exchangeRepo.List(ctx, filter)
}

func (s *ExchangeService) Register(ctx context.Context, exchangeID string, req *model.UpsertExchangeRequest) (*model.Exchange, error) {
	exchange := &model.Exchange{
		ExchangeID: exchangeID,
		Year:       req.Year,
		Round:      req.Round,
	}
	if err := s.exchangeRepo.Upsert(ctx, exchange); err != nil {
		return nil, err
	}
	return exchange, nil
}

func (s *ExchangeService) Delete(ctx context.Context, exchangeID string) error {
	return s.exchangeRepo.Delete(ctx, exchangeID)
}
