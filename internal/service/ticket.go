package service

import (
	"context"
	"fmt"

	"github.com/vietanh2810/oktoberfest-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/oktoberfest-api/internal/clock"
	"github.com/vietanh2810/oktoberfest-api/internal/domain"
)

type TicketRepository interface {
	FindAll(ctx context.Context) ([]domain.TicketOrder, error)
	Create(ctx context.Context, order domain.TicketOrder) (domain.TicketOrder, error)
}

type TicketService struct {
	repo  TicketRepository
	clock clock.Clock
}

func NewTicketService(repo TicketRepository, clk clock.Clock) *TicketService {
	return &TicketService{
		repo:  repo,
		clock: clk,
	}
}

func (s *TicketService) ListTickets(ctx context.Context) ([]domain.TicketOrder, error) {
	orders, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return orders, nil
}

func (s *TicketService) CreateTicket(ctx context.Context, req request.CreateTicketRequest) (domain.TicketOrder, error) {
	if err := req.Validate(); err != nil {
		return domain.TicketOrder{}, err
	}

	quantity, err := req.Quantity.Int()
	if err != nil {
		return domain.TicketOrder{}, err
	}

	created, err := s.repo.Create(ctx, domain.TicketOrder{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		TicketType: domain.TicketType(req.TicketType),
		Quantity:   quantity,
		Status:     domain.TicketStatusPending,
		CreatedAt:  s.clock.Now(),
	})
	if err != nil {
		return domain.TicketOrder{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}
