package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/oktoberfest-api/internal/domain"
	"github.com/vietanh2810/oktoberfest-api/internal/repository/dao"
)

type TicketDAO interface {
	FindAll(ctx context.Context) ([]dao.TicketOrder, error)
	Insert(ctx context.Context, order dao.TicketOrder) (dao.TicketOrder, error)
}

type TicketRepository struct {
	dao TicketDAO
}

func NewTicketRepository(dao TicketDAO) *TicketRepository {
	return &TicketRepository{
		dao: dao,
	}
}

func (r *TicketRepository) FindAll(ctx context.Context) ([]domain.TicketOrder, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	orders := make([]domain.TicketOrder, 0, len(found))
	for _, o := range found {
		orders = append(orders, r.daoToDomain(o))
	}

	return orders, nil
}

func (r *TicketRepository) Create(ctx context.Context, order domain.TicketOrder) (domain.TicketOrder, error) {
	created, err := r.dao.Insert(ctx, dao.TicketOrder{
		Name:       order.Name,
		Email:      order.Email,
		Phone:      order.Phone,
		TicketType: string(order.TicketType),
		Quantity:   order.Quantity,
		Status:     order.Status,
		CreatedAt:  order.CreatedAt,
	})
	if err != nil {
		return domain.TicketOrder{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *TicketRepository) daoToDomain(o dao.TicketOrder) domain.TicketOrder {
	return domain.TicketOrder{
		Name:       o.Name,
		Email:      o.Email,
		Phone:      o.Phone,
		TicketType: domain.TicketType(o.TicketType),
		Quantity:   o.Quantity,
		Status:     o.Status,
		CreatedAt:  o.CreatedAt.UTC(),
	}
}
