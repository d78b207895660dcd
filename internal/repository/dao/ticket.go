package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type TicketOrder struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `gorm:"not null"`
	Email      string `gorm:"not null"`
	Phone      string `gorm:"not null"`
	TicketType string `gorm:"not null"`
	Quantity   int    `gorm:"not null"`
	Status     string `gorm:"not null"`
	CreatedAt  time.Time
}

func (TicketOrder) TableName() string {
	return "ticket_orders"
}

type TicketDAO struct {
	db *gorm.DB
}

func NewTicketDAO(db *gorm.DB) *TicketDAO {
	return &TicketDAO{
		db: db,
	}
}

func (d *TicketDAO) FindAll(ctx context.Context) ([]TicketOrder, error) {
	orders := []TicketOrder{}

	result := d.db.WithContext(ctx).Order("id ASC").Find(&orders)
	if result.Error != nil {
		return nil, result.Error
	}

	return orders, nil
}

func (d *TicketDAO) Insert(ctx context.Context, order TicketOrder) (TicketOrder, error) {
	result := d.db.WithContext(ctx).Create(&order)
	if result.Error != nil {
		return TicketOrder{}, result.Error
	}

	return order, nil
}
