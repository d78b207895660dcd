package dao

import (
	"context"
	"sync"
)

// MemoryActivityDAO keeps activities in process memory, in insertion order.
type MemoryActivityDAO struct {
	mu         sync.RWMutex
	activities []Activity
}

func NewMemoryActivityDAO() *MemoryActivityDAO {
	return &MemoryActivityDAO{
		activities: []Activity{},
	}
}

func (d *MemoryActivityDAO) FindAll(_ context.Context) ([]Activity, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	activities := make([]Activity, len(d.activities))
	copy(activities, d.activities)

	return activities, nil
}

func (d *MemoryActivityDAO) FindByID(_ context.Context, id uint) (Activity, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, a := range d.activities {
		if a.ID == id {
			return a, nil
		}
	}

	return Activity{}, ErrActivityNotFound
}

func (d *MemoryActivityDAO) InsertNext(_ context.Context, activity Activity) (Activity, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var maxID uint
	for _, a := range d.activities {
		if a.ID > maxID {
			maxID = a.ID
		}
	}

	activity.ID = maxID + 1
	d.activities = append(d.activities, activity)

	return activity, nil
}

func (d *MemoryActivityDAO) Seed(_ context.Context, activities []Activity) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.activities) > 0 {
		return nil
	}
	d.activities = append(d.activities, activities...)

	return nil
}

// MemoryTicketDAO is an append-only in-memory log of ticket orders.
type MemoryTicketDAO struct {
	mu     sync.RWMutex
	orders []TicketOrder
}

func NewMemoryTicketDAO() *MemoryTicketDAO {
	return &MemoryTicketDAO{
		orders: []TicketOrder{},
	}
}

func (d *MemoryTicketDAO) FindAll(_ context.Context) ([]TicketOrder, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	orders := make([]TicketOrder, len(d.orders))
	copy(orders, d.orders)

	return orders, nil
}

func (d *MemoryTicketDAO) Insert(_ context.Context, order TicketOrder) (TicketOrder, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	order.ID = uint(len(d.orders) + 1)
	d.orders = append(d.orders, order)

	return order, nil
}
