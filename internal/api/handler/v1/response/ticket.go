package response

import "github.com/vietanh2810/oktoberfest-api/internal/domain"

type TicketCreated struct {
	Success bool `json:"success"`
	domain.TicketOrder
}

type Health struct {
	Status string `json:"status"`
}
