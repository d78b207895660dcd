package domain

import "time"

type TicketType string

const (
	GeneralAdmission TicketType = "General Admission"
	FamilyPass       TicketType = "Family Pass"
	VIPPass          TicketType = "VIP Pass"
	EarlyBirdSpecial TicketType = "Early Bird Special"
)

// TicketTypes lists every ticket type in the order clients see them.
var TicketTypes = []TicketType{GeneralAdmission, FamilyPass, VIPPass, EarlyBirdSpecial}

const TicketStatusPending = "pending"

type TicketOrder struct {
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	TicketType TicketType `json:"ticketType"`
	Quantity   int        `json:"quantity"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"createdAt"`
}
