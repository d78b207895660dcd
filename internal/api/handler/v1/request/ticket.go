package request

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/asaskevich/govalidator"
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/vietanh2810/oktoberfest-api/internal/domain"
)

// Quantity keeps the quantity exactly as the client sent it, so that JSON
// numbers, JSON strings and form values all go through the same coercion.
type Quantity string

func (q *Quantity) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*q = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*q = Quantity(s)
		return nil
	}

	*q = Quantity(data)
	return nil
}

// maxSafeInteger is the largest integer a float64 holds exactly (2^53 - 1).
const maxSafeInteger = 1<<53 - 1

// Int coerces the raw quantity to an integer.
func (q Quantity) Int() (int, error) {
	raw := strings.TrimSpace(string(q))
	if raw == "" {
		return 0, &ValidationError{Field: "quantity", Message: `"quantity" is required`}
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, &ValidationError{Field: "quantity", Message: `"quantity" must be a number`}
	}
	if f != math.Trunc(f) {
		return 0, &ValidationError{Field: "quantity", Message: `"quantity" must be an integer`}
	}
	if math.Abs(f) > maxSafeInteger {
		return 0, &ValidationError{Field: "quantity", Message: `"quantity" must be a safe number`}
	}

	return int(f), nil
}

type CreateTicketRequest struct {
	Name       string   `json:"name" form:"name"`
	Email      string   `json:"email" form:"email"`
	Phone      string   `json:"phone" form:"phone"`
	TicketType string   `json:"ticketType" form:"ticketType"`
	Quantity   Quantity `json:"quantity" form:"quantity"`
}

func (req *CreateTicketRequest) Validate() error {
	err := firstError(
		field("name", req.Name, required("name"), minLength("name", 2)),
		field("email", req.Email, required("email"), validation.NewStringRule(govalidator.IsEmail, `"email" must be a valid email`)),
		field("phone", req.Phone, required("phone"), minLength("phone", 10)),
		field("ticketType", req.TicketType, required("ticketType"), validation.In(ticketTypeValues()...).Error(ticketTypeMessage())),
	)
	if err != nil {
		return err
	}

	quantity, err := req.Quantity.Int()
	if err != nil {
		return err
	}

	return firstError(field("quantity", quantity, minInt("quantity", 1)))
}

func ticketTypeValues() []interface{} {
	values := make([]interface{}, 0, len(domain.TicketTypes))
	for _, t := range domain.TicketTypes {
		values = append(values, string(t))
	}
	return values
}

func ticketTypeMessage() string {
	names := make([]string, 0, len(domain.TicketTypes))
	for _, t := range domain.TicketTypes {
		names = append(names, string(t))
	}
	return fmt.Sprintf("%q must be one of [%s]", "ticketType", strings.Join(names, ", "))
}
