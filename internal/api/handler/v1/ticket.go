package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/oktoberfest-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/oktoberfest-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/oktoberfest-api/internal/domain"
)

type TicketService interface {
	ListTickets(ctx context.Context) ([]domain.TicketOrder, error)
	CreateTicket(ctx context.Context, req request.CreateTicketRequest) (domain.TicketOrder, error)
}

type TicketHandler struct {
	svc TicketService
}

func NewTicketHandler(svc TicketService) *TicketHandler {
	return &TicketHandler{
		svc: svc,
	}
}

// HandleGetTickets godoc
// @Summary      List ticket orders
// @Tags         tickets
// @Produce      json
// @Success      200  {array}   domain.TicketOrder
// @Failure      500  {object}  response.Err
// @Router       /tickets [get]
func (h *TicketHandler) HandleGetTickets(ctx *gin.Context) {
	orders, err := h.svc.ListTickets(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleGetTickets -> h.svc.ListTickets -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, orders)
}

// HandleCreateTicket godoc
// @Summary      Order tickets
// @Description  Validates the order and stores it with status "pending".
// @Tags         tickets
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        input  body      request.CreateTicketRequest  true  "Ticket order"
// @Success      201    {object}  response.TicketCreated
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /tickets [post]
func (h *TicketHandler) HandleCreateTicket(ctx *gin.Context) {
	var req request.CreateTicketRequest
	if err := ctx.ShouldBind(&req); err != nil {
		response.RenderErr(ctx, response.ErrTicketRejected(err))
		return
	}

	order, err := h.svc.CreateTicket(ctx.Request.Context(), req)
	if err != nil {
		var validationErr *request.ValidationError
		if errors.As(err, &validationErr) {
			response.RenderErr(ctx, response.ErrTicketRejected(validationErr))
			return
		}

		err = fmt.Errorf("HandleCreateTicket -> h.svc.CreateTicket -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, response.TicketCreated{
		Success:     true,
		TicketOrder: order,
	})
}
