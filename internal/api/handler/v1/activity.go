package v1

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/oktoberfest-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/oktoberfest-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/oktoberfest-api/internal/domain"
	"github.com/vietanh2810/oktoberfest-api/internal/service"
)

const imageFormField = "image"

type ActivityService interface {
	ListActivities(ctx context.Context) ([]domain.Activity, error)
	GetActivity(ctx context.Context, id uint) (domain.Activity, error)
	CreateActivity(ctx context.Context, req request.CreateActivityRequest, image *multipart.FileHeader) (domain.Activity, error)
}

type ActivityHandler struct {
	svc ActivityService
}

func NewActivityHandler(svc ActivityService) *ActivityHandler {
	return &ActivityHandler{
		svc: svc,
	}
}

// HandleGetActivities godoc
// @Summary      List activities
// @Description  Returns every activity in insertion order
// @Tags         activities
// @Produce      json
// @Success      200  {array}   domain.Activity
// @Failure      500  {object}  response.Err
// @Router       /activities [get]
func (h *ActivityHandler) HandleGetActivities(ctx *gin.Context) {
	activities, err := h.svc.ListActivities(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleGetActivities -> h.svc.ListActivities -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, activities)
}

// HandleGetActivity godoc
// @Summary      Get an activity
// @Tags         activities
// @Produce      json
// @Param        id   path      int  true  "Activity ID"
// @Success      200  {object}  domain.Activity
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /activities/{id} [get]
func (h *ActivityHandler) HandleGetActivity(ctx *gin.Context) {
	// A malformed id cannot match any activity.
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrActivityNotFound(fmt.Errorf("invalid activity ID: %w", err)))
		return
	}

	activity, err := h.svc.GetActivity(ctx.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrActivityNotFound) {
			response.RenderErr(ctx, response.ErrActivityNotFound(err))
			return
		}

		err = fmt.Errorf("HandleGetActivity -> h.svc.GetActivity -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, activity)
}

// HandleCreateActivity godoc
// @Summary      Create an activity
// @Description  Accepts multipart/form-data with an optional "image" file, or a JSON body without image.
// @Tags         activities
// @Accept       mpfd,json
// @Produce      json
// @Param        name             formData  string  true   "Name, at least 3 characters"
// @Param        description      formData  string  true   "Description, at least 10 characters"
// @Param        category         formData  string  true   "Category"
// @Param        price_range      formData  string  true   "Price range"
// @Param        popularity       formData  string  true   "Popularity"
// @Param        dietary_options  formData  string  false  "Dietary options, defaults to N/A"
// @Param        image            formData  file    false  "Activity image"
// @Success      200  {object}  domain.Activity
// @Failure      400  {string}  string  "first validation error"
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /activities [post]
func (h *ActivityHandler) HandleCreateActivity(ctx *gin.Context) {
	var req request.CreateActivityRequest
	if err := ctx.ShouldBind(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequestText(err))
		return
	}

	var image *multipart.FileHeader
	if strings.HasPrefix(ctx.ContentType(), "multipart/form-data") {
		file, err := ctx.FormFile(imageFormField)
		switch {
		case err == nil:
			image = file
		case !errors.Is(err, http.ErrMissingFile):
			response.RenderErr(ctx, response.ErrBadRequestText(err))
			return
		}
	}

	activity, err := h.svc.CreateActivity(ctx.Request.Context(), req, image)
	if err != nil {
		var validationErr *request.ValidationError
		switch {
		case errors.As(err, &validationErr):
			response.RenderErr(ctx, response.ErrBadRequestText(validationErr))
		case errors.Is(err, service.ErrInvalidImageName), errors.Is(err, service.ErrImageTooLarge):
			response.RenderErr(ctx, response.ErrBadRequestText(err))
		case errors.Is(err, service.ErrActivityIDConflict):
			response.RenderErr(ctx, response.ErrConflict(service.ErrActivityIDConflict))
		default:
			err = fmt.Errorf("HandleCreateActivity -> h.svc.CreateActivity -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, activity)
}
