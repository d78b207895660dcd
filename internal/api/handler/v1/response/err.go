package response

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	msgActivityNotFound    = "Activity not found"
	msgRouteNotFound       = "Route not found"
	msgInternalServerError = "Internal server error"
	msgSomethingWentWrong  = "Something went wrong"
)

// Err is rendered as JSON unless Plain is set, in which case only the
// underlying error text is written.
type Err struct {
	Err            error `json:"-"`
	HTTPStatusCode int   `json:"-"`
	Plain          bool  `json:"-"`

	Success   *bool  `json:"success,omitempty"`
	ErrorText string `json:"error,omitempty"`
	Message   string `json:"message,omitempty"`
}

func (e *Err) Error() string {
	if e.Err == nil {
		return http.StatusText(e.HTTPStatusCode)
	}
	return e.Err.Error()
}

func (e *Err) Unwrap() error {
	return e.Err
}

func RenderErr(ctx *gin.Context, e *Err) {
	if e.HTTPStatusCode >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.Request.URL.Path),
			zap.String("request_id", requestid.Get(ctx)),
			zap.Error(e.Err),
		)
	}

	if e.Plain {
		ctx.Abort()
		ctx.String(e.HTTPStatusCode, e.Error())
		return
	}

	ctx.AbortWithStatusJSON(e.HTTPStatusCode, e)
}

// ErrBadRequestText answers with the bare error message as text/plain.
func ErrBadRequestText(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		Plain:          true,
	}
}

func ErrActivityNotFound(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusNotFound,
		Message:        msgActivityNotFound,
	}
}

func ErrRouteNotFound() *Err {
	return &Err{
		Err:            errors.New(msgRouteNotFound),
		HTTPStatusCode: http.StatusNotFound,
		ErrorText:      msgRouteNotFound,
	}
}

func ErrTicketRejected(err error) *Err {
	success := false
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		Success:        &success,
		ErrorText:      err.Error(),
	}
}

func ErrConflict(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusConflict,
		ErrorText:      err.Error(),
	}
}

// ErrInternalServerError only exposes err's text outside gin's release mode.
func ErrInternalServerError(err error) *Err {
	message := msgSomethingWentWrong
	if gin.Mode() != gin.ReleaseMode && err != nil {
		message = err.Error()
	}

	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusInternalServerError,
		ErrorText:      msgInternalServerError,
		Message:        message,
	}
}
