package v1

import (
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/oktoberfest-api/internal/api/handler/v1/response"
)

// HandleHealthcheck godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.Health
// @Router       /health [get]
func HandleHealthcheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, response.Health{Status: "ok"})
}

// SiteHandler serves the landing page and the other files of the public directory.
type SiteHandler struct {
	publicDir string
}

func NewSiteHandler(publicDir string) *SiteHandler {
	return &SiteHandler{
		publicDir: publicDir,
	}
}

func (h *SiteHandler) HandleIndex(ctx *gin.Context) {
	h.serveFile(ctx, "index.html")
}

// HandleNoRoute serves a public file when one matches the path and otherwise
// answers with the JSON route-not-found error.
func (h *SiteHandler) HandleNoRoute(ctx *gin.Context) {
	if ctx.Request.Method != http.MethodGet && ctx.Request.Method != http.MethodHead {
		response.RenderErr(ctx, response.ErrRouteNotFound())
		return
	}

	h.serveFile(ctx, ctx.Request.URL.Path)
}

func (h *SiteHandler) serveFile(ctx *gin.Context, name string) {
	// Cleaning against "/" keeps the result inside publicDir.
	full := filepath.Join(h.publicDir, filepath.FromSlash(path.Clean("/"+name)))

	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		response.RenderErr(ctx, response.ErrRouteNotFound())
		return
	}

	ctx.File(full)
}
