// internal/render/handler.go
package render

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "resume-services/internal/common/errors"
	"resume-services/internal/common/logger"
)

type Handler struct {
	renderer Renderer
	logger   logger.Logger
}

func NewHandler(renderer Renderer, log logger.Logger) *Handler {
	return &Handler{
		renderer: renderer,
		logger:   log.WithFields(map[string]interface{}{"service": "render-svc"}),
	}
}

func (h *Handler) Register(r *gin.Engine) {
	r.POST("/render/resume", h.RenderResume)
}

func (h *Handler) RenderResume(c *gin.Context) {
	var req RenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiErr := apierrors.NewMalformedBodyError(err)
		c.JSON(apiErr.Status(), apiErr)
		return
	}

	doc, err := h.renderer.Render(c.Request.Context(), req.CVJSON)
	if err != nil {
		h.logger.Error("render failed", map[string]interface{}{"error": err})
		c.JSON(http.StatusInternalServerError, apierrors.NewStorageError(err))
		return
	}

	h.logger.Info("resume rendered", map[string]interface{}{
		"pdfUrl": doc.PDFURL,
	})

	c.JSON(http.StatusOK, RenderResponse{PDFURL: doc.PDFURL})
}
