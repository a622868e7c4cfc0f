// internal/intel/handler.go
package intel

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apierrors "resume-services/internal/common/errors"
	"resume-services/internal/common/logger"
)

type Handler struct {
	provider Provider
	logger   logger.Logger
}

func NewHandler(provider Provider, log logger.Logger) *Handler {
	return &Handler{
		provider: provider,
		logger:   log.WithFields(map[string]interface{}{"service": "intel-svc"}),
	}
}

func (h *Handler) Register(r *gin.Engine) {
	r.GET("/healthz", h.Health)
	r.POST("/intel/lookup_company", h.LookupCompany)
}

func (h *Handler) Health(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func (h *Handler) LookupCompany(c *gin.Context) {
	var req LookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiErr := apierrors.NewMalformedBodyError(err)
		c.JSON(apiErr.Status(), apiErr)
		return
	}

	if strings.TrimSpace(req.Domain) == "" {
		apiErr := apierrors.NewValidationError("domain is required")
		c.JSON(apiErr.Status(), apiErr)
		return
	}

	roleFamily := req.RoleFamily
	if roleFamily == "" {
		roleFamily = DefaultRoleFamily
	}

	record, err := h.provider.Lookup(c.Request.Context(), req.Domain, roleFamily)
	if err != nil {
		h.logger.Error("lookup failed", map[string]interface{}{
			"domain": req.Domain,
			"error":  err,
		})
		c.JSON(http.StatusInternalServerError, apierrors.NewStorageError(err))
		return
	}

	h.logger.Info("company lookup served", map[string]interface{}{
		"domain":     record.Domain,
		"roleFamily": record.RoleFamily,
	})

	c.JSON(http.StatusOK, record)
}
