// internal/gateway/handler.go
package gateway

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-services/internal/common/config"
	apierrors "resume-services/internal/common/errors"
	"resume-services/internal/common/httpclient"
	"resume-services/internal/common/logger"
	"resume-services/internal/common/metrics"
)

type Handler struct {
	cfg     config.GatewayConfig
	client  *httpclient.Client
	limiter *RateLimiter
	usage   *UsageStore
	logger  logger.Logger
}

func NewHandler(cfg config.GatewayConfig, client *httpclient.Client, limiter *RateLimiter, usage *UsageStore, log logger.Logger) *Handler {
	return &Handler{
		cfg:     cfg,
		client:  client,
		limiter: limiter,
		usage:   usage,
		logger:  log.WithFields(map[string]interface{}{"service": "gateway"}),
	}
}

func (h *Handler) Register(r *gin.Engine) {
	r.GET("/healthz", h.Health)

	v1 := r.Group("/v1")
	v1.Use(AuthMiddleware(h.cfg.JWTSecret), RateLimitMiddleware(h.limiter))
	v1.POST("/apply", h.Apply)
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Apply runs the pipeline: company lookup, letter drafting, resume render,
// usage accounting.
func (h *Handler) Apply(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		apiErr := apierrors.NewMalformedBodyError(err)
		c.JSON(apiErr.Status(), apiErr)
		return
	}

	if apiErr := ValidateApplyBody(body); apiErr != nil {
		c.JSON(apiErr.Status(), apiErr)
		return
	}

	var req ApplyRequest
	if err := json.Unmarshal(body, &req); err != nil {
		apiErr := apierrors.NewMalformedBodyError(err)
		c.JSON(apiErr.Status(), apiErr)
		return
	}

	ctx := c.Request.Context()
	requestID := c.GetString("requestID")

	intel, apiErr := h.lookupCompany(c, &req)
	if apiErr != nil {
		h.recordUsage(c, &req, requestID, "error")
		c.JSON(apiErr.Status(), apiErr)
		return
	}

	coverLetter := fmt.Sprintf("Dear Hiring Team at %s,\nI am excited to apply...", intel.Domain)
	brief := fmt.Sprintf("Company signals: %s", strings.Join(intel.Signals, ", "))

	var rendered renderResponse
	if err := h.client.PostJSON(ctx, h.cfg.RenderURL, renderRequest{CVJSON: req.CVJSON}, &rendered); err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues("gateway", "render-svc", "error").Inc()
		h.recordUsage(c, &req, requestID, "error")
		apiErr := apierrors.NewUpstreamError("render-svc", err)
		c.JSON(apiErr.Status(), apiErr)
		return
	}
	metrics.UpstreamRequestsTotal.WithLabelValues("gateway", "render-svc", "success").Inc()

	h.recordUsage(c, &req, requestID, "success")

	h.logger.Info("apply pipeline completed", map[string]interface{}{
		"userId":    req.UserID,
		"domain":    req.CompanyDomain,
		"requestId": requestID,
	})

	c.JSON(http.StatusOK, ApplyResponse{
		PDFURL:      rendered.PDFURL,
		CoverLetter: coverLetter,
		Brief:       brief,
	})
}

func (h *Handler) lookupCompany(c *gin.Context, req *ApplyRequest) (*intelResponse, *apierrors.APIError) {
	var intel intelResponse
	err := h.client.PostJSON(c.Request.Context(), h.cfg.IntelURL, intelRequest{
		Domain:     req.CompanyDomain,
		RoleFamily: req.RoleFamily,
	}, &intel)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues("gateway", "intel-svc", "error").Inc()
		return nil, apierrors.NewUpstreamError("intel-svc", err)
	}

	metrics.UpstreamRequestsTotal.WithLabelValues("gateway", "intel-svc", "success").Inc()
	return &intel, nil
}

// recordUsage inserts one usage row. Accounting failures are logged and
// never fail the request.
func (h *Handler) recordUsage(c *gin.Context, req *ApplyRequest, requestID, status string) {
	if h.usage == nil {
		return
	}

	err := h.usage.Record(c.Request.Context(), UsageEvent{
		UserID:    req.UserID,
		Endpoint:  "/v1/apply",
		Model:     "stub",
		Status:    status,
		RequestID: requestID,
		Metadata: map[string]interface{}{
			"company_domain": req.CompanyDomain,
			"role_family":    req.RoleFamily,
		},
	})
	if err != nil {
		h.logger.Warn("usage event write failed", map[string]interface{}{
			"userId": req.UserID,
			"error":  err,
		})
	}
}
