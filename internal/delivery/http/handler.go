package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/vogiaan1904/docqueue/internal/models"
	"github.com/vogiaan1904/docqueue/internal/service"
	"github.com/vogiaan1904/docqueue/internal/token"
	"github.com/vogiaan1904/docqueue/pkg/logger"
	"github.com/vogiaan1904/docqueue/pkg/response"
)

type HTTPHandler struct {
	qSvc      service.QueueService
	proc      service.QueueProcessor
	logger    logger.Logger
	validator *validator.Validate
	tokenTTL  time.Duration
}

// NewHTTPHandler builds the queue handler. proc may be nil.
func NewHTTPHandler(qSvc service.QueueService, proc service.QueueProcessor, logger logger.Logger, tokenTTL time.Duration) *HTTPHandler {
	return &HTTPHandler{
		qSvc:      qSvc,
		proc:      proc,
		logger:    logger,
		validator: validator.New(),
		tokenTTL:  tokenTTL,
	}
}

// HealthCheck handles health check requests
func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, r, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "docqueue",
	})
}

// RegisterUser handles POST /queue/register
func (h *HTTPHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req service.UserInput
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	rank, err := h.qSvc.RegisterUser(r.Context(), service.QueueOrDefault(req.Queue), req.UserID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusCreated, service.RegisterOutput{Rank: rank})
}

// AllowUsers handles POST /queue/allow
func (h *HTTPHandler) AllowUsers(w http.ResponseWriter, r *http.Request) {
	var req service.AllowInput
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	admitted, err := h.qSvc.AllowUsers(r.Context(), service.QueueOrDefault(req.Queue), req.Count)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusOK, service.AllowOutput{
		Requested: req.Count,
		Admitted:  admitted,
	})
}

// IsAllowed handles GET /queue/allowed
func (h *HTTPHandler) IsAllowed(w http.ResponseWriter, r *http.Request) {
	queue, userID := queueParams(r)

	allowed, err := h.qSvc.IsAllowed(r.Context(), queue, userID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusOK, service.AllowedOutput{IsAllowed: allowed})
}

// GetToken handles GET /queue/token and also hands the token back as a cookie.
func (h *HTTPHandler) GetToken(w http.ResponseWriter, r *http.Request) {
	queue, userID := queueParams(r)

	tok, err := h.qSvc.GenerateToken(r.Context(), queue, userID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     token.CookieName(queue),
		Value:    tok,
		Path:     "/",
		MaxAge:   int(h.tokenTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	h.respondJSON(w, r, http.StatusOK, service.TokenOutput{Token: tok})
}

// ValidateToken handles POST /queue/validate
func (h *HTTPHandler) ValidateToken(w http.ResponseWriter, r *http.Request) {
	var req service.ValidateTokenInput
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	allowed, err := h.qSvc.VerifyAccess(r.Context(), service.QueueOrDefault(req.Queue), req.UserID, req.Token)
	if err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			h.respondJSON(w, r, http.StatusUnauthorized, service.AllowedOutput{IsAllowed: false})
			return
		}
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusOK, service.AllowedOutput{IsAllowed: allowed})
}

// GetQueueStatus handles GET /queue/status
func (h *HTTPHandler) GetQueueStatus(w http.ResponseWriter, r *http.Request) {
	queue, userID := queueParams(r)

	status, err := h.qSvc.GetQueueStatus(r.Context(), queue, userID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusOK, newStatusResponse(status))
}

// StreamQueueStatus handles GET /queue/status/stream as server-sent events.
func (h *HTTPHandler) StreamQueueStatus(w http.ResponseWriter, r *http.Request) {
	queue, userID := queueParams(r)
	if userID == "" {
		h.respondError(w, r, service.ErrInvalidUserID)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		h.respondError(w, r, errors.New("streaming unsupported"))
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ctx := r.Context()
	updates := make(chan models.QueueStatus)
	errCh := make(chan error, 1)

	go func() {
		errCh <- h.qSvc.StreamQueueStatus(ctx, queue, userID, updates)
	}()

	for {
		select {
		case status := <-updates:
			data, err := json.Marshal(newStatusResponse(status))
			if err != nil {
				h.logger.Errorf(ctx, "delivery.http.handler.StreamQueueStatus: %v", err)
				continue
			}

			if _, err := fmt.Fprintf(w, "event: status\ndata: %s\n\n", data); err != nil {
				return
			}
			flusher.Flush()

		case err := <-errCh:
			if err != nil && !errors.Is(err, context.Canceled) {
				h.logger.Errorf(ctx, "delivery.http.handler.StreamQueueStatus: %v", err)
			}
			return
		}
	}
}

// Gate handles GET /queue/gate. An admitted user holding a valid token cookie is redirected to
// redirectUrl. Admitted users are never put back in the wait set; everyone else is registered
// or shown their status.
func (h *HTTPHandler) Gate(w http.ResponseWriter, r *http.Request) {
	queue, userID := queueParams(r)
	redirectURL := r.URL.Query().Get("redirectUrl")

	if redirectURL != "" && !isRelativeRedirect(redirectURL) {
		h.respondError(w, r, errInvalidRedirect)
		return
	}

	ctx := r.Context()

	admitted, err := h.qSvc.IsAllowed(ctx, queue, userID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	if !admitted {
		status, err := h.qSvc.RegisterOrGetStatus(ctx, queue, userID)
		if err != nil {
			h.respondError(w, r, err)
			return
		}

		h.respondJSON(w, r, http.StatusOK, gateResponse{statusResponse: newStatusResponse(status)})
		return
	}

	allowed := false
	if c, err := r.Cookie(token.CookieName(queue)); err == nil {
		allowed = h.qSvc.ValidateToken(queue, userID, c.Value)
	}

	if allowed && redirectURL != "" {
		http.Redirect(w, r, redirectURL, http.StatusTemporaryRedirect)
		return
	}

	status, err := h.qSvc.GetQueueStatus(ctx, queue, userID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusOK, gateResponse{
		statusResponse: newStatusResponse(status),
		IsAllowed:      allowed,
	})
}

// GetProcessorStatus handles GET /admin/processor
func (h *HTTPHandler) GetProcessorStatus(w http.ResponseWriter, r *http.Request) {
	if h.proc == nil {
		h.respondError(w, r, errProcessorDisabled)
		return
	}

	h.respondJSON(w, r, http.StatusOK, h.proc.GetStatus())
}

// Helper functions

func queueParams(r *http.Request) (string, string) {
	q := r.URL.Query()
	return service.QueueOrDefault(q.Get("queue")), q.Get("userId")
}

func (h *HTTPHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		h.logger.Debugf(r.Context(), "Invalid request body: %v", err)
		h.respondError(w, r, errInvalidRequest)
		return false
	}

	if err := h.validator.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			details := make([]validationErrorDetail, 0, len(verrs))
			for _, fe := range verrs {
				details = append(details, validationErrorDetail{Field: fe.Field(), Rule: fe.Tag()})
			}

			if _, err := response.ErrorWithDetails(w, errInvalidRequest, details); err != nil {
				h.logger.Errorf(r.Context(), "delivery.http.handler.decodeAndValidate: %v", err)
			}
			return false
		}

		h.respondError(w, r, errInvalidRequest)
		return false
	}

	return true
}

func (h *HTTPHandler) respondJSON(w http.ResponseWriter, r *http.Request, statusCode int, data any) {
	if err := response.JSON(w, statusCode, data); err != nil {
		h.logger.Errorf(r.Context(), "delivery.http.handler.respondJSON: %v", err)
	}
}

func (h *HTTPHandler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	mapped := mapHTTPError(err)
	if mapped == nil {
		h.logger.Errorf(r.Context(), "delivery.http.handler: %s %s: %v", r.Method, r.URL.Path, err)
		if _, err := response.Error(w, err); err != nil {
			h.logger.Errorf(r.Context(), "delivery.http.handler.respondError: %v", err)
		}
		return
	}

	h.logger.Debugf(r.Context(), "Error response: %v", err)
	if _, err := response.Error(w, mapped); err != nil {
		h.logger.Errorf(r.Context(), "delivery.http.handler.respondError: %v", err)
	}
}
