package assistantrun

import (
	"log/slog"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/vander-supa3/academia-nutricional/internal/config"
	"github.com/vander-supa3/academia-nutricional/pkg/apperror"
	"github.com/vander-supa3/academia-nutricional/pkg/auth"
	"github.com/vander-supa3/academia-nutricional/pkg/logger"
	"github.com/vander-supa3/academia-nutricional/pkg/sse"
)

const maxMessageLength = 8000

// RunRequest is the POST /api/ai/run body.
type RunRequest struct {
	Message string `json:"message"`
}

// Handler handles assistant run HTTP requests
type Handler struct {
	driver *Driver
	cfg    *config.Config
	log    *slog.Logger
}

// NewHandler creates a new assistant run handler
func NewHandler(driver *Driver, cfg *config.Config, log *slog.Logger) *Handler {
	return &Handler{
		driver: driver,
		cfg:    cfg,
		log:    log.With(logger.Scope("assistantrun.handler")),
	}
}

// Run handles POST /api/ai/run. Validation happens before the SSE headers
// are written, so bad requests still get JSON errors; once the stream
// starts, every outcome is reported in-band.
func (h *Handler) Run(c echo.Context) error {
	user := auth.GetUser(c)
	if user == nil {
		return apperror.ErrUnauthorized
	}

	var req RunRequest
	if err := c.Bind(&req); err != nil {
		return apperror.ErrBadRequest.WithMessage("invalid request body")
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		return apperror.ErrBadRequest.WithMessage("message is required")
	}
	if len(message) > maxMessageLength {
		return apperror.ErrBadRequest.WithMessage("message is too long")
	}

	if !h.cfg.Assistant.IsConfigured() {
		return apperror.ErrNotConfigured
	}

	release, ok := h.driver.Acquire(user.ID)
	if !ok {
		return apperror.ErrConflict.WithMessage("another assistant run is already in progress")
	}
	defer release()

	w := sse.NewWriter(c.Response())
	if err := w.Start(); err != nil {
		return apperror.ErrInternal.WithMessage("failed to start event stream")
	}

	h.driver.Run(c.Request().Context(), w, user.ID, message)
	return nil
}
