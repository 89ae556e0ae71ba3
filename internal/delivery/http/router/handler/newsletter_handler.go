package handler

import (
	"log/slog"
	"net/http"

	"boutique/internal/delivery/http/response"
	"boutique/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NewsletterHandler holds dependencies for newsletter-related handlers.
type NewsletterHandler struct {
	uc     usecase.NewsletterUsecase
	logger *slog.Logger
}

// NewNewsletterHandler is the constructor for NewsletterHandler, injected by Fx.
func NewNewsletterHandler(uc usecase.NewsletterUsecase, logger *slog.Logger) *NewsletterHandler {
	return &NewsletterHandler{
		uc:     uc,
		logger: logger,
	}
}

type subscribeRequest struct {
	Email string `json:"email"`
}

// Subscribe handles the newsletter signup request.
func (h *NewsletterHandler) Subscribe(c echo.Context) error {
	var input *subscribeRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subscription input")
	}

	subscriber, err := h.uc.Subscribe(c.Request().Context(), input.Email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, subscriber, "Subscribed successfully")
}

// CheckAvailable reports whether the address looks free to subscribe. It is
// a UX hint for the signup form, not a correctness check.
func (h *NewsletterHandler) CheckAvailable(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return response.BadRequest(c, "INVALID_INPUT", "email query parameter is required")
	}

	available := h.uc.CheckEmailAvailable(c.Request().Context(), email)

	return response.Success(c, http.StatusOK, map[string]bool{"available": available}, "Availability checked")
}
