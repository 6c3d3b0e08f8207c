package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/akulinev/inventory/api/http/presenter"
	"github.com/akulinev/inventory/pkg/auth"
)

// ProfileHandler serves the authenticated user's own profile; there is no
// way to reach another user's data through these routes.
type ProfileHandler struct {
	useCase auth.AuthUseCase
}

func NewProfileHandler(useCase auth.AuthUseCase) *ProfileHandler {
	return &ProfileHandler{useCase: useCase}
}

// Get returns the current user's profile.
// @Summary Get own profile
// @Tags    profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /profile [get]
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	uid, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "could not resolve user")
	}
	user, err := h.useCase.GetProfile(c.Context(), uid)
	if err != nil {
		if errors.Is(err, auth.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "user not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to load profile")
	}
	return presenter.JSON(c, http.StatusOK, userJSON(user))
}

type updateProfileRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// Update mutates the current user's email and/or password.
// @Summary Update own profile
// @Tags    profile
// @Accept  json
// @Produce json
// @Security BearerAuth
// @Param   input body updateProfileRequest true "profile fields"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /profile [put]
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	uid, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "could not resolve user")
	}
	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if req.Email == nil && req.Password == nil {
		return presenter.Error(c, http.StatusBadRequest, "no fields to update")
	}

	user, err := h.useCase.UpdateProfile(c.Context(), uid, auth.ProfileUpdate{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		var vErr auth.ErrValidation
		switch {
		case errors.As(err, &vErr):
			return presenter.Error(c, http.StatusBadRequest, vErr.Error())
		case errors.Is(err, auth.ErrUserAlreadyExists):
			return presenter.Error(c, http.StatusConflict, "email already registered")
		case errors.Is(err, auth.ErrNotFound):
			return presenter.Error(c, http.StatusNotFound, "user not found")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to update profile")
		}
	}
	return presenter.JSON(c, http.StatusOK, userJSON(user))
}
