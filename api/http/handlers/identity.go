package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var errNoIdentity = errors.New("no authenticated user in request context")

// currentUserID reads the user id stored in Locals by the JWT middleware.
func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	userIDStr, _ := c.Locals("userId").(string)
	uid, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, errNoIdentity
	}
	return uid, nil
}
