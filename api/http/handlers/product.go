package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/akulinev/inventory/api/http/presenter"
	"github.com/akulinev/inventory/pkg/product"
)

type ProductHandler struct {
	uc product.UseCase
}

func NewProductHandler(uc product.UseCase) *ProductHandler { return &ProductHandler{uc: uc} }

func productJSON(p product.Product) fiber.Map {
	return fiber.Map{
		"id":          p.ID.String(),
		"name":        p.Name,
		"type":        p.Type,
		"sku":         p.SKU,
		"image_url":   p.ImageURL,
		"description": p.Description,
		"quantity":    p.Quantity,
		"price":       p.Price,
		"is_active":   p.IsActive,
		"in_stock":    p.InStock(),
		"created_by":  p.CreatedBy.String(),
		"created_at":  p.CreatedAt.Format(time.RFC3339),
		"updated_at":  p.UpdatedAt.Format(time.RFC3339),
	}
}

// productID parses the :id path parameter. A non-UUID id cannot name any
// product, so it is reported the same way as a missing one.
func productID(c *fiber.Ctx) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params("id"))
	return id, err == nil
}

func (h *ProductHandler) respondError(c *fiber.Ctx, err error) error {
	var vErr product.ErrValidation
	switch {
	case errors.As(err, &vErr):
		return presenter.Error(c, http.StatusBadRequest, vErr.Error())
	case errors.Is(err, product.ErrSKUAlreadyExists):
		return presenter.Error(c, http.StatusConflict, "product with this sku already exists")
	case errors.Is(err, product.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, "product not found")
	default:
		return presenter.Error(c, http.StatusInternalServerError, "internal error")
	}
}

type createProductRequest struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	SKU         string   `json:"sku"`
	ImageURL    string   `json:"image_url"`
	Description string   `json:"description"`
	Quantity    *int     `json:"quantity"`
	Price       *float64 `json:"price"`
}

// Create adds a product to the inventory.
// @Summary Add product
// @Tags    products
// @Accept  json
// @Produce json
// @Security BearerAuth
// @Param   input body createProductRequest true "product fields"
// @Success 201 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	uid, err := currentUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "could not resolve user")
	}
	var req createProductRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if req.Quantity == nil || req.Price == nil {
		return presenter.Error(c, http.StatusBadRequest, "name, sku, quantity and price are required")
	}

	p, err := h.uc.Create(c.Context(), uid, product.CreateInput{
		Name:        req.Name,
		Type:        req.Type,
		SKU:         req.SKU,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		Quantity:    *req.Quantity,
		Price:       *req.Price,
	})
	if err != nil {
		return h.respondError(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, productJSON(p))
}

// List returns active products, newest first.
// @Summary List products
// @Tags    products
// @Produce json
// @Security BearerAuth
// @Param   search query string false "filter by name substring"
// @Param   limit  query int    false "page size (max 200)"
// @Param   offset query int    false "page offset"
// @Success 200 {array} map[string]any
// @Router  /products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 50)
	products, err := h.uc.List(c.Context(), c.Query("search"), limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list products")
	}
	out := make([]fiber.Map, 0, len(products))
	for _, p := range products {
		out = append(out, productJSON(p))
	}
	return presenter.JSON(c, http.StatusOK, out)
}

// GetByID returns a single active product.
// @Summary Get product by ID
// @Tags    products
// @Produce json
// @Security BearerAuth
// @Param   id path string true "product ID (UUID)"
// @Success 200 {object} map[string]any
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, ok := productID(c)
	if !ok {
		return presenter.Error(c, http.StatusNotFound, "product not found")
	}
	p, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return h.respondError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, productJSON(p))
}

type updateProductRequest struct {
	Name        *string  `json:"name"`
	Type        *string  `json:"type"`
	ImageURL    *string  `json:"image_url"`
	Description *string  `json:"description"`
	Quantity    *int     `json:"quantity"`
	Price       *float64 `json:"price"`
}

// Update merges the provided fields into an active product. SKU is immutable.
// @Summary Update product
// @Tags    products
// @Accept  json
// @Produce json
// @Security BearerAuth
// @Param   id path string true "product ID (UUID)"
// @Param   input body updateProductRequest true "fields to change"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := productID(c)
	if !ok {
		return presenter.Error(c, http.StatusNotFound, "product not found")
	}
	var req updateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	p, err := h.uc.Update(c.Context(), id, product.UpdateInput{
		Name:        req.Name,
		Type:        req.Type,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		Quantity:    req.Quantity,
		Price:       req.Price,
	})
	if err != nil {
		return h.respondError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, productJSON(p))
}

type updateQuantityRequest struct {
	Quantity *int `json:"quantity"`
}

// UpdateQuantity mutates quantity and nothing else.
// @Summary Update product quantity
// @Tags    products
// @Accept  json
// @Produce json
// @Security BearerAuth
// @Param   id path string true "product ID (UUID)"
// @Param   input body updateQuantityRequest true "new quantity"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /products/{id}/quantity [put]
func (h *ProductHandler) UpdateQuantity(c *fiber.Ctx) error {
	id, ok := productID(c)
	if !ok {
		return presenter.Error(c, http.StatusNotFound, "product not found")
	}
	var req updateQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if req.Quantity == nil {
		return presenter.Error(c, http.StatusBadRequest, "quantity is required")
	}

	p, err := h.uc.UpdateQuantity(c.Context(), id, *req.Quantity)
	if err != nil {
		return h.respondError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, productJSON(p))
}

// Delete soft-deletes a product: the row stays but disappears from the API.
// @Summary Delete product
// @Tags    products
// @Produce json
// @Security BearerAuth
// @Param   id path string true "product ID (UUID)"
// @Success 204 {object} nil
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := productID(c)
	if !ok {
		return presenter.Error(c, http.StatusNotFound, "product not found")
	}
	if err := h.uc.SoftDelete(c.Context(), id); err != nil {
		return h.respondError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
