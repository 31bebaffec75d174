package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront-checkout/internal/store"
)

type CartHandler struct {
	cart store.CartRepository
}

func NewCartHandler(cart store.CartRepository) *CartHandler {
	return &CartHandler{
		cart: cart,
	}
}

// GetCount serves the cart badge count shown in the storefront header.
func (h *CartHandler) GetCount(c echo.Context) error {
	ctx := c.Request().Context()

	email, err := userEmail(c)
	if err != nil {
		return err
	}

	count, err := h.cart.Count(ctx, email)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]int{"count": count})
}
