package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront-checkout/internal/checkout"
	"storefront-checkout/internal/dto"
	"storefront-checkout/internal/model"
	"storefront-checkout/internal/service"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
	}
}

func userEmail(c echo.Context) (string, error) {
	email, _ := c.Get("user_email").(string)
	if email == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing user identity")
	}
	return email, nil
}

// httpError maps domain errors to response statuses.
func httpError(err error) error {
	switch {
	case errors.Is(err, checkout.ErrSessionNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, checkout.ErrNothingStaged):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, checkout.ErrInvalidTransition),
		errors.Is(err, checkout.ErrAlreadyProcessing):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, checkout.ErrMissingFields),
		errors.Is(err, checkout.ErrUnknownMethod),
		errors.Is(err, checkout.ErrInvalidAddressMode),
		errors.Is(err, checkout.ErrInvalidQuantity):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, checkout.ErrMethodUnavailable):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	default:
		return err
	}
}

func (h *CheckoutHandler) GetPaymentMethods(c echo.Context) error {
	return c.JSON(http.StatusOK, model.PaymentMethods())
}

func (h *CheckoutHandler) StageItems(c echo.Context) error {
	ctx := c.Request().Context()

	email, err := userEmail(c)
	if err != nil {
		return err
	}

	var req dto.StageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	if err := h.checkoutService.StageItems(ctx, email, req.Items); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, map[string]int{"staged": len(req.Items)})
}

func (h *CheckoutHandler) StartSession(c echo.Context) error {
	ctx := c.Request().Context()

	email, err := userEmail(c)
	if err != nil {
		return err
	}

	sess, err := h.checkoutService.Start(ctx, email)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, dto.NewSessionResponse(sess))
}

func (h *CheckoutHandler) GetSession(c echo.Context) error {
	ctx := c.Request().Context()

	sess, err := h.checkoutService.Get(ctx, c.Param("id"))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, dto.NewSessionResponse(sess))
}

func (h *CheckoutHandler) SubmitShipping(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ShippingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	sess, err := h.checkoutService.SubmitShipping(ctx, c.Param("id"), req.Shipping)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, dto.NewSessionResponse(sess))
}

func (h *CheckoutHandler) SubmitPayment(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.PaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	sess, err := h.checkoutService.SubmitPayment(ctx, c.Param("id"), req.MethodID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, dto.NewSessionResponse(sess))
}

func (h *CheckoutHandler) EditStep(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.EditRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	sess, err := h.checkoutService.Edit(ctx, c.Param("id"), checkout.Step(req.Step))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, dto.NewSessionResponse(sess))
}

func (h *CheckoutHandler) SetAddressMode(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.AddressModeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	sess, err := h.checkoutService.SetAddressMode(ctx, c.Param("id"), model.AddressMode(req.Mode))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, dto.NewSessionResponse(sess))
}

// Confirm runs the commit sequence. A failed commit still returns the
// session body so the caller sees the failed step and can retry.
func (h *CheckoutHandler) Confirm(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ConfirmRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	sess, err := h.checkoutService.Confirm(ctx, c.Param("id"), req.Instructions)
	if err != nil {
		if errors.Is(err, checkout.ErrCommitFailed) {
			return c.JSON(http.StatusBadGateway, dto.NewSessionResponse(sess))
		}
		return httpError(err)
	}

	return c.JSON(http.StatusOK, dto.NewSessionResponse(sess))
}
