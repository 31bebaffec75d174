package server

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"storefront-checkout/internal/handler"
	authmw "storefront-checkout/internal/middleware"
	"storefront-checkout/internal/service"
	"storefront-checkout/internal/store"
)

type Server struct {
	echo            *echo.Echo
	checkoutHandler *handler.CheckoutHandler
	cartHandler     *handler.CartHandler
}

func NewServer(checkoutService service.CheckoutService, cartRepo store.CartRepository) *Server {
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(authmw.AuthMiddleware())

	checkoutHandler := handler.NewCheckoutHandler(checkoutService)
	cartHandler := handler.NewCartHandler(cartRepo)

	s := &Server{
		echo:            e,
		checkoutHandler: checkoutHandler,
		cartHandler:     cartHandler,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	api.GET("/cart/count", s.cartHandler.GetCount)

	// -------- checkout --------
	co := api.Group("/checkout")
	co.GET("/payment-methods", s.checkoutHandler.GetPaymentMethods)
	co.POST("/stage", s.checkoutHandler.StageItems)

	co.POST("/sessions", s.checkoutHandler.StartSession)
	co.GET("/sessions/:id", s.checkoutHandler.GetSession)
	co.POST("/sessions/:id/shipping", s.checkoutHandler.SubmitShipping)
	co.POST("/sessions/:id/payment", s.checkoutHandler.SubmitPayment)
	co.POST("/sessions/:id/edit", s.checkoutHandler.EditStep)
	co.POST("/sessions/:id/address-mode", s.checkoutHandler.SetAddressMode)
	co.POST("/sessions/:id/confirm", s.checkoutHandler.Confirm)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
