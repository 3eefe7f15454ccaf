package server

import (
	"furniture-storefront/internal/handler"
	authmw "furniture-storefront/internal/middleware"
	"furniture-storefront/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

type Server struct {
	echo            *echo.Echo
	jwtSecret       string
	catalogHandler  *handler.CatalogHandler
	cartHandler     *handler.CartHandler
	checkoutHandler *handler.CheckoutHandler
	webhookHandler  *handler.WebhookHandler
	orderHandler    *handler.OrderHandler
}

func NewServer(
	catalogService service.CatalogService,
	cartService service.CartService,
	stockService service.StockService,
	checkoutService service.CheckoutService,
	webhookService service.WebhookService,
	orderService service.OrderService,
	jwtSecret string,
	log *logrus.Logger,
) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := logrus.Fields{
				"method": v.Method,
				"uri":    v.URI,
				"status": v.Status,
			}
			if v.Error != nil {
				fields["error"] = v.Error.Error()
			}
			log.WithFields(fields).Info("request")
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:            e,
		jwtSecret:       jwtSecret,
		catalogHandler:  handler.NewCatalogHandler(catalogService),
		cartHandler:     handler.NewCartHandler(cartService, stockService),
		checkoutHandler: handler.NewCheckoutHandler(checkoutService, log),
		webhookHandler:  handler.NewWebhookHandler(webhookService, log),
		orderHandler:    handler.NewOrderHandler(orderService),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// -------- catalog (public) --------
	api.GET("/products", s.catalogHandler.ListProducts)
	api.GET("/products/featured", s.catalogHandler.FeaturedProducts)
	api.GET("/products/low-stock", s.catalogHandler.LowStockProducts)
	api.GET("/products/out-of-stock", s.catalogHandler.OutOfStockProducts)
	api.GET("/products/:slug", s.catalogHandler.ProductBySlug)
	api.GET("/categories", s.catalogHandler.ListCategories)

	// -------- stripe webhooks --------
	api.POST("/webhooks/stripe", s.webhookHandler.HandleStripeWebhook)

	// -------- authenticated --------
	authed := api.Group("", authmw.JWTAuth(s.jwtSecret))
	authed.GET("/cart", s.cartHandler.GetCart)
	authed.POST("/cart", s.cartHandler.AddItem)
	authed.GET("/cart/stock", s.cartHandler.VerifyStock)
	authed.PUT("/cart/:productId", s.cartHandler.UpdateQuantity)
	authed.DELETE("/cart/:productId", s.cartHandler.RemoveItem)
	authed.DELETE("/cart", s.cartHandler.ClearCart)

	authed.POST("/checkout", s.checkoutHandler.CreateSession)
	authed.GET("/checkout/session/:id", s.checkoutHandler.GetSession)

	authed.GET("/orders", s.orderHandler.ListOrders)
	authed.GET("/orders/:id", s.orderHandler.GetOrder)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
