package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"cardguard/internal/config"
	"cardguard/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	clientHandler *handler.ClientHandler,
	cardHandler *handler.CardHandler,
	operationHandler *handler.OperationHandler,
	fraudHandler *handler.FraudHandler,
	reportHandler *handler.ReportHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))

	// Client routes
	secured.GET("/clients", clientHandler.ListClients)
	secured.GET("/clients/:id", clientHandler.GetClient)
	secured.PUT("/clients/:id", clientHandler.UpdateClient)
	secured.DELETE("/clients/:id", clientHandler.DeleteClient)

	// Card routes
	secured.POST("/cards", cardHandler.CreateCard)
	secured.GET("/cards", cardHandler.ListCards)
	secured.GET("/cards/:id", cardHandler.GetCard)
	secured.PUT("/cards/:id", cardHandler.UpdateCard)
	secured.DELETE("/cards/:id", cardHandler.DeleteCard)
	secured.POST("/cards/:id/activate", cardHandler.ActivateCard)
	secured.POST("/cards/:id/block", cardHandler.BlockCard)
	secured.POST("/cards/:id/suspend", cardHandler.SuspendCard)
	secured.POST("/cards/:id/renew", cardHandler.RenewCard)

	// Operation routes
	secured.POST("/operations", operationHandler.RecordOperation)
	secured.GET("/operations", operationHandler.ListOperations)
	secured.DELETE("/operations/:id", operationHandler.DeleteOperation)

	// Fraud routes
	secured.POST("/fraud/cards/:id/analyze", fraudHandler.AnalyzeCard)
	secured.POST("/fraud/analyze", fraudHandler.AnalyzeAll)
	secured.GET("/fraud/alerts", fraudHandler.ListAlerts)

	// Report routes
	secured.GET("/reports/top-cards", reportHandler.TopCards)
	secured.GET("/reports/operations-by-type", reportHandler.OperationsByType)
	secured.GET("/reports/inactive-cards", reportHandler.InactiveCards)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
