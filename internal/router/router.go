package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/OlegMusatov3000/BlitzMarket/internal/auth"
	"github.com/OlegMusatov3000/BlitzMarket/internal/config"
	apperrors "github.com/OlegMusatov3000/BlitzMarket/internal/errors"
	"github.com/OlegMusatov3000/BlitzMarket/internal/handler"
	"github.com/OlegMusatov3000/BlitzMarket/internal/notify"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	notifier notify.Notifier,
	authHandler *handler.AuthHandler,
	adHandler *handler.AdHandler,
	commentHandler *handler.CommentHandler,
	reviewHandler *handler.ReviewHandler,
	complaintHandler *handler.ComplaintHandler,
	userHandler *handler.UserHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = newHTTPErrorHandler(notifier)

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/api-docs/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	api.GET("/ads", adHandler.List)
	api.GET("/ads/:id", adHandler.Get)
	api.GET("/ads/:id/comments", commentHandler.List)
	api.GET("/ads/:id/reviews", reviewHandler.List)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
	}))

	secured.POST("/ads", adHandler.Create)
	secured.PUT("/ads/:id/move_ad", adHandler.Move)
	secured.DELETE("/ads/:id", adHandler.Delete)
	secured.POST("/ads/:id/comments", commentHandler.Create)
	secured.DELETE("/ads/comments/:id", commentHandler.Delete)
	secured.POST("/ads/:id/reviews", reviewHandler.Create)
	secured.POST("/complaints/:ad_id", complaintHandler.Create)
	secured.GET("/complaints", complaintHandler.List)
	secured.PUT("/users/:id/change_role_or_active", userHandler.ChangeRoleOrActive)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// newHTTPErrorHandler shapes every error into the shared envelope. Domain
// denials keep their status and message; anything unexpected becomes the
// fixed 500 body and the real cause goes to the notifier.
func newHTTPErrorHandler(notifier notify.Notifier) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var status int
		var detail string
		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			switch m := he.Message.(type) {
			case string:
				detail = m
			case error:
				detail = m.Error()
			default:
				detail = fmt.Sprintf("%v", m)
			}
		} else {
			mapped := apperrors.MapErrorToHTTP(err)
			status = mapped.StatusCode
			detail = mapped.Message
		}

		if status >= http.StatusInternalServerError {
			c.Logger().Error(err)
			notifier.Notify(err)
			detail = apperrors.InternalDetail
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, apperrors.Failure(detail))
	}
}
