package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/uchoabruno/bgls/internal/config"
	"github.com/uchoabruno/bgls/internal/db"
	"github.com/uchoabruno/bgls/internal/repository"
	"github.com/uchoabruno/bgls/internal/service"
)

type (
	RegisterReq struct {
		Login    string `json:"login" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	LoginReq struct {
		Login    string `json:"login" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	TokenResp struct {
		Token string `json:"token"`
	}

	CustomValidator struct {
		validator *validator.Validate
	}

	HTTPServer struct {
		cfg      *config.Config
		consoles *service.ConsoleService
		games    *service.GameService
		items    *service.ItemService
		auth     *service.AuthService
		logger   *zap.SugaredLogger
		echo     *echo.Echo
	}
)

func NewHTTPServer(
	lc fx.Lifecycle,
	cfg *config.Config,
	consoles *service.ConsoleService,
	games *service.GameService,
	items *service.ItemService,
	auth *service.AuthService,
	logger *zap.SugaredLogger,
) *HTTPServer {
	instance := newServer(cfg, consoles, games, items, auth, logger)
	e := instance.echo

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				listen := cfg.Host + ":" + cfg.Port
				if err := e.Start(listen); err != nil && err != http.ErrServerClosed {
					e.Logger.Fatal("shutting down the server")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server.")
			return e.Shutdown(ctx)
		},
	})

	return instance
}

func newServer(
	cfg *config.Config,
	consoles *service.ConsoleService,
	games *service.GameService,
	items *service.ItemService,
	auth *service.AuthService,
	logger *zap.SugaredLogger,
) *HTTPServer {
	instance := HTTPServer{
		cfg:      cfg,
		consoles: consoles,
		games:    games,
		items:    items,
		auth:     auth,
		logger:   logger,
	}

	e := echo.New()
	e.HideBanner = true

	e.POST("/auth/register", instance.Register)
	e.POST("/auth/login", instance.Login)
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })

	api := e.Group("/api")

	consoleG := api.Group("/consoles")
	consoleG.POST("", instance.ConsoleCreate)
	consoleG.GET("", instance.ConsoleList)
	consoleG.GET("/count", instance.ConsoleCount)
	consoleG.GET("/:id", instance.ConsoleGet)
	consoleG.PUT("/:id", instance.ConsoleUpdate)
	consoleG.PATCH("/:id", instance.ConsolePartialUpdate)
	consoleG.DELETE("/:id", instance.ConsoleDelete)

	gameG := api.Group("/games")
	gameG.POST("", instance.GameCreate, instance.AdminRequired)
	gameG.GET("", instance.GameList)
	gameG.GET("/count", instance.GameCount)
	gameG.GET("/:id", instance.GameGet)
	gameG.PUT("/:id", instance.GameUpdate, instance.AdminRequired)
	gameG.PATCH("/:id", instance.GamePartialUpdate, instance.AdminRequired)
	gameG.DELETE("/:id", instance.GameDelete, instance.AdminRequired)

	itemG := api.Group("/items")
	itemG.POST("", instance.ItemCreate)
	itemG.GET("", instance.ItemList)
	itemG.GET("/count", instance.ItemCount)
	itemG.GET("/:id", instance.ItemGet)
	itemG.PUT("/:id", instance.ItemUpdate)
	itemG.PATCH("/:id", instance.ItemPartialUpdate)
	itemG.DELETE("/:id", instance.ItemDelete)

	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(instance.AuthMiddleware)

	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = instance.errorHandler

	instance.echo = e

	return &instance
}

func (s *HTTPServer) Register(c echo.Context) error {
	req := RegisterReq{}
	if err := BindAndValidate(c, &req); err != nil {
		return err
	}

	token, err := s.auth.Register(req.Login, req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, &TokenResp{Token: token})
}

func (s *HTTPServer) Login(c echo.Context) error {
	req := LoginReq{}
	if err := BindAndValidate(c, &req); err != nil {
		return err
	}

	token, err := s.auth.Login(req.Login, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrLoginUserNotFound) || errors.Is(err, service.ErrLoginPasswordDoesNotMatch) {
			return c.NoContent(http.StatusUnauthorized)
		}
		return err
	}
	return c.JSON(http.StatusOK, &TokenResp{Token: token})
}

func (s *HTTPServer) AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if strings.HasPrefix(c.Path(), "/auth/") || c.Path() == "/ping" {
			return next(c)
		}
		token := ""
		for key, values := range c.Request().Header {
			if strings.ToLower(key) == "x-token" {
				token = values[0]
				break
			}
		}
		if token == "" {
			return c.NoContent(http.StatusUnauthorized)
		}
		user, err := s.auth.Authenticate(token)
		if err != nil {
			return c.NoContent(http.StatusUnauthorized)
		}

		c.Set("user", user)
		return next(c)
	}
}

// AdminRequired gates game mutations. Console and item mutations stay
// open to any authenticated user, which mirrors how the API always
// behaved.
func (s *HTTPServer) AdminRequired(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := GetUserFromContext(c)
		if err != nil {
			return c.NoContent(http.StatusUnauthorized)
		}
		if !user.Admin {
			return c.NoContent(http.StatusForbidden)
		}
		return next(c)
	}
}

func (s *HTTPServer) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var alert *BadRequestAlertError
	if errors.As(err, &alert) {
		_ = c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":     http.StatusBadRequest,
			"entityName": alert.EntityName,
			"errorKey":   alert.ErrorKey,
			"message":    alert.Message,
		})
		return
	}

	if errors.Is(err, repository.ErrNotFound) {
		_ = c.NoContent(http.StatusNotFound)
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		_ = c.JSON(httpErr.Code, map[string]interface{}{
			"status":  httpErr.Code,
			"message": fmt.Sprintf("%v", httpErr.Message),
		})
		return
	}

	s.logger.Errorw("request failed", "path", c.Path(), "error", err)
	_ = c.NoContent(http.StatusInternalServerError)
}

func (s *HTTPServer) setCreationAlert(c echo.Context, entity string, id uint64) {
	s.setAlert(c, entity, "created", id)
}

func (s *HTTPServer) setUpdateAlert(c echo.Context, entity string, id uint64) {
	s.setAlert(c, entity, "updated", id)
}

func (s *HTTPServer) setDeletionAlert(c echo.Context, entity string, id uint64) {
	s.setAlert(c, entity, "deleted", id)
}

func (s *HTTPServer) setAlert(c echo.Context, entity, verb string, id uint64) {
	header := c.Response().Header()
	header.Set("X-"+s.cfg.AppName+"-alert", fmt.Sprintf("%s.%s.%s", s.cfg.AppName, entity, verb))
	header.Set("X-"+s.cfg.AppName+"-params", strconv.FormatUint(id, 10))
}

////////

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func BindAndValidate(c echo.Context, v interface{}) error {
	var err error
	if err = c.Bind(v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err = c.Validate(v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// BindOnly deserializes a merge-patch body without field validation:
// absent fields are the whole point of a patch. Accepts both
// application/json and application/merge-patch+json, which the default
// echo binder would reject.
func BindOnly(c echo.Context, v interface{}) error {
	ctype := c.Request().Header.Get(echo.HeaderContentType)
	if !strings.Contains(ctype, "json") {
		return echo.NewHTTPError(http.StatusUnsupportedMediaType, "expected a json media type")
	}
	if err := json.NewDecoder(c.Request().Body).Decode(v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func GetUserFromContext(c echo.Context) (*db.User, error) {
	user, ok := c.Get("user").(*db.User)
	if !ok || user == nil {
		return nil, errors.New("no user found in context")
	}
	return user, nil
}

func GetParam(c echo.Context, name string) (string, error) {
	value := c.Param(name)
	if value == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, "invalid path param '"+name+"'")
	}
	return value, nil
}

func GetAndParseParam(c echo.Context, name string) (uint64, error) {
	v, e := GetParam(c, name)
	if e != nil {
		return 0, e
	}
	vv, e := strconv.ParseUint(v, 10, 64)
	if e != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid path param '"+name+"'")
	}
	return vv, nil
}
