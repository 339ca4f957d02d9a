package httpapp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	appmw "guide_catalog/internal/middleware"
	httprouters "guide_catalog/internal/transport/http"
	"guide_catalog/internal/transport/http/dto/response"

	"github.com/arl/statsviz"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

type Server struct {
	m          *http.ServeMux
	log        *slog.Logger
	e          *echo.Echo
	routers    *httprouters.Routers
	host       string
	port       string
	adminIDs   map[string]struct{}
	uploadsDir string
}

func New(log *slog.Logger, adminIDs []string, host, port, maxUploadSize, uploadsDir string, routers *httprouters.Routers) *Server {
	e := echo.New()
	e.HideBanner = true

	validate := validator.New()
	e.Validator = &CustomValidator{validator: validate}

	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(maxUploadSize))

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				slog.String("URI", v.URI),
				slog.Int("status", v.Status),
				slog.String("remote ip", v.RemoteIP),
			)

			return nil
		},
	}))

	e.Use(appmw.PrometheusMetrics)

	mux := http.NewServeMux()
	err := statsviz.Register(mux)
	if err != nil {
		log.Info("Statsviz start with error", slog.Any("error:", err.Error()))
	}

	admins := make(map[string]struct{}, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = struct{}{}
	}

	return &Server{
		m:          mux,
		log:        log,
		e:          e,
		routers:    routers,
		host:       host,
		port:       port,
		adminIDs:   admins,
		uploadsDir: uploadsDir,
	}
}

// Echo отдает собранный инстанс для httptest в интеграционных тестах
func (s *Server) Echo() *echo.Echo {
	return s.e
}

func (s *Server) MustRun() {
	const op = "http.Server.MustRun"

	s.log.Info(op, slog.String("Start", "server"))

	if err := s.Start(); err != nil {
		panic(err)
	}
}

func (s *Server) Start() error {
	const op = "http.Server.Start"

	if err := s.e.Start(fmt.Sprintf(":%s", s.port)); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("%s server stopped: %w", op, err)
	}

	return nil
}

func (s *Server) Stop() error {
	const op = "http.Server.Stop"

	optCtx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	s.log.Info("stopping", op, "http server")

	if err := s.e.Shutdown(optCtx); err != nil {
		return fmt.Errorf("%s could not shutdown server gracefuly: %w", op, err)
	}

	return nil
}

// adminOnlyMiddleware пропускает запрос дальше только при наличии заголовка
// X-Telegram-ID из списка администраторов. Права проверяются до чтения тела.
func (s *Server) adminOnlyMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		telegramID := c.Request().Header.Get("X-Telegram-ID")
		if telegramID == "" {
			return c.JSON(http.StatusForbidden, response.ErrForbidden)
		}

		if _, ok := s.adminIDs[telegramID]; !ok {
			return c.JSON(http.StatusForbidden, response.ErrForbidden)
		}

		return next(c)
	}
}

func (s *Server) BuildRouters() {
	s.e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	s.e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	debug := s.e.Group("/debug")
	{
		debug.GET("/statsviz/", echo.WrapHandler(s.m))
		debug.GET("/statsviz/*", echo.WrapHandler(s.m))
	}

	swagger := s.e.Group("/swag")
	{
		swagger.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	s.e.Static("/uploads", s.uploadsDir)

	chapters := s.e.Group("/chapters")
	{
		chapters.GET("", s.routers.ListChapters)
		chapters.GET("/search", s.routers.SearchChapters)
		chapters.GET("/:id", s.routers.GetChapter)
		chapters.GET("/:id/articles", s.routers.ListChapterArticles)

		chapters.POST("", s.routers.CreateChapter, s.adminOnlyMiddleware)
		chapters.PUT("", s.routers.UpdateChapter, s.adminOnlyMiddleware)
		chapters.DELETE("/:id", s.routers.DeleteChapter, s.adminOnlyMiddleware)
		chapters.PATCH("/order", s.routers.ReorderChapters, s.adminOnlyMiddleware)
	}

	articles := s.e.Group("/articles")
	{
		articles.GET("/search", s.routers.SearchArticles)
		articles.GET("/:id", s.routers.GetArticle)

		articles.POST("", s.routers.CreateArticle, s.adminOnlyMiddleware)
		articles.PUT("", s.routers.UpdateArticle, s.adminOnlyMiddleware)
		articles.DELETE("/:id", s.routers.DeleteArticle, s.adminOnlyMiddleware)
		articles.PATCH("/order", s.routers.ReorderArticles, s.adminOnlyMiddleware)
	}

	tariffs := s.e.Group("/tariffs")
	{
		tariffs.GET("/:id", s.routers.GetTariff)
	}
}
