package app

import (
	"fmt"
	"strings"

	"match-ton-alternance/internal/delivery/http/handler"
	"match-ton-alternance/internal/delivery/http/middleware"
	"match-ton-alternance/internal/delivery/http/routes"
	"match-ton-alternance/internal/pkg/jwt"
	"match-ton-alternance/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	return &App{Fiber: f}
}

func Bootstrap(c *Container) (*App, func() error, error) {
	app := New(c)
	return app, c.Close, nil
}

func registerGlobalMiddleware(f *fiber.App, c *Container) {
	f.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())
	f.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
}

func registerRoutes(f *fiber.App, c *Container) {
	handler.NewHealthHandler(c.DB, c.Cache).RegisterRoutes(f)

	jwtSvc := jwt.NewHMACService(c.Config.JWT.AccessSecret)
	wsHandler := ws.NewHandler(c.Hub, jwtSvc, c.Logger)
	f.Get("/ws/matches", wsHandler.HandleMatchesWS)

	routes.NewRegistry(c.Config, c.DB, c.Cache, c.Hub, c.Logger).Register(f)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
