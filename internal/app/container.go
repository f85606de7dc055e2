package app

import (
	"context"
	"log"
	"os"
	"time"

	"match-ton-alternance/internal/config"
	"match-ton-alternance/internal/database"
	dbpostgres "match-ton-alternance/internal/database/postgres"
	"match-ton-alternance/internal/infrastructure/cache"
	"match-ton-alternance/internal/ws"
)

type Container struct {
	Config config.Config
	Logger *log.Logger
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	timeout := cfg.Database.ConnectTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)

	hub := ws.NewHub(logger)
	go hub.Run()
	ws.SetDefaultHub(hub)

	return &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cache:  redisCache,
		Hub:    hub,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
