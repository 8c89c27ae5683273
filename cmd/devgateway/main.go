package main

import (
	"github.com/blackholeinfiverse37/8-pillers-Workflow-Gurukul-HR/internal/config"
	"github.com/blackholeinfiverse37/8-pillers-Workflow-Gurukul-HR/internal/devgateway"
	"github.com/blackholeinfiverse37/8-pillers-Workflow-Gurukul-HR/internal/logger"
	_ "github.com/joho/godotenv/autoload"
)

type application struct {
	Config  *config.Config
	Handler *devgateway.Handler
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, _ := logger.NewLogger(cfg.Env)
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infof("config loaded, env=%s", cfg.Env)

	store := devgateway.NewStore()
	store.Seed()

	handler := &devgateway.Handler{
		Logger:    log,
		Store:     store,
		Hub:       devgateway.NewHub(),
		JWTSecret: cfg.DevGateway.JWTSecret,
		JWTTTL:    cfg.DevGateway.JWTTTL,
		Heartbeat: cfg.DevGateway.Heartbeat,
	}

	app := &application{
		Config:  cfg,
		Handler: handler,
	}

	if err := app.serve(); err != nil {
		sugar.Fatal(err)
	}
}
