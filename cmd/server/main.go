package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"pasture/config"
	"pasture/database"
	"pasture/pkg/logging"
	"pasture/router"

	// Auth
	authCtrlImp "pasture/pkg/auth/controllerImp"

	// Paddocks
	paddockCtrlImp "pasture/pkg/paddock/controllerImp"
	paddockRepoImp "pasture/pkg/paddock/repositoryImp"
	paddockSvcImp "pasture/pkg/paddock/serviceImp"

	// Map editor
	editorCtrlImp "pasture/pkg/editor/controllerImp"
	editorSvc "pasture/pkg/editor/service"
	editorSvcImp "pasture/pkg/editor/serviceImp"
	layoutRepoImp "pasture/pkg/layout/repositoryImp"

	// Health
	healthCtrlImp "pasture/pkg/health/controllerImp"
)

func main() {
	// 1) Config + logger
	cfg := config.Load()
	log := logging.Must(cfg.LogLevel, cfg.LogFile)
	defer func() { _ = log.Sync() }()

	// 2) DB (sqlite) + automigrate
	db, err := database.OpenSQLite(cfg.DBPath, cfg.LogLevel == "debug")
	if err != nil {
		log.Fatal("open database", zap.Error(err))
	}

	// 3) Paddock backend
	pSvc := paddockSvcImp.NewPaddockService(paddockRepoImp.New(db), log)
	pCtrl := paddockCtrlImp.New(pSvc, log)

	// 4) Editor sessions
	stores, err := layoutRepoImp.NewFactory(cfg.LayoutStore, cfg.GdataApp, db)
	if err != nil {
		log.Fatal("layout store", zap.Error(err))
	}
	sessions := editorSvcImp.New(editorSvc.StoreFactory(stores), paddockSvcImp.NewEditorSource(pSvc), log)
	eCtrl := editorCtrlImp.New(sessions, log)

	// 5) Echo
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Static("/static", "static")
	if _, err := os.Stat("static/index.html"); err == nil {
		e.File("/", "static/index.html")
	}

	r := router.New(
		e,
		cfg.RequireUser,
		eCtrl,
		pCtrl,
		authCtrlImp.NewAuthController(),
		healthCtrlImp.NewHealthCtrl(db, sessions),
	)

	// 6) Start, stop on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("listening", zap.String("port", cfg.Port), zap.String("layout_store", cfg.LayoutStore))
		if err := r.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return r.Shutdown(shutdownCtx)
	})
	if err := g.Wait(); err != nil {
		log.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
	log.Info("server stopped")
}
