package cmd

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"plugshare/internal/config"
	"plugshare/internal/core"
	"plugshare/internal/db"
	"plugshare/internal/http/handler"
	"plugshare/internal/http/handler/middleware"
	"plugshare/internal/http/payload"
	"plugshare/internal/http/server"
	"plugshare/internal/repository"
	"plugshare/pkg/log"
	"syscall"

	"go.uber.org/zap/zapcore"
)

const serviceName = "plugshare"

func Start() error {
	config, err := config.NewApp()
	if err != nil {
		logger := log.NewZapLogger(serviceName, zapcore.InfoLevel)
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	logger := log.NewZapLogger(serviceName, config.LogLevel)
	defer logger.Sync()

	dbConn, err := db.Open(config.DBDriver, config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err, "driver", config.DBDriver)
		return err
	}
	defer dbConn.Close()

	// repository
	repo := repository.NewPlugShareRepository(dbConn)

	if err = repo.Migrate(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// plug share
	plugShare := core.NewPlugShare(logger, repo, config.BcryptCost)

	// handler
	plugHlr := handler.NewPlugHandler(
		logger,
		payload.Decoder{},
		plugShare)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	plugHlr.Register(mux)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
