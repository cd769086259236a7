package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"solottery/internal/config"
	"solottery/internal/core"
	"solottery/internal/db"
	"solottery/internal/http/handler"
	"solottery/internal/http/middleware"
	"solottery/internal/http/payload"
	"solottery/internal/http/server"
	"solottery/internal/repository"
	"solottery/internal/solana"
	"solottery/pkg/jwt"
	"solottery/pkg/log"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("solottery", zapcore.InfoLevel)

	// optional .env for local runs
	_ = godotenv.Load()

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// repositories
	roundRepo := repository.NewRoundRepository(dbConn)
	entryRepo := repository.NewEntryRepository(dbConn)
	adminRepo := repository.NewAdminRepository(dbConn)

	if err := adminRepo.MigrateAndSeed(context.Background()); err != nil {
		logger.Errorw("failed to migrate and seed database", "error", err)
		return err
	}

	// ledger verifier
	verifier := solana.NewVerifier(logger, &http.Client{})

	// lottery controller
	lottery := core.NewLottery(
		logger,
		roundRepo,
		entryRepo,
		adminRepo,
		verifier,
		jwtService)

	// handler
	lotteryHlr := handler.NewLotteryHandler(
		logger,
		payload.Decoder{},
		lottery,
		dbConn,
		config.AdminAuthEnabled())

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)
	hdlr = middleware.NewCORSMiddleware().CORS(hdlr)

	// register routes
	mux.HandleFunc(handler.Root, lotteryHlr.HandleRoot)
	mux.HandleFunc(handler.Health, lotteryHlr.HandleHealth)
	mux.HandleFunc(handler.Login, lotteryHlr.HandleLogin)
	mux.HandleFunc(handler.CreateRound, lotteryHlr.HandleCreateRound)
	mux.HandleFunc(handler.ListRounds, lotteryHlr.HandleListRounds)
	mux.HandleFunc(handler.GetRound, lotteryHlr.HandleGetRound)
	mux.HandleFunc(handler.ListEntries, lotteryHlr.HandleListEntries)
	mux.HandleFunc(handler.EnterRound, lotteryHlr.HandleEnterRound)
	mux.HandleFunc(handler.VerifyEntry, lotteryHlr.HandleVerifyEntry)
	mux.HandleFunc(handler.DrawRound, lotteryHlr.HandleDrawRound)

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
