package cmd

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"blogr/internal/config"
	"blogr/internal/core"
	"blogr/internal/db"
	"blogr/internal/http/handler"
	"blogr/internal/http/handler/middleware"
	"blogr/internal/http/payload"
	"blogr/internal/http/server"
	"blogr/internal/repository"
	"blogr/internal/uploads"
	"blogr/pkg/jwt"
	"blogr/pkg/log"

	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("blogr", zapcore.InfoLevel)

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

	// repository
	repo := repository.NewBlogRepository(dbConn)

	if err := repo.MigrateTables(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// cover image store
	uploadStore, err := uploads.NewStore(config.UploadsDir)
	if err != nil {
		logger.Errorw("failed to create uploads store", "error", err)
		return err
	}

	// services
	authService := core.NewAuth(logger, repo, jwtService, config.BcryptCost)
	postService := core.NewPosts(logger, repo, authService, uploadStore)

	// handler
	blogHlr := handler.NewBlogHandler(
		logger,
		payload.DecodeValidator{},
		authService,
		postService)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)
	hdlr = middleware.NewCORSMiddleware(config.CORSOrigin).CORS(hdlr)

	// register routes
	mux.HandleFunc(handler.Register, blogHlr.HandleRegister)
	mux.HandleFunc(handler.Login, blogHlr.HandleLogin)
	mux.HandleFunc(handler.Profile, blogHlr.HandleProfile)
	mux.HandleFunc(handler.Logout, blogHlr.HandleLogout)
	mux.HandleFunc(handler.CreatePost, blogHlr.HandleCreatePost)
	mux.HandleFunc(handler.ListPosts, blogHlr.HandleListPosts)
	mux.HandleFunc(handler.GetPost, blogHlr.HandleGetPost)
	mux.HandleFunc(handler.UpdatePost, blogHlr.HandleUpdatePost)
	mux.HandleFunc(handler.DeletePost, blogHlr.HandleDeletePost)

	// uploaded covers are served statically
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadStore.Dir()))))

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
