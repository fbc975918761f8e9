// Package httpserver manages server creation and api routing.
package httpserver

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-finbook/finbook/internal/accountdelivery"
	"github.com/go-finbook/finbook/internal/accountrepo"
	"github.com/go-finbook/finbook/internal/accountservice"
	"github.com/go-finbook/finbook/internal/middleware"
	"github.com/go-finbook/finbook/internal/sessiondelivery"
	"github.com/go-finbook/finbook/internal/sessionservice"
	"github.com/go-finbook/finbook/internal/transactiondelivery"
	"github.com/go-finbook/finbook/internal/transactionrepo"
	"github.com/go-finbook/finbook/internal/transactionservice"
	"github.com/go-finbook/finbook/internal/userdelivery"
	"github.com/go-finbook/finbook/internal/userrepo"
	"github.com/go-finbook/finbook/internal/userservice"
	"github.com/go-finbook/finbook/pkg/configpkg"
	"github.com/go-finbook/finbook/pkg/tokenpkg"
)

// Server holds db connection, handlers router and configuration.
type Server struct {
	DB     *sql.DB
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

func newTokenMaker(config configpkg.Config) (tokenpkg.Maker, error) {
	switch config.TokenMaker {
	case "", "jwt":
		return tokenpkg.NewJWTMaker(config.TokenSymmetricKey)
	case "paseto":
		return tokenpkg.NewPasetoMaker(config.TokenSymmetricKey)
	}

	return nil, fmt.Errorf("unknown token maker %q", config.TokenMaker)
}

// New creates Server type with instantiated domains and routes.
func New(conn *sql.DB, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	userRepo := userrepo.NewRepoPGS(conn)
	accountRepo := accountrepo.NewRepoPGS(conn)
	transactionRepo := transactionrepo.NewRepoPGS(conn)

	tokenMaker, err := newTokenMaker(config)
	if err != nil {
		return nil, fmt.Errorf("cannot create token maker: %w", err)
	}

	userService := userservice.New(userRepo)
	accountService := accountservice.New(accountRepo, userRepo)
	transactionService := transactionservice.New(transactionRepo, accountRepo)
	sessionService := sessionservice.New(userRepo, config, tokenMaker)

	userHandler := userdelivery.NewHandler(userService)
	accountHandler := accountdelivery.NewHandler(accountService)
	transactionHandler := transactiondelivery.NewHandler(transactionService)
	sessionHandler := sessiondelivery.NewHandler(sessionService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	api := engine.Group("/api")

	api.POST("/login", sessionHandler.Login)
	api.POST("/refresh", sessionHandler.Refresh)

	authRoutes := api.Group("/", middleware.Auth(tokenMaker))

	authRoutes.POST("/user", userHandler.Create)
	authRoutes.GET("/user", userHandler.List)
	authRoutes.GET("/user/:id", userHandler.Get)
	authRoutes.PATCH("/user/:id", userHandler.Update)
	authRoutes.DELETE("/user/:id", userHandler.Delete)
	authRoutes.POST("/user/change-password", userHandler.ChangePassword)

	// The account id segment is named accountId on every account route so
	// that the nested transaction routes do not conflict in gin's tree.
	authRoutes.POST("/account", accountHandler.Create)
	authRoutes.GET("/account", accountHandler.List)
	authRoutes.GET("/account/:accountId", accountHandler.Get)
	authRoutes.PUT("/account/:accountId", accountHandler.Update)
	authRoutes.DELETE("/account/:accountId", accountHandler.Delete)

	authRoutes.POST("/account/:accountId/transaction", transactionHandler.Create)
	authRoutes.GET("/account/:accountId/transaction", transactionHandler.List)
	authRoutes.GET("/account/:accountId/transaction/:id", transactionHandler.Get)
	authRoutes.PUT("/account/:accountId/transaction/:id", transactionHandler.Update)
	authRoutes.DELETE("/account/:accountId/transaction/:id", transactionHandler.Delete)

	server := &Server{
		DB:     conn,
		Engine: engine,
		Config: config,
	}

	return server, nil
}
