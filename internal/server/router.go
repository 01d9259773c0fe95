package server

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sponsvisa/sponsvisa-api/internal/auth"
	"github.com/sponsvisa/sponsvisa-api/internal/bookmark"
	"github.com/sponsvisa/sponsvisa-api/internal/comment"
	"github.com/sponsvisa/sponsvisa-api/internal/company"
	"github.com/sponsvisa/sponsvisa-api/internal/config"
	"github.com/sponsvisa/sponsvisa-api/internal/metrics"
	"github.com/sponsvisa/sponsvisa-api/internal/vote"
	"go.uber.org/zap"
)

// Dependencies groups the services required by the HTTP router.
type Dependencies struct {
	Config          config.Config
	DB              *pgxpool.Pool
	Logger          *zap.Logger
	AuthService     *auth.Service
	Verification    *auth.VerificationService
	Guard           *auth.Guard
	CompanyService  *company.Service
	CommentService  *comment.Service
	VoteService     *vote.Service
	BookmarkService *bookmark.Service
}

// NewRouter builds a Gin engine with foundational middleware and routes.
// Route-level authorization is composed explicitly here: public routes carry
// no guard, everything else names its role policy at registration.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(deps.Logger))
	router.Use(errorFilter(deps.Logger))

	registerHealthRoutes(router, deps)
	metrics.Register(router, deps.Config.Metrics.PrometheusPath)

	api := router.Group("/v1")

	auth.RegisterRoutes(api, deps.AuthService, deps.Verification, deps.Guard, deps.Config.Auth)
	company.RegisterRoutes(api, deps.CompanyService, deps.Guard)
	comment.RegisterRoutes(api, deps.CommentService, deps.Guard)
	vote.RegisterRoutes(api, deps.VoteService, deps.Guard)
	bookmark.RegisterRoutes(api, deps.BookmarkService, deps.Guard)

	return router
}
