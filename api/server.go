package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/agrilink/farmwork/algorithm"
	db "github.com/agrilink/farmwork/db/sqlc"
	"github.com/agrilink/farmwork/token"
	"github.com/agrilink/farmwork/util"
	"github.com/agrilink/farmwork/worker"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
)

// Server serves HTTP requests for the farm work matching service.
type Server struct {
	config          util.Config
	store           db.Store
	tokenMaker      token.Maker
	taskDistributor worker.TaskDistributor
	matcher         algorithm.Matcher
	router          *gin.Engine
}

// NewServer creates a new HTTP server and set up routing.
func NewServer(config util.Config, store db.Store, taskDistributor worker.TaskDistributor) (*Server, error) {
	tokenMaker, err := token.NewPasetoMaker(config.TokenSymmetricKey)
	if err != nil {
		return nil, fmt.Errorf("cannot create token maker: %w", err)
	}

	server := &Server{
		config:          config,
		store:           store,
		tokenMaker:      tokenMaker,
		taskDistributor: taskDistributor,
		matcher:         algorithm.NewSimpleMatcher(config.MatchConfig()),
	}

	server.setupRouter()
	return server, nil
}

func (server *Server) setupRouter() {
	// 生产环境设置 Release 模式
	if server.config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// 全局超时：防止慢查询导致goroutine泄漏
	router.Use(TimeoutMiddleware(30 * time.Second))

	// 健康检查端点（供 Nginx/K8s 使用，无需认证）
	router.GET("/health", server.healthCheck)
	router.GET("/ready", server.readinessCheck)

	v1 := router.Group("/v1")

	// 注册与登录路由（无需认证）
	v1.POST("/farmers", server.registerFarmer)
	v1.POST("/workers", server.registerWorker)
	v1.POST("/auth/login", server.loginUser)
	v1.POST("/auth/refresh", server.renewAccessToken)

	// 需要认证的路由
	authGroup := v1.Group("")
	authGroup.Use(authMiddleware(server.tokenMaker))

	// 个人资料
	authGroup.GET("/farmers/me", server.getCurrentFarmer)
	authGroup.PATCH("/farmers/me/location", server.updateFarmerLocation)
	authGroup.GET("/workers/me", server.getCurrentWorker)
	authGroup.PATCH("/workers/me", server.updateWorkerProfile)
	authGroup.PATCH("/workers/me/availability", server.updateWorkerAvailability)

	// 岗位管理（发布岗位仅限雇主）
	jobsGroup := authGroup.Group("/jobs")
	{
		jobsGroup.POST("", roleMiddleware(util.FarmerRole), server.createJob)
		jobsGroup.GET("", server.listJobs)
		jobsGroup.GET("/:id", server.getJob)
		jobsGroup.PATCH("/:id/status", roleMiddleware(util.FarmerRole), server.updateJobStatus)

		// 岗位匹配：为岗位排序推荐零工（仅岗位发布者）
		jobsGroup.GET("/:id/matches", roleMiddleware(util.FarmerRole), server.matchWorkersForJob)
	}

	// 零工匹配：为零工排序推荐岗位
	authGroup.GET("/workers/me/matches", roleMiddleware(util.WorkerRole), server.matchJobsForWorker)

	// 匹配历史
	authGroup.GET("/matches/history", server.listMatchHistory)

	server.router = router
}

// Start runs the HTTP server on a specific address.
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}

// GetRouter returns the gin router for creating http.Server
func (server *Server) GetRouter() *gin.Engine {
	return server.router
}

// healthCheck 健康检查 - 基础存活检查
// GET /health
func (server *Server) healthCheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "farmwork-api",
	})
}

// readinessCheck 就绪检查 - 检查依赖服务
// GET /ready
func (server *Server) readinessCheck(ctx *gin.Context) {
	// 检查数据库连接
	if err := server.store.Ping(ctx); err != nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"error":  "database connection failed",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":   "ready",
		"service":  "farmwork-api",
		"database": "connected",
	})
}

// errorResponse creates an error response.
// For 4xx client errors: returns the actual error message
// For 5xx server errors: use internalError() instead to avoid leaking details
func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}

// internalError logs the actual error and returns a safe generic message.
// Use this for 5xx errors to prevent leaking internal implementation details.
func internalError(ctx *gin.Context, err error) gin.H {
	evt := log.Error().
		Err(err).
		Str("path", ctx.Request.URL.Path).
		Str("method", ctx.Request.Method)

	// If it's a Postgres error, log structured fields for faster debugging
	if pgErr, ok := err.(*pgconn.PgError); ok {
		evt = evt.
			Str("sqlstate", pgErr.Code).
			Str("pg_message", pgErr.Message).
			Str("pg_detail", pgErr.Detail).
			Str("pg_constraint", pgErr.ConstraintName)
	}

	evt.Msg("internal error")

	return gin.H{"error": "internal server error"}
}
