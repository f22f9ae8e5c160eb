package server

import (
	"context"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/BoluOladipo/AI-Diet-Recommender/config"
	"github.com/BoluOladipo/AI-Diet-Recommender/internal/api"
	"github.com/BoluOladipo/AI-Diet-Recommender/internal/middleware"
	"github.com/BoluOladipo/AI-Diet-Recommender/internal/repository"
	"github.com/BoluOladipo/AI-Diet-Recommender/internal/router"
	"github.com/BoluOladipo/AI-Diet-Recommender/internal/service"
)

// Server represents the HTTP server and its wired services.
type Server struct {
	cfg    *config.Config
	router *gin.Engine
	http   *http.Server
	logger *zap.Logger
}

// New loads the reference tables and wires the recommender, chat proxy and
// routes. Missing or corrupt reference data is a fatal startup error.
func New(cfg *config.Config, logger *zap.Logger) (*Server, error) {
	repo, err := repository.Load(cfg.Data.Dir)
	if err != nil {
		return nil, err
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	// The LLM service is optional: without an API key the oracle stays off
	// and the chat endpoint reports itself unavailable.
	var llmService *service.LLMService
	if cfg.LLM.APIKey != "" {
		llmService, err = service.NewLLMService(service.LLMConfig{
			APIKey:   cfg.LLM.APIKey,
			APIURL:   cfg.LLM.APIURL,
			Model:    cfg.LLM.Model,
			Timeout:  cfg.LLM.Timeout,
			CacheTTL: cfg.LLM.CacheTTL,
		}, redisClient, logger)
		if err != nil {
			return nil, err
		}
	} else {
		logger.Warn("no LLM API key configured; oracle and chat proxy disabled")
	}

	var classifier service.ConditionClassifier
	if cfg.LLM.Enabled && llmService != nil {
		classifier = llmService
	}

	calc := service.NewNutrientCalculator(repo)
	checker := service.NewViolationChecker(calc)
	interpreter := service.NewConditionInterpreter(repo, classifier, cfg.LLM.Timeout, logger)
	planner := service.NewPlanGenerator(repo, checker)
	recommender := service.NewRecommender(repo, interpreter, planner, logger)

	dietHandler := api.NewDietHandler(recommender)

	var chatService service.IChatService
	if llmService != nil {
		chatService = llmService
	}
	chatHandler := api.NewChatHandler(chatService)
	chatLimiter := middleware.NewChatRateLimiter(redisClient)

	engine := router.SetupRouter(cfg, dietHandler, chatHandler, chatLimiter, logger)

	return &Server{
		cfg:    cfg,
		router: engine,
		logger: logger,
	}, nil
}

// Start begins serving and blocks until the listener stops.
func (s *Server) Start() error {
	addr := net.JoinHostPort(s.cfg.Server.Host, s.cfg.Server.Port)
	s.http = &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	s.logger.Info("server listening", zap.String("addr", addr))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http != nil {
		return s.http.Shutdown(ctx)
	}
	return nil
}

// Router exposes the configured engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
