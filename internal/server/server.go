package server

import (
	"context"
	"net/http"

	"battle-of-monsters/internal/config"
	"battle-of-monsters/internal/constants"
	"battle-of-monsters/internal/middleware"
	"battle-of-monsters/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

// Pinger reports database liveness; *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Server struct {
	monsterSvc *service.MonsterService
	battleSvc  *service.BattleService
	db         Pinger
	cfg        *config.Config
	logger     zerolog.Logger
}

func NewServer(monsterSvc *service.MonsterService, battleSvc *service.BattleService, db Pinger, cfg *config.Config, logger zerolog.Logger) *Server {
	return &Server{monsterSvc: monsterSvc, battleSvc: battleSvc, db: db, cfg: cfg, logger: logger}
}

// Handler returns the full HTTP stack: request id and logging, CORS, then
// the gin router.
func (s *Server) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		zerolog.Ctx(c.Request.Context()).Error().
			Interface("panic", recovered).
			Str("path", c.Request.URL.Path).
			Msg("handler panicked")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.MsgInternal})
	}))

	r.GET("/healthz", s.health)

	api := r.Group("/api")
	api.GET("/monsters", s.listMonsters)
	api.POST("/monsters", s.addMonster)
	api.POST("/monsters/import-csv", s.importMonsters)
	api.GET("/monsters/:id", s.getMonster)
	api.PUT("/monsters/:id", s.updateMonster)
	api.DELETE("/monsters/:id", s.removeMonster)
	api.GET("/imports", s.listImports)

	api.GET("/battles", s.listBattles)
	api.POST("/battles", s.startBattle)
	api.GET("/battles/:id", s.getBattle)
	api.DELETE("/battles/:id", s.removeBattle)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	return middleware.RequestID(s.logger)(c.Handler(r))
}

func (s *Server) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), constants.DatabaseTimeout)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("database ping failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
