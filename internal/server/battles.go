package server

import (
	"errors"
	"net/http"

	"battle-of-monsters/internal/constants"
	"battle-of-monsters/internal/domain"

	"github.com/gin-gonic/gin"
)

func (s *Server) startBattle(c *gin.Context) {
	var req battleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, constants.MsgInvalidBody)
		return
	}
	if req.MonsterA == nil || req.MonsterB == nil {
		writeError(c, http.StatusBadRequest, constants.MsgMissingID)
		return
	}

	b, err := s.battleSvc.Start(c.Request.Context(), *req.MonsterA, *req.MonsterB)
	switch {
	case errors.Is(err, domain.ErrMonsterNotFound):
		writeError(c, http.StatusNotFound, constants.MsgMonstersNotFound)
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(c, http.StatusBadRequest, err.Error())
	case err != nil:
		internalError(c, err)
	default:
		c.JSON(http.StatusOK, toBattleResponse(b))
	}
}

func (s *Server) getBattle(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	b, err := s.battleSvc.Get(c.Request.Context(), id)
	if errors.Is(err, domain.ErrBattleNotFound) {
		writeError(c, http.StatusNotFound, constants.MsgBattleNotFound)
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBattleResponse(b))
}

func (s *Server) listBattles(c *gin.Context) {
	battles, err := s.battleSvc.List(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}

	out := make([]battleResponse, len(battles))
	for i := range battles {
		out[i] = toBattleResponse(&battles[i])
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) removeBattle(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	err := s.battleSvc.Remove(c.Request.Context(), id)
	switch {
	case errors.Is(err, domain.ErrBattleNotFound):
		writeError(c, http.StatusNotFound, constants.MsgBattleNotFound)
	case err != nil:
		internalError(c, err)
	default:
		c.Status(http.StatusNoContent)
	}
}
