package server

import (
	"errors"
	"fmt"
	"net/http"

	"battle-of-monsters/internal/constants"
	"battle-of-monsters/internal/domain"

	"github.com/gin-gonic/gin"
)

func (s *Server) getMonster(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	m, err := s.monsterSvc.Get(c.Request.Context(), id)
	if errors.Is(err, domain.ErrMonsterNotFound) {
		writeError(c, http.StatusNotFound, fmt.Sprintf(constants.MsgMonsterNotFoundFmt, id))
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMonsterResponse(m))
}

func (s *Server) listMonsters(c *gin.Context) {
	monsters, err := s.monsterSvc.List(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}

	out := make([]*monsterResponse, len(monsters))
	for i := range monsters {
		out[i] = toMonsterResponse(&monsters[i])
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) addMonster(c *gin.Context) {
	p, err := decodeMonster(c)
	if errors.Is(err, errNullBody) {
		writeError(c, http.StatusBadRequest, constants.MsgMonsterNull)
		return
	}
	if err != nil {
		writeError(c, http.StatusBadRequest, constants.MsgInvalidBody)
		return
	}

	m, err := s.monsterSvc.Add(c.Request.Context(), p.toDomain())
	if errors.Is(err, domain.ErrInvalidInput) {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMonsterResponse(m))
}

func (s *Server) updateMonster(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	p, err := decodeMonster(c)
	if errors.Is(err, errNullBody) {
		writeError(c, http.StatusBadRequest, constants.MsgMonsterNull)
		return
	}
	if err != nil {
		writeError(c, http.StatusBadRequest, constants.MsgInvalidBody)
		return
	}

	_, err = s.monsterSvc.Update(c.Request.Context(), id, p.toDomain())
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrMonsterNotFound):
		writeError(c, http.StatusNotFound, fmt.Sprintf(constants.MsgMonsterNotFoundFmt, id))
	case err != nil:
		internalError(c, err)
	default:
		c.Status(http.StatusOK)
	}
}

func (s *Server) removeMonster(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	err := s.monsterSvc.Remove(c.Request.Context(), id)
	switch {
	case errors.Is(err, domain.ErrMonsterNotFound):
		writeError(c, http.StatusNotFound, fmt.Sprintf(constants.MsgMonsterNotFoundFmt, id))
	case err != nil:
		internalError(c, err)
	default:
		c.Status(http.StatusOK)
	}
}

func (s *Server) importMonsters(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.cfg.ImportMaxBytes)

	fh, err := c.FormFile(constants.ImportFormField)
	if err != nil {
		writeError(c, http.StatusBadRequest, constants.MsgWrongDataMapping)
		return
	}

	f, err := fh.Open()
	if err != nil {
		writeError(c, http.StatusBadRequest, constants.MsgWrongDataMapping)
		return
	}
	defer f.Close()

	imp, err := s.monsterSvc.Import(c.Request.Context(), fh.Filename, f)
	switch {
	case errors.Is(err, domain.ErrUnsupportedFile):
		writeError(c, http.StatusBadRequest, constants.MsgBadExtension)
	case errors.Is(err, domain.ErrWrongDataMapping):
		writeError(c, http.StatusBadRequest, constants.MsgWrongDataMapping)
	case err != nil:
		internalError(c, err)
	default:
		c.JSON(http.StatusOK, toImportResponse(imp))
	}
}

func (s *Server) listImports(c *gin.Context) {
	imports, err := s.monsterSvc.ListImports(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}

	out := make([]importResponse, len(imports))
	for i := range imports {
		out[i] = toImportResponse(&imports[i])
	}
	c.JSON(http.StatusOK, out)
}
