package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"battle-of-monsters/internal/constants"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

var errNullBody = errors.New("request body is null")

func writeError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{constants.JSONKeyError: msg})
}

func internalError(c *gin.Context, err error) {
	zerolog.Ctx(c.Request.Context()).Error().
		Err(err).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Msg("request failed")
	writeError(c, http.StatusInternalServerError, constants.MsgInternal)
}

// pathID parses the :id route parameter and answers 400 when it is not an integer.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, http.StatusBadRequest, constants.MsgInvalidID)
		return 0, false
	}
	return id, true
}

// decodeMonster reads a monster payload, reporting an empty or literal null
// body as errNullBody.
func decodeMonster(c *gin.Context) (*monsterPayload, error) {
	var p *monsterPayload
	err := json.NewDecoder(c.Request.Body).Decode(&p)
	if errors.Is(err, io.EOF) || (err == nil && p == nil) {
		return nil, errNullBody
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}
