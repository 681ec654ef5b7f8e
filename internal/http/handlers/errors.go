package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/nutriplan-backend/internal/http/response"
)

var errInvalidID = errors.New("id must be an integer")

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", errInvalidID)
		return 0, false
	}
	return id, true
}

// pathID reads the id without rejecting the request; 0 when it does not parse.
func pathID(c *gin.Context) int64 {
	id, _ := strconv.ParseInt(strings.TrimSpace(c.Param("id")), 10, 64)
	return id
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return false
	}
	return true
}
