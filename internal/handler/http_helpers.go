package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func bindJSON(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, message)
		return false
	}
	return true
}

func parseIntParam(c *gin.Context, key string) (int, error) {
	raw := c.Param(key)
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return value, nil
}

// requireConfirmation 为破坏性操作把关：缺少 confirm=true 时拒绝并保持状态不变。
func requireConfirmation(c *gin.Context) bool {
	if c.Query("confirm") != "true" {
		respondError(c, http.StatusBadRequest, "该操作需要确认，请携带 confirm=true")
		return false
	}
	return true
}
