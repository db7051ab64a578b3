package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tradesbook-ie/tradesbook/internal/shared/errors"
)

// ParseUintParam reads a positive numeric path parameter.
func ParseUintParam(c *gin.Context, name, entityName string) (uint, error) {
	raw := c.Param(name)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		return 0, errors.NewValidationError(fmt.Sprintf("invalid %s ID", entityName))
	}
	return uint(v), nil
}

// ParseIntParam reads a non-negative integer path parameter.
func ParseIntParam(c *gin.Context, name string) (int, error) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil || v < 0 {
		return 0, errors.NewValidationError(fmt.Sprintf("invalid %s", name))
	}
	return v, nil
}

// QueryBool reports whether the query parameter is a true boolean literal.
func QueryBool(c *gin.Context, key string) bool {
	v, err := strconv.ParseBool(c.Query(key))
	return err == nil && v
}
