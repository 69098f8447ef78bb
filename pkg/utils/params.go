package utils

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// DateLayout is the layout accepted for date query parameters
const DateLayout = "2006-01-02"

// GetIntParam parses a positive integer path parameter
func GetIntParam(c *gin.Context, name string) (int, error) {
	raw := c.Param(name)
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", name)
	}
	if value <= 0 {
		return 0, fmt.Errorf("%s must be positive", name)
	}
	return value, nil
}

// ParseDateQuery parses an optional YYYY-MM-DD query parameter in UTC
func ParseDateQuery(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(DateLayout, raw, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%s must use the YYYY-MM-DD format", name)
	}
	return &t, nil
}
