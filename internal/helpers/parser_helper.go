package helpers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

func StringToInt(s string) (int, error) {
	return strconv.Atoi(s)
}

// QueryInt reads a positive integer query parameter, falling back to def when
// it is absent.
func QueryInt(c *gin.Context, key string, def int) (int, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return def, nil
	}
	n, err := StringToInt(raw)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid %s %q", key, raw)
	}
	return n, nil
}
