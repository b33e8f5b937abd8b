package api

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// boolPtrQuery reads an optional boolean query parameter. Absent or
// unparsable values become nil so the filter stays inactive.
func boolPtrQuery(c *gin.Context, name string) *bool {
	raw, ok := c.GetQuery(name)
	if !ok {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}

func limitQuery(c *gin.Context) int {
	raw, ok := c.GetQuery("limit")
	if !ok {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return v
}
