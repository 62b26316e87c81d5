package rest

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

const MAX_PAGE_SIZE = 100

// ListNotificationsQueryParams holds query parameters for GET /notifications
type ListNotificationsQueryParams struct {
	UnreadOnly bool `form:"unread,default=false"`
	Limit      int  `form:"limit,default=50"`
}

// ParseListNotificationsQuery parses query parameters for GET /notifications
func ParseListNotificationsQuery(c *gin.Context) (*ListNotificationsQueryParams, error) {
	var params ListNotificationsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	if params.Limit <= 0 {
		return nil, fmt.Errorf("limit must be positive")
	}
	if params.Limit > MAX_PAGE_SIZE {
		params.Limit = MAX_PAGE_SIZE
	}

	return &params, nil
}

// parseIDParam parses a positive numeric path parameter
func parseIDParam(c *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %s: %q", name, c.Param(name))
	}
	return id, nil
}
