package http

import (
	"github.com/gin-gonic/gin"
)

// processEstimateReq binds and validates the estimate request body.
func (h *handler) processEstimateReq(c *gin.Context) (estimateReq, error) {
	var req estimateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
