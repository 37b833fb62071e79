package http

import (
	"github.com/gin-gonic/gin"

	"github.com/cptzbik/halfmaraton/pkg/response"
)

// Estimate godoc
// @Summary     Estimate half-marathon finish time
// @Description Extracts gender, age and 5 km pace from a free-text description and predicts the half-marathon duration.
// @Tags        Estimate
// @Accept      json
// @Produce     json
// @Param       body body estimateReq true "Runner self-description"
// @Success     200 {object} estimateResp
// @Failure     400 {object} response.Resp "Missing fields or invalid pace format"
// @Failure     500 {object} response.Resp "Prediction failed"
// @Router      /api/v1/estimate [POST]
func (h *handler) Estimate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processEstimateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Estimate(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Estimate: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newEstimateResp(output))
}

// Model godoc
// @Summary     Regression pipeline metadata
// @Description Returns the loaded model artifact's schema and shape.
// @Tags        Estimate
// @Accept      json
// @Produce     json
// @Success     200 {object} modelResp
// @Router      /api/v1/model [GET]
func (h *handler) Model(c *gin.Context) {
	response.OK(c, h.newModelResp(h.uc.ModelInfo()))
}
