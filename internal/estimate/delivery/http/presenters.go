package http

import (
	"fmt"
	"math"

	"github.com/cptzbik/halfmaraton/internal/estimate"
	"github.com/cptzbik/halfmaraton/internal/regression"
)

// --- Request DTOs ---

type estimateReq struct {
	Text string `json:"text" binding:"required,min=1,max=2000"`
}

func (r estimateReq) toInput() estimate.EstimateInput {
	return estimate.EstimateInput{
		FreeText: r.Text,
	}
}

// --- Response DTOs ---

type estimateResp struct {
	Seconds      float64 `json:"seconds"`
	Formatted    string  `json:"formatted"`
	PaceMinPerKm float64 `json:"pace_min_per_km"`
	Message      string  `json:"message"`
	PaceMessage  string  `json:"pace_message"`
}

func (h *handler) newEstimateResp(out estimate.EstimateOutput) estimateResp {
	paceRounded := math.Round(out.PaceMinPerKm*100) / 100
	return estimateResp{
		Seconds:      out.Seconds,
		Formatted:    out.Formatted,
		PaceMinPerKm: paceRounded,
		Message:      fmt.Sprintf("Czas na przebiegnięcie półmaratonu to: %s", out.Formatted),
		PaceMessage:  fmt.Sprintf("Prędkość na 5 km: %.2f min/km", out.PaceMinPerKm),
	}
}

type modelResp struct {
	Model regression.Info `json:"model"`
}

func (h *handler) newModelResp(info regression.Info) modelResp {
	return modelResp{Model: info}
}
