package handler

import (
	"net/http"

	"github.com/Nirpat3/MSABC/internal/apierror"
	"github.com/Nirpat3/MSABC/internal/service"

	"github.com/gin-gonic/gin"
)

type ForecastsHandler struct{ svc service.ForecastService }

func NewForecastsHandler(svc service.ForecastService) *ForecastsHandler {
	return &ForecastsHandler{svc: svc}
}

func (h *ForecastsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to fetch forecasts"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
