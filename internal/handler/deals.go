package handler

import (
	"net/http"

	"github.com/Nirpat3/MSABC/internal/apierror"
	"github.com/Nirpat3/MSABC/internal/service"

	"github.com/gin-gonic/gin"
)

type DealsHandler struct{ svc service.DealService }

func NewDealsHandler(svc service.DealService) *DealsHandler {
	return &DealsHandler{svc: svc}
}

func (h *DealsHandler) Summary(c *gin.Context) {
	resp, err := h.svc.Summary(c.Request.Context())
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to fetch deals summary"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DealsHandler) ListSPAs(c *gin.Context) {
	resp, err := h.svc.ListActive(c.Request.Context())
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to fetch SPAs"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
