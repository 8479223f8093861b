package handler

import (
	"net/http"

	"github.com/Nirpat3/MSABC/internal/apierror"
	"github.com/Nirpat3/MSABC/internal/service"

	"github.com/gin-gonic/gin"
)

type BillingHandler struct{ svc service.BillingService }

func NewBillingHandler(svc service.BillingService) *BillingHandler {
	return &BillingHandler{svc: svc}
}

func (h *BillingHandler) Summary(c *gin.Context) {
	resp, err := h.svc.Summary(c.Request.Context())
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to fetch billing summary"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
