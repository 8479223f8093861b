package handler

import (
	"net/http"

	"github.com/Nirpat3/MSABC/internal/apierror"
	"github.com/Nirpat3/MSABC/internal/dto"
	"github.com/Nirpat3/MSABC/internal/service"

	"github.com/gin-gonic/gin"
)

type SpecialOrdersHandler struct{ svc service.SpecialOrderService }

func NewSpecialOrdersHandler(svc service.SpecialOrderService) *SpecialOrdersHandler {
	return &SpecialOrdersHandler{svc: svc}
}

func (h *SpecialOrdersHandler) List(c *gin.Context) {
	var filter dto.SpecialOrderFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to fetch special orders"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SpecialOrdersHandler) Create(c *gin.Context) {
	var req dto.CreateSpecialOrderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to create special order"))
		return
	}
	c.JSON(http.StatusCreated, resp)
}
