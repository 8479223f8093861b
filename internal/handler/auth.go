package handler

import (
	"errors"
	"net/http"

	"github.com/Nirpat3/MSABC/internal/apierror"
	"github.com/Nirpat3/MSABC/internal/dto"
	"github.com/Nirpat3/MSABC/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if errors.Is(err, service.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, apierror.New("Invalid credentials"))
		return
	}
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("Login failed"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
