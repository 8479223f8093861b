package handler

import (
	"net/http"

	"github.com/Nirpat3/MSABC/internal/apierror"
	"github.com/Nirpat3/MSABC/internal/dto"
	"github.com/Nirpat3/MSABC/internal/service"

	"github.com/gin-gonic/gin"
)

// ScraperHandler exposes the AI-assisted import pipeline: classify a pasted
// page, extract products or SPAs from it, and optionally persist the batch.
type ScraperHandler struct{ svc service.ScraperService }

func NewScraperHandler(svc service.ScraperService) *ScraperHandler {
	return &ScraperHandler{svc: svc}
}

func (h *ScraperHandler) Analyze(c *gin.Context) {
	var req dto.AnalyzeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	analysis, err := h.svc.AnalyzePage(c.Request.Context(), req.URL, req.HTMLContent)
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to analyze content"))
		return
	}
	c.JSON(http.StatusOK, analysis)
}

func (h *ScraperHandler) ParseProducts(c *gin.Context) {
	var req dto.ParseRequest
	if !bindAndValidate(c, &req) {
		return
	}
	products, err := h.svc.ParseProducts(c.Request.Context(), req.HTMLContent)
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to parse products"))
		return
	}

	if req.Save && len(products) > 0 {
		if err := h.svc.SaveProducts(c.Request.Context(), products); err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, apierror.New("Failed to save products"))
			return
		}
	}

	c.JSON(http.StatusOK, dto.ParseProductsResponse{
		Products: products,
		Count:    len(products),
		Saved:    req.Save,
	})
}

func (h *ScraperHandler) ParseSPAs(c *gin.Context) {
	var req dto.ParseRequest
	if !bindAndValidate(c, &req) {
		return
	}
	spas, err := h.svc.ParseSPAs(c.Request.Context(), req.HTMLContent)
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to parse SPAs"))
		return
	}

	if req.Save && len(spas) > 0 {
		if err := h.svc.SaveSPAs(c.Request.Context(), spas); err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, apierror.New("Failed to save SPAs"))
			return
		}
	}

	c.JSON(http.StatusOK, dto.ParseSPAsResponse{
		SPAs:  spas,
		Count: len(spas),
		Saved: req.Save,
	})
}

func (h *ScraperHandler) SyncLogs(c *gin.Context) {
	logs, err := h.svc.RecentLogs(c.Request.Context())
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to fetch sync logs"))
		return
	}
	c.JSON(http.StatusOK, logs)
}
