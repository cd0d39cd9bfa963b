package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/auction-display-service/internal/model"
	"github.com/maxviazov/auction-display-service/internal/service"
	"github.com/maxviazov/auction-display-service/pkg/response"
)

type CountdownHandler struct {
	svc service.CountdownService
}

func NewCountdownHandler(svc service.CountdownService) *CountdownHandler {
	return &CountdownHandler{svc: svc}
}

func (h *CountdownHandler) Register(r *gin.RouterGroup) {
	r.GET("/countdown", h.byEnd)
	r.POST("/items/countdown", h.forItem)
}

// byEnd serves GET /countdown?end=<instant>.
func (h *CountdownHandler) byEnd(c *gin.Context) {
	view, err := h.svc.Compute(c.Request.Context(), c.Query("end"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, view)
}

func (h *CountdownHandler) forItem(c *gin.Context) {
	var item model.Item
	if err := c.ShouldBindJSON(&item); err != nil {
		response.WriteError(c, bindError(err))
		return
	}
	view, err := h.svc.ForItem(c.Request.Context(), item)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, view)
}
