package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/auction-display-service/internal/model"
	"github.com/maxviazov/auction-display-service/internal/service"
	"github.com/maxviazov/auction-display-service/pkg/response"
)

type AuctionHandler struct {
	svc service.AuctionService
}

func NewAuctionHandler(svc service.AuctionService) *AuctionHandler {
	return &AuctionHandler{svc: svc}
}

func (h *AuctionHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/auctions")
	{
		g.POST("/winner", h.winner)
		g.POST("/due", h.due)
	}
}

type winnerRequest struct {
	ItemID string      `json:"item_id"`
	Bids   []model.Bid `json:"bids"`
}

type dueRequest struct {
	Items []model.Item `json:"items"`
}

func (h *AuctionHandler) winner(c *gin.Context) {
	var req winnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	bid, err := h.svc.Winner(c.Request.Context(), req.ItemID, req.Bids)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, bid)
}

func (h *AuctionHandler) due(c *gin.Context) {
	var req dueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, bindError(err))
		return
	}
	items, err := h.svc.DueForSettlement(c.Request.Context(), req.Items)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	response.WriteData(c, http.StatusOK, gin.H{"items": items})
}
