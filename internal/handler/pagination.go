package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/auction-display-service/internal/display"
	"github.com/maxviazov/auction-display-service/internal/model"
	"github.com/maxviazov/auction-display-service/internal/service"
	"github.com/maxviazov/auction-display-service/pkg/response"
)

type PaginationHandler struct {
	svc service.PaginationService
}

func NewPaginationHandler(svc service.PaginationService) *PaginationHandler {
	return &PaginationHandler{svc: svc}
}

func (h *PaginationHandler) Register(r *gin.RouterGroup) {
	r.GET("/pages", h.window)
	r.GET("/listing/pages", h.listing)
}

// intQuery parses an integer query parameter. Missing values yield def; when
// required, a missing value is reported like a malformed one.
func intQuery(c *gin.Context, name string, def int, required bool, ferrs *[]service.FieldError) int {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		if required {
			*ferrs = append(*ferrs, service.FieldError{Field: name, Message: "is required"})
		}
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		*ferrs = append(*ferrs, service.FieldError{Field: name, Message: "must be a valid integer"})
		return def
	}
	return v
}

// window serves GET /pages?current=&total=&max=. current defaults to 1; without max
// the configured size applies, an explicit non-positive max is a configuration error.
func (h *PaginationHandler) window(c *gin.Context) {
	var ferrs []service.FieldError
	current := intQuery(c, "current", 1, false, &ferrs)
	total := intQuery(c, "total", 0, true, &ferrs)
	maxVisible := intQuery(c, "max", 0, false, &ferrs)
	if len(ferrs) > 0 {
		response.WriteError(c, service.NewInvalidInputError(ferrs))
		return
	}

	var (
		w   display.PageWindow
		err error
	)
	if strings.TrimSpace(c.Query("max")) != "" {
		w, err = h.svc.WindowSize(c.Request.Context(), current, total, maxVisible)
	} else {
		w, err = h.svc.Window(c.Request.Context(), current, total)
	}
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, w)
}

func (h *PaginationHandler) listing(c *gin.Context) {
	var ferrs []service.FieldError
	totalItems := intQuery(c, "total_items", 0, true, &ferrs)
	// 0 lets the service apply its limit/offset defaults
	limit := intQuery(c, "limit", 0, false, &ferrs)
	offset := intQuery(c, "offset", 0, false, &ferrs)
	if len(ferrs) > 0 {
		response.WriteError(c, service.NewInvalidInputError(ferrs))
		return
	}

	res, err := h.svc.ListingWindow(c.Request.Context(), model.Page{Limit: limit, Offset: offset}, totalItems)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, res)
}
