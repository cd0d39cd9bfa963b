package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/auction-display-service/internal/display"
	"github.com/maxviazov/auction-display-service/internal/service"
)

// Register mounts all public routes on the given engine.
// Accepts service layer dependencies for API endpoints.
func Register(r *gin.Engine, version string, countdownSvc service.CountdownService, paginationSvc service.PaginationService, auctionSvc service.AuctionService) {
	h := NewHealthHandler(version)

	// Health probes
	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)

	// Docs endpoints (root-level)
	RegisterDocs(r)

	api := r.Group(APIV1Prefix)
	{
		health := api.Group("/health")
		{
			health.GET("/live", h.Liveness)
			health.GET("/ready", h.Readiness)
		}
		NewCountdownHandler(countdownSvc).Register(api)
		NewPaginationHandler(paginationSvc).Register(api)
		NewAuctionHandler(auctionSvc).Register(api)
	}
}

// bindError turns a body decoding failure into an invalid input error. An
// unparseable auction end date is reported against its field; other parse
// details stay internal.
func bindError(err error) error {
	if errors.Is(err, display.ErrInvalidInstant) {
		return service.NewInvalidInputError([]service.FieldError{
			{Field: "auction_end_date", Message: "must be a date or an RFC 3339 timestamp"},
		})
	}
	return service.ErrInvalidInput
}
