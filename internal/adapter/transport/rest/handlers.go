package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dayanaadylkhanova/shipment-tracker/internal/entity"
)

const internalMessage = "An unexpected error occurred. Please try again later."

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleTrack(c *gin.Context) {
	snap, err := s.tracker.TrackShipment(c.Request.Context(), c.Param("reference"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (s *Server) handleSummary(c *gin.Context) {
	sum, err := s.tracker.SearchShipment(c.Request.Context(), c.Param("reference"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

// statusOf maps an error kind to the response status.
func statusOf(kind error) int {
	switch {
	case kind == nil:
		return http.StatusInternalServerError
	case errors.Is(kind, entity.ErrInvalidReference):
		return http.StatusBadRequest
	case errors.Is(kind, entity.ErrMalformedChallenge),
		errors.Is(kind, entity.ErrSolverExhausted),
		errors.Is(kind, entity.ErrChallengeRequired),
		errors.Is(kind, entity.ErrRetryBudgetExceeded):
		return http.StatusTooManyRequests
	case errors.Is(kind, entity.ErrUpstreamServer),
		errors.Is(kind, entity.ErrUpstreamProtocol):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeError never echoes causes: the message is the kind's own text.
func (s *Server) writeError(c *gin.Context, err error) {
	kind := entity.KindOf(err)
	status := statusOf(kind)
	msg := internalMessage
	if kind != nil {
		msg = kind.Error()
	}
	if status == http.StatusInternalServerError {
		s.log.Error("request failed", "request_id", c.GetString(requestIDKey), "err", err)
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Code: entity.CodeOf(err), Message: msg})
}
