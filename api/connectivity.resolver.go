package api

import (
	"sroireport/internal/domain"

	"github.com/gin-gonic/gin"
)

type testConnectionResponse struct {
	Status     domain.ConnectivityStatus `json:"status"`
	Message    string                    `json:"message,omitempty"`
	Display    string                    `json:"display"`
	ProjectUrl string                    `json:"projectUrl"`
}

// testConnection always answers 200; the probe outcome is in the body
func (m ApiHandler) testConnection(c *gin.Context) {
	state := domain.ConnectivityState{
		Status:  domain.ConnectivityError,
		Message: "no connectivity probe configured",
	}
	if m.ConnectivityService != nil {
		state = m.ConnectivityService.Probe(c.Request.Context())
	}

	c.JSON(200, testConnectionResponse{
		Status:     state.Status,
		Message:    state.Message,
		Display:    state.Display(),
		ProjectUrl: m.ProjectUrl,
	})
}
