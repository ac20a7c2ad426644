package api

import (
	"errors"
	"fmt"
	"net/http"

	"sroireport/internal"
	"sroireport/internal/domain"
	"sroireport/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// the page only ever shows this; details go to the logs
const errLoadingData = "Error loading data"

func (m ApiHandler) getDashboard(c *gin.Context) {
	view, ok := m.loadReport(c, m.DefaultReportID)
	if !ok {
		return
	}
	c.JSON(200, view)
}

func (m ApiHandler) getReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid report id %q", c.Param("id")), c, http.StatusBadRequest)
		return
	}

	view, ok := m.loadReport(c, id)
	if !ok {
		return
	}
	c.JSON(200, view)
}

func (m ApiHandler) getReportBreakdownCsv(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid report id %q", c.Param("id")), c, http.StatusBadRequest)
		return
	}

	view, ok := m.loadReport(c, id)
	if !ok {
		return
	}

	out, err := internal.BreakdownCSV(*view)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("sroi-%s-breakdown.csv", id)))
	c.Data(200, "text/csv; charset=utf-8", out)
}

// loadReport writes the error response itself and reports whether the
// caller should continue.
func (m ApiHandler) loadReport(c *gin.Context, id uuid.UUID) (*domain.ReportView, bool) {
	lg := logger.FromContext(c)

	view, err := m.ReportService.GetReport(c.Request.Context(), id)
	if err == nil {
		return view, true
	}

	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		lg.Warnw("sroi record failed validation", "id", id.String(), "kind", validationErr.Kind, "error", err.Error())
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{
			"error": validationErr.Error(),
			"kind":  validationErr.Kind,
		})
	case errors.Is(err, domain.ErrRecordNotFound):
		returnErrorJsonCode(fmt.Errorf("report %s not found", id), c, http.StatusNotFound)
	default:
		lg.Errorw("failed to load report", "id", id.String(), "error", err.Error())
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": errLoadingData,
		})
	}
	return nil, false
}
