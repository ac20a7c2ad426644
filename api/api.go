package api

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"
	"time"

	"sroireport/internal/db/models/postgres/public/model"
	"sroireport/internal/logger"
	"sroireport/internal/repository"
	"sroireport/internal/service"
	"sroireport/internal/util"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ApiHandler struct {
	Db                   *sql.DB
	ReportService        service.ReportService
	ConnectivityService  service.ConnectivityService
	ApiRequestRepository repository.ApiRequestRepository
	Authenticator        Authenticator

	DefaultReportID uuid.UUID
	LoginPath       string
	// shown on the connection test page
	ProjectUrl string
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddlware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to sroi reports"})
	})
	router.GET("/test-connection", m.testConnection)

	authed := router.Group("/", m.requireUser)
	authed.GET("/dashboard", m.getDashboard)
	authed.GET("/reports/:id", m.getReport)
	authed.GET("/reports/:id/breakdown.csv", m.getReportBreakdownCsv)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	router := m.InitializeRouterEngine()
	return router.Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, 500)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.FromContext(c).Errorw("request failed", "status", code, "error", err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

// logRequestMiddlware gives every request its own logger and, when a
// request repository is configured, records the request and its response
// in api_request.
func (m ApiHandler) logRequestMiddlware(c *gin.Context) {
	requestID := uuid.New()
	lg := logger.FromContext(c.Request.Context()).With("requestID", requestID.String())
	c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), logger.ContextKey, lg))
	c.Set(logger.ContextKey, lg)

	if m.ApiRequestRepository == nil || m.Db == nil {
		c.Next()
		return
	}

	w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
	c.Writer = w

	body, err := c.GetRawData()
	if err != nil {
		lg.Warnw("failed to get raw data", "error", err.Error())
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	start := time.Now().UTC()
	req, err := m.ApiRequestRepository.Add(m.Db, model.APIRequest{
		RequestID:   requestID,
		IPAddress:   util.StringPointer(c.ClientIP()),
		Method:      c.Request.Method,
		Route:       c.Request.URL.Path,
		RequestBody: util.StringPointer(string(body)),
		StartTs:     start,
	})
	if err != nil {
		lg.Warnw("failed to record api request", "error", err.Error())
	}

	c.Next()

	if req != nil {
		req.DurationMs = util.Int64Pointer(time.Since(start).Milliseconds())
		req.StatusCode = util.Int32Pointer(int32(c.Writer.Status()))
		req.ResponseBody = util.StringPointer(w.body.String())
		req.UserID = userIDFromContext(c)

		err = m.ApiRequestRepository.Update(m.Db, *req)
		if err != nil {
			lg.Warnw("failed to update api request", "error", err.Error())
		}
	}
}

// supabase subjects are uuids; anything else isn't stored
func userIDFromContext(c *gin.Context) *uuid.UUID {
	raw := strings.TrimSpace(c.GetString("userID"))
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}
