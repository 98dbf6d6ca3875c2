package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/forgewatch/forgewatch/pkg/models"
	"github.com/forgewatch/forgewatch/pkg/services"
)

// maxPageSize caps the anomaly list page.
const maxPageSize = 200

// anomalyListResponse is the paginated list envelope.
type anomalyListResponse struct {
	Anomalies []*models.AnomalyReport `json:"anomalies"`
	Total     int                     `json:"total"`
	Limit     int                     `json:"limit"`
	Offset    int                     `json:"offset"`
}

// listAnomalies handles GET /api/v1/anomalies.
// Query params: severity, user, repo, since (RFC3339), until (RFC3339),
// limit, offset.
func (s *Server) listAnomalies(c *gin.Context) {
	filter, ok := parseAnomalyFilter(c)
	if !ok {
		return
	}

	records, total, err := s.anomalies.ListAnomalies(c.Request.Context(), filter)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	reports := make([]*models.AnomalyReport, len(records))
	for i, rec := range records {
		reports[i] = services.ReportFromRecord(rec)
	}

	c.JSON(http.StatusOK, anomalyListResponse{
		Anomalies: reports,
		Total:     total,
		Limit:     filter.Limit,
		Offset:    filter.Offset,
	})
}

// getAnomaly handles GET /api/v1/anomalies/:event_id.
func (s *Server) getAnomaly(c *gin.Context) {
	record, err := s.anomalies.GetAnomalyByEventID(c.Request.Context(), c.Param("event_id"))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, services.ReportFromRecord(record))
}

// getStats handles GET /api/v1/stats. The optional "window" param (a Go
// duration, default 24h) bounds the aggregation.
func (s *Server) getStats(c *gin.Context) {
	window := 24 * time.Hour
	if raw := c.Query("window"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid window duration"})
			return
		}
		window = parsed
	}

	stats, err := s.anomalies.GetStats(c.Request.Context(), time.Now().UTC().Add(-window))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	resp := gin.H{
		"window":    window.String(),
		"anomalies": stats,
	}
	if s.pool != nil {
		resp["queue"] = s.pool.Health()
	}
	c.JSON(http.StatusOK, resp)
}

func parseAnomalyFilter(c *gin.Context) (services.AnomalyFilter, bool) {
	filter := services.AnomalyFilter{
		Severity: c.Query("severity"),
		User:     c.Query("user"),
		Repo:     c.Query("repo"),
		Limit:    50,
	}

	if filter.Severity != "" && !validSeverity(filter.Severity) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid severity"})
		return filter, false
	}

	if raw := c.Query("since"); raw != "" {
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid since timestamp, expected RFC3339"})
			return filter, false
		}
		filter.Since = ts
	}
	if raw := c.Query("until"); raw != "" {
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid until timestamp, expected RFC3339"})
			return filter, false
		}
		filter.Until = ts
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return filter, false
		}
		filter.Limit = min(limit, maxPageSize)
	}
	if raw := c.Query("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offset"})
			return filter, false
		}
		filter.Offset = offset
	}

	return filter, true
}

func validSeverity(s string) bool {
	for _, sev := range models.Severities() {
		if string(sev) == s {
			return true
		}
	}
	return false
}
