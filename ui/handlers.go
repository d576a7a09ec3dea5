package ui

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"golift/app"
	"golift/domain/core"
	"golift/domain/stats"
	apperrors "golift/internal/errors"
	"golift/ports"
)

// groupCounts is the wire form of one group's observed counts
type groupCounts struct {
	Successes int `json:"successes"`
	Total     int `json:"total"`
}

func (g groupCounts) sample() stats.Sample {
	return stats.Sample{Successes: g.Successes, Total: g.Total}
}

// compareBody is the request body for POST /api/v1/compare
type compareBody struct {
	Metric     string      `json:"metric"`
	Control    groupCounts `json:"control"`
	Test       groupCounts `json:"test"`
	Confidence float64     `json:"confidence"`
	Alpha      float64     `json:"alpha"`
}

// batchBody is the request body for POST /api/v1/batch
type batchBody struct {
	Metrics []struct {
		Key     string      `json:"key"`
		Control groupCounts `json:"control"`
		Test    groupCounts `json:"test"`
	} `json:"metrics"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleCompare(c *gin.Context) {
	var body compareBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	metric, err := core.ParseMetricKey(body.Metric)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := s.compare.Compare(c.Request.Context(), app.CompareRequest{
		Metric:     metric,
		Control:    body.Control.sample(),
		Test:       body.Test.sample(),
		Confidence: body.Confidence,
		Alpha:      body.Alpha,
	})
	if err != nil {
		if core.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[Compare] comparison failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "comparison failed"})
		return
	}

	c.JSON(http.StatusOK, report)
}

func (s *Server) handleBatch(c *gin.Context) {
	var body batchBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if len(body.Metrics) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "batch contains no metrics"})
		return
	}

	counts := make([]ports.MetricCounts, 0, len(body.Metrics))
	for _, m := range body.Metrics {
		key, err := core.ParseMetricKey(m.Key)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		counts = append(counts, ports.MetricCounts{
			Metric:  key,
			Control: m.Control.sample(),
			Test:    m.Test.sample(),
		})
	}

	result, err := s.batch.Run(c.Request.Context(), counts)
	if err != nil {
		if core.IsValidationError(err) || apperrors.GetCode(err) == apperrors.CodeInvalidInput {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[Batch] batch run failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "batch run failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}
