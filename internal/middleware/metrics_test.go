package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/course-admin-api/internal/service"
)

func TestMetricsRecordsRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	metricsSvc := service.NewMetricsService()
	r := gin.New()
	r.Use(Metrics(metricsSvc))
	r.DELETE("/api/subjects/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	req, _ := http.NewRequest(http.MethodDelete, "/api/subjects/subj_1_abcde", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)
	req, _ = http.NewRequest(http.MethodGet, "/nowhere", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	families, err := metricsSvc.Registry().Gather()
	require.NoError(t, err)

	paths := map[string]bool{}
	for _, family := range families {
		if family.GetName() != "http_requests_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "path" {
					paths[label.GetValue()] = true
				}
			}
		}
	}
	assert.True(t, paths["/api/subjects/:id"])
	assert.True(t, paths["unmatched"])
	assert.False(t, paths["/nowhere"])
}
