package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	provider, err := NewProvider("fieldcrypt_test")
	require.NoError(t, err)

	middleware, err := HTTPMetricsMiddleware(provider.MeterProvider(), "fieldcrypt_test")
	require.NoError(t, err)

	router := gin.New()
	router.Use(middleware)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	for _, path := range []string{"/health", "/health", "/missing"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	}

	output := scrape(t, provider)

	assertMetricLine(t, output, `fieldcrypt_test_http_requests_total`,
		`method="GET".*path="/health".*status_code="200"`, `2`)
	assertMetricLine(t, output, `fieldcrypt_test_http_requests_total`,
		`method="GET".*path="unknown".*status_code="404"`, `1`)
}

func TestRoutePattern(t *testing.T) {
	assert.Equal(t, "unknown", routePattern(""))
	assert.Equal(t, "/metrics", routePattern("/metrics"))
}
