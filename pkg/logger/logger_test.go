package logger

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_LevelAndFormat(t *testing.T) {
	log := New("debug", "text")
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, log.Formatter)

	log = New("nonsense", "")
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, log.Formatter)
}

func TestGinMiddleware(t *testing.T) {
	// Подготовка
	var buf bytes.Buffer
	log := New("info", "json")
	log.SetOutput(&buf)
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(GinMiddleware(log))
	router.GET("/incidents/:id", func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})

	// Действие
	req := httptest.NewRequest(http.MethodGet, "/incidents/42", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Проверки
	assert.Equal(t, "req-1", w.Header().Get(RequestIDHeader))
	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "req-1", line["request_id"])
	assert.Equal(t, "/incidents/:id", line["path"])
	assert.Equal(t, float64(http.StatusNotFound), line["status"])
	assert.Equal(t, "warning", line["level"])
}

func TestGinMiddleware_GeneratesRequestID(t *testing.T) {
	log := New("info", "json")
	log.SetOutput(&bytes.Buffer{})
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(GinMiddleware(log))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Len(t, w.Header().Get(RequestIDHeader), 36)
}
