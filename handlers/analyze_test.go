package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-grammatik/engine"
	"go-grammatik/processor"
	"go-grammatik/types"
)

func analyzeRouter(analyzer *processor.Analyzer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/analyze", func(c *gin.Context) {
		AnalyzeSentence(c, analyzer)
	})
	return r
}

func postAnalyze(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestAnalyzeEmptyTextIsNormalResult(t *testing.T) {
	// Empty input never reaches the parser, so no sidecar is needed here.
	analyzer := &processor.Analyzer{Engine: engine.Default()}
	w := postAnalyze(t, analyzeRouter(analyzer), `{"text": ""}`)
	require.Equal(t, http.StatusOK, w.Code)

	var res types.AnalysisResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, 0, res.Summary.Total)
	assert.Len(t, res.ByLevel, len(types.Levels))
}

func TestAnalyzeRejectsMalformedBody(t *testing.T) {
	analyzer := &processor.Analyzer{Engine: engine.Default()}
	w := postAnalyze(t, analyzeRouter(analyzer), `{"text": 12`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeRejectsOverlongSentence(t *testing.T) {
	analyzer := &processor.Analyzer{Engine: engine.Default()}
	long := strings.Repeat("a", maxSentenceLength+1)
	w := postAnalyze(t, analyzeRouter(analyzer), `{"text": "`+long+`"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
