package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-grammatik/processor"
)

// maxSentenceLength guards the sidecar and the LLM from essay-sized input.
const maxSentenceLength = 1000

// AnalyzeSentence handles POST /analyze: runs the full pipeline over one
// sentence and returns the complete result object. "No grammar points
// detected" is a normal 200 with empty lists.
func AnalyzeSentence(c *gin.Context, analyzer *processor.Analyzer) {
	var request struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(request.Text) > maxSentenceLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sentence too long"})
		return
	}

	result, err := analyzer.AnalyzeText(c.Request.Context(), request.Text)
	if err != nil {
		log.Printf("Analysis failed for %q: %v", request.Text, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "analysis failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}
