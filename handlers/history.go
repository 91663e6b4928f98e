package handlers

import (
	"log"
	"net/http"
	"strconv"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"go-grammatik/db"
)

// GetHistory handles GET /history: the learner's most recently analyzed
// sentences. Returns 503 when the deployment runs without persistence.
func GetHistory(c *gin.Context, firestoreClient *firestore.Client) {
	if firestoreClient == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "history not available without persistence"})
		return
	}

	limit := 20
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be 1-100"})
			return
		}
		limit = n
	}

	records, err := db.GetRecentAnalyses(c.Request.Context(), firestoreClient, limit)
	if err != nil {
		log.Printf("Failed to load analysis history: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":    len(records),
		"analyses": records,
	})
}
