package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-grammatik/catalog"
	"go-grammatik/types"
)

// GetCatalog handles GET /catalog with optional filters:
//
//	?level=B1              points at exactly B1
//	?level=B1&cumulative=1 everything a B1 learner should know
//	?category=tense        points in one category
//
// Filters combine: level is applied first, category second.
func GetCatalog(c *gin.Context) {
	points := catalog.All()

	if lv := c.Query("level"); lv != "" {
		level := types.Level(lv)
		if level.Order() < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown level: " + lv})
			return
		}
		if c.Query("cumulative") != "" {
			points = catalog.UpToLevel(level)
		} else {
			points = catalog.AtLevel(level)
		}
	}

	if cat := c.Query("category"); cat != "" {
		category := types.Category(cat)
		if !category.Known() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category: " + cat})
			return
		}
		filtered := points[:0:0]
		for _, p := range points {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
		points = filtered
	}

	c.JSON(http.StatusOK, gin.H{
		"count":  len(points),
		"points": points,
	})
}

// GetGrammarPoint handles GET /catalog/:id.
func GetGrammarPoint(c *gin.Context) {
	point, ok := catalog.PointByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "grammar point not found"})
		return
	}
	c.JSON(http.StatusOK, point)
}
