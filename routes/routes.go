package routes

import (
	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"go-grammatik/handlers"
	"go-grammatik/processor"
)

func SetupRouter(firestoreClient *firestore.Client, analyzer *processor.Analyzer) *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Hello, welcome to Grammatik!",
		})
	})

	api := r.Group("/api/grammatik")
	{
		api.POST("/analyze", func(c *gin.Context) {
			handlers.AnalyzeSentence(c, analyzer)
		})
		api.GET("/catalog", handlers.GetCatalog)
		api.GET("/catalog/:id", handlers.GetGrammarPoint)
		api.GET("/history", func(c *gin.Context) {
			handlers.GetHistory(c, firestoreClient)
		})
	}

	return r
}
