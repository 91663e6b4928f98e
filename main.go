package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/sashabaranov/go-openai"

	"go-grammatik/cronjobs"
	"go-grammatik/db"
	"go-grammatik/engine"
	"go-grammatik/llmdetect"
	"go-grammatik/parser"
	"go-grammatik/processor"
	"go-grammatik/routes"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	// Start the spaCy sidecar first; without it there is nothing to analyze.
	parserClient, err := parser.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to start parser service: %v", err)
	}
	defer parserClient.Close()

	analyzer := &processor.Analyzer{
		Engine: engine.Default(),
		Parser: parserClient,
	}

	// Firestore is optional: without credentials the service still analyzes,
	// it just skips parse caching and history.
	if os.Getenv("FIREBASE_CREDENTIALS") != "" {
		firestoreClient := db.InitFirestore()
		defer db.CloseFirestore() // Firestore client is closed on exit

		analyzer.Firestore = firestoreClient
		analyzer.SaveHistory = true
		cronjobs.InitCronJobs(firestoreClient)
	} else {
		log.Println("FIREBASE_CREDENTIALS not set, running without persistence")
	}

	// LLM fallback, gated to sparse rule results and disableable.
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey != "" && os.Getenv("LLM_FALLBACK") != "disabled" {
		fmt.Println("OPENAI_API_KEY loaded, LLM fallback enabled")
		analyzer.Fallback = llmdetect.New(openai.NewClient(apiKey), os.Getenv("LLM_FALLBACK_MODEL"))
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter(analyzer.Firestore, analyzer)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
