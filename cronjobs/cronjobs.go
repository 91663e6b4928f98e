package cronjobs

import (
	"context"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/robfig/cron/v3"

	"go-grammatik/db"
)

// parseCacheMaxAge bounds how long a cached spaCy parse stays useful; the
// German model gets upgraded occasionally and stale annotations should age
// out on their own.
const parseCacheMaxAge = 30 * 24 * time.Hour

func InitCronJobs(firestoreClient *firestore.Client) {
	log.Println("\nStarting Cron Jobs -------------------------------------------------------")
	c := cron.New()

	// Parse cache pruning: daily at 03:30
	_, err := c.AddFunc("30 3 * * *", func() {
		log.Println("\nCronJob: Parse Cache Pruning Running")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()
		deleted, err := db.PruneParseCache(ctx, firestoreClient, parseCacheMaxAge)
		if err != nil {
			log.Println("Error pruning parse cache:", err)
			return
		}
		log.Printf("Parse cache pruning done, removed %d entries", deleted)
	})
	if err != nil {
		log.Println("Error scheduling parse cache pruning:", err)
	}

	c.Start()
}
