package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"go-grammatik/types"
)

const parseCacheCollection = "parseCache"

// cachedParse is one stored sidecar result, keyed by HashString(text).
type cachedParse struct {
	Text     string         `firestore:"text"`
	Tokens   []types.Token  `firestore:"tokens"`
	Entities []types.Entity `firestore:"entities,omitempty"`
	CachedAt time.Time      `firestore:"cachedAt"`
}

// GetCachedParse returns the cached sentence for the text, if present.
// A cache miss is (zero, false, nil), not an error.
func GetCachedParse(ctx context.Context, client *firestore.Client, text string) (types.Sentence, bool, error) {
	doc, err := client.Collection(parseCacheCollection).Doc(HashString(text)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return types.Sentence{}, false, nil
		}
		return types.Sentence{}, false, fmt.Errorf("reading parse cache: %w", err)
	}
	var cp cachedParse
	if err := doc.DataTo(&cp); err != nil {
		return types.Sentence{}, false, fmt.Errorf("decoding parse cache entry: %w", err)
	}
	return types.Sentence{Text: cp.Text, Tokens: cp.Tokens, Entities: cp.Entities}, true, nil
}

// SaveCachedParse stores a sidecar result for reuse.
func SaveCachedParse(ctx context.Context, client *firestore.Client, s types.Sentence) error {
	entry := cachedParse{
		Text:     s.Text,
		Tokens:   s.Tokens,
		Entities: s.Entities,
		CachedAt: time.Now().UTC(),
	}
	_, err := client.Collection(parseCacheCollection).Doc(HashString(s.Text)).Set(ctx, entry)
	if err != nil {
		return fmt.Errorf("writing parse cache: %w", err)
	}
	return nil
}

// PruneParseCache deletes cache entries older than maxAge and returns how
// many were removed.
func PruneParseCache(ctx context.Context, client *firestore.Client, maxAge time.Duration) (int, error) {
	cutoff := time.Now().UTC().Add(-maxAge)
	iter := client.Collection(parseCacheCollection).
		Where("cachedAt", "<", cutoff).
		Documents(ctx)

	deleted := 0
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return deleted, fmt.Errorf("iterating parse cache: %w", err)
		}
		if _, err := doc.Ref.Delete(ctx); err != nil {
			log.Printf("Failed to delete stale parse cache doc %s: %v", doc.Ref.ID, err)
			continue
		}
		deleted++
	}
	return deleted, nil
}
