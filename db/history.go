package db

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"go-grammatik/types"
)

const historyCollection = "analyses"

// AnalysisRecord is one analyzed sentence saved for the learner's history.
type AnalysisRecord struct {
	ID         string            `firestore:"-" json:"id"`
	Text       string            `firestore:"text" json:"text"`
	Detections []types.Detection `firestore:"detections" json:"detections"`
	Summary    types.Summary     `firestore:"summary" json:"summary"`
	AnalyzedAt time.Time         `firestore:"analyzedAt" json:"analyzedAt"`
}

// SaveAnalysis stores an analysis result under the given record id.
func SaveAnalysis(ctx context.Context, client *firestore.Client, id string, res types.AnalysisResult) error {
	record := AnalysisRecord{
		Text:       res.Text,
		Detections: res.Detections,
		Summary:    res.Summary,
		AnalyzedAt: time.Now().UTC(),
	}
	_, err := client.Collection(historyCollection).Doc(id).Set(ctx, record)
	if err != nil {
		return fmt.Errorf("saving analysis record: %w", err)
	}
	return nil
}

// GetRecentAnalyses returns the newest analysis records, most recent first.
func GetRecentAnalyses(ctx context.Context, client *firestore.Client, limit int) ([]AnalysisRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	iter := client.Collection(historyCollection).
		OrderBy("analyzedAt", firestore.Desc).
		Limit(limit).
		Documents(ctx)

	var records []AnalysisRecord
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterating analysis history: %w", err)
		}
		var rec AnalysisRecord
		if err := doc.DataTo(&rec); err != nil {
			return nil, fmt.Errorf("decoding analysis record %s: %w", doc.Ref.ID, err)
		}
		rec.ID = doc.Ref.ID
		records = append(records, rec)
	}
	return records, nil
}
