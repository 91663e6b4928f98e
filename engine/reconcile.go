package engine

import (
	"log"
	"sort"

	"go-grammatik/explain"
	"go-grammatik/types"
)

// Reconcile turns raw detector candidates into the final annotation set.
// Exported separately from Analyze so the orchestration layer can mix in
// candidates from detectors it runs itself (the LLM fallback) and still get
// identical reconciliation.
func (e *Engine) Reconcile(s types.Sentence, raw []types.Detection) types.AnalysisResult {
	kept := e.validate(s, raw)
	kept = e.filterConfidence(kept)

	sortBySpan(kept)
	var resolved []types.Detection
	for _, cluster := range clusterOverlapping(kept) {
		resolved = append(resolved, e.resolveCluster(cluster)...)
	}
	sortBySpan(resolved)

	merged := e.mergeAdjacent(resolved)

	for i := range merged {
		merged[i].Explanation = explain.Enhance(s, merged[i])
	}

	return e.aggregate(s, merged)
}

// validate rejects malformed candidates at the aggregation boundary:
// out-of-range spans, confidence outside [0,1], missing category. Unknown
// (but non-empty) categories pass: they stay in the flat list and are only
// skipped by the category tally.
func (e *Engine) validate(s types.Sentence, raw []types.Detection) []types.Detection {
	kept := raw[:0:0]
	for _, d := range raw {
		switch {
		case d.Start < 0 || d.End > len(s.Text) || d.Start > d.End:
			log.Printf("dropping detection %q: span [%d,%d) outside sentence of length %d",
				d.Point.ID, d.Start, d.End, len(s.Text))
		case d.Confidence < 0 || d.Confidence > 1:
			log.Printf("dropping detection %q: confidence %v out of range", d.Point.ID, d.Confidence)
		case d.Point.Category == "":
			log.Printf("dropping detection %q: missing category", d.Point.ID)
		default:
			kept = append(kept, d)
		}
	}
	return kept
}

func (e *Engine) filterConfidence(in []types.Detection) []types.Detection {
	kept := in[:0:0]
	for _, d := range in {
		if d.Confidence >= e.cfg.ConfidenceThreshold {
			kept = append(kept, d)
		}
	}
	return kept
}

func sortBySpan(ds []types.Detection) {
	sort.SliceStable(ds, func(i, j int) bool {
		if ds[i].Start != ds[j].Start {
			return ds[i].Start < ds[j].Start
		}
		return ds[i].End < ds[j].End
	})
}

// clusterOverlapping sweeps the span-sorted list left to right and groups it
// into maximal runs of overlapping spans: a detection starts a new cluster
// iff it overlaps none of the current cluster's members.
func clusterOverlapping(sorted []types.Detection) [][]types.Detection {
	var clusters [][]types.Detection
	var current []types.Detection
	for _, d := range sorted {
		overlapsAny := false
		for _, m := range current {
			if d.Overlaps(m) {
				overlapsAny = true
				break
			}
		}
		if len(current) > 0 && !overlapsAny {
			clusters = append(clusters, current)
			current = nil
		}
		current = append(current, d)
	}
	if len(current) > 0 {
		clusters = append(clusters, current)
	}
	return clusters
}

// resolveCluster applies the dedupe policy inside one overlap cluster:
// preserved categories survive in full; the rest are grouped by exact span
// and only the best per span survives (higher confidence, then higher
// category specificity).
func (e *Engine) resolveCluster(cluster []types.Detection) []types.Detection {
	var out []types.Detection
	type span struct{ start, end int }
	best := make(map[span]types.Detection)
	var order []span

	for _, d := range cluster {
		if e.cfg.Preserved[d.Point.Category] {
			out = append(out, d)
			continue
		}
		key := span{d.Start, d.End}
		cur, seen := best[key]
		if !seen {
			best[key] = d
			order = append(order, key)
			continue
		}
		if d.Confidence > cur.Confidence ||
			(d.Confidence == cur.Confidence && e.cfg.rank(d.Point.Category) > e.cfg.rank(cur.Point.Category)) {
			best[key] = d
		}
	}
	for _, key := range order {
		out = append(out, best[key])
	}
	return out
}

// mergeAdjacent folds consecutive detections that carry the same non-empty
// instance id and sit within the merge gap into one detection spanning
// both. Detections without an instance id never merge.
func (e *Engine) mergeAdjacent(sorted []types.Detection) []types.Detection {
	if len(sorted) == 0 {
		return sorted
	}
	out := []types.Detection{sorted[0]}
	for _, d := range sorted[1:] {
		last := &out[len(out)-1]
		if d.InstanceID != "" && d.InstanceID == last.InstanceID &&
			d.Start-last.End <= e.cfg.MergeGap {
			if d.End > last.End {
				last.End = d.End
			}
			if d.Confidence > last.Confidence {
				last.Confidence = d.Confidence
			}
			if last.Details == nil {
				last.Details = map[string]any{}
			}
			for k, v := range d.Details {
				if _, exists := last.Details[k]; !exists {
					last.Details[k] = v
				}
			}
			count, _ := last.Details["mergedFragments"].(int)
			if count == 0 {
				count = 1
			}
			last.Details["mergedFragments"] = count + 1
			continue
		}
		out = append(out, d)
	}
	return out
}

// aggregate partitions the final list by level and category and computes the
// summary. Unknown categories stay in the flat list but are skipped in the
// category tallies.
func (e *Engine) aggregate(s types.Sentence, final []types.Detection) types.AnalysisResult {
	res := types.AnalysisResult{
		Text:       s.Text,
		Detections: final,
		ByLevel:    make(map[types.Level][]types.Detection, len(types.Levels)),
		ByCategory: make(map[types.Category][]types.Detection),
		Summary: types.Summary{
			Total:      len(final),
			ByLevel:    make(map[types.Level]int, len(types.Levels)),
			ByCategory: make(map[types.Category]int),
		},
	}
	for _, lv := range types.Levels {
		res.ByLevel[lv] = []types.Detection{}
		res.Summary.ByLevel[lv] = 0
	}
	for _, d := range final {
		if lv := d.Point.Level; lv.Order() >= 0 {
			res.ByLevel[lv] = append(res.ByLevel[lv], d)
			res.Summary.ByLevel[lv]++
		}
		if cat := d.Point.Category; cat.Known() {
			res.ByCategory[cat] = append(res.ByCategory[cat], d)
			res.Summary.ByCategory[cat]++
		}
	}
	return res
}
