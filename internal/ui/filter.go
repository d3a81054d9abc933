package ui

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// FilterConfig bundles tuning parameters for the search filter.
type FilterConfig struct {
	MinCoverage float64 // minimal share of the query that must match
	MaxSpread   int     // maximal distance between first and last match index
	MaxResults  int     // upper limit of returned results
}

// filterLines returns the lines fuzzy-matching q, pruned by coverage
// and spread thresholds. An empty query returns lines unchanged.
func filterLines(lines []Line, q string, cfg FilterConfig) []Line {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return lines
	}
	base := make([]string, len(lines))
	for i, l := range lines {
		base[i] = strings.ToLower(l.Text)
	}
	matches := fuzzy.Find(q, base)

	out := make([]Line, 0, min(len(matches), cfg.MaxResults))
	for _, mt := range matches {
		if matchCoverage(q, mt) < cfg.MinCoverage {
			continue
		}
		if matchSpread(mt) > cfg.MaxSpread {
			continue
		}
		out = append(out, lines[mt.Index])
		if cfg.MaxResults > 0 && len(out) >= cfg.MaxResults {
			break
		}
	}
	return out
}

// matchCoverage returns the ratio of matched characters to the query length.
func matchCoverage(q string, m fuzzy.Match) float64 {
	if len(q) == 0 {
		return 1
	}
	return float64(len(m.MatchedIndexes)) / float64(len(q))
}

// matchSpread returns the distance between the first and last matched index.
func matchSpread(m fuzzy.Match) int {
	if len(m.MatchedIndexes) == 0 {
		return 0
	}
	return m.MatchedIndexes[len(m.MatchedIndexes)-1] - m.MatchedIndexes[0]
}

// applyFilter hands the engine the item snapshot matching the current
// query. Collection replacement, so the height cache invalidates.
func (m Model) applyFilter() {
	if m.query == "" {
		m.eng.SetItems(m.lines)
		return
	}
	m.eng.SetItems(filterLines(m.lines, m.query, m.filterCfg))
}
