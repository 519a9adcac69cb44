package services

import (
	"sort"
	"strings"

	"github.com/teampath/learnhub-backend/internal/types"
)

const (
	planResultLimit = 8
	planScoreFloor  = 10
)

// planStopWords are filler tokens in goal statements that carry no signal.
var planStopWords = map[string]struct{}{
	"want":     {},
	"become":   {},
	"learn":    {},
	"learned":  {},
	"learning": {},
	"get":      {},
	"need":     {},
}

// ModuleMatch pairs a catalog module with its 0-100 relevance score.
type ModuleMatch struct {
	Module types.LearningModule `json:"module"`
	Score  float64              `json:"score"`
}

// MatchGoal ranks catalog modules against a free-text learning goal. It is
// a keyword-overlap heuristic, not a model: no randomness, no external
// calls, bit-identical output for identical input. Modules scoring below the
// floor are dropped; at most the top 8 survive.
func MatchGoal(goal string, preferredTypes []types.ModuleType, difficulty types.Difficulty, catalog []types.LearningModule) []ModuleMatch {
	tokens := goalTokens(goal)
	rawGoal := strings.ToLower(strings.TrimSpace(goal))

	preferred := map[types.ModuleType]struct{}{}
	for _, t := range preferredTypes {
		preferred[t] = struct{}{}
	}

	var matches []ModuleMatch
	for _, m := range catalog {
		title := strings.ToLower(m.Title)
		desc := strings.ToLower(m.Description)
		category := strings.ToLower(m.Category)

		score := overlapRatio(tokens, title, len(tokens))*40 +
			overlapRatio(tokens, desc, len(tokens))*30 +
			tagOverlapRatio(tokens, m.Tags)*20 +
			overlapRatio(tokens, category, len(tokens))*10

		if _, ok := preferred[m.Type]; ok {
			score += 10
		} else if len(preferred) > 0 {
			score -= 5
		}
		if m.Difficulty == difficulty {
			score += 5
		}
		score = clamp(score)

		if rawGoal != "" && (strings.Contains(title, rawGoal) || strings.Contains(desc, rawGoal)) {
			score = clamp(score + 15)
		}

		if score < planScoreFloor {
			continue
		}
		matches = append(matches, ModuleMatch{Module: m, Score: score})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if len(matches) > planResultLimit {
		matches = matches[:planResultLimit]
	}
	return matches
}

func goalTokens(goal string) []string {
	var tokens []string
	for _, tok := range strings.Fields(strings.ToLower(goal)) {
		if len(tok) <= 2 {
			continue
		}
		if _, stop := planStopWords[tok]; stop {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// overlapRatio counts goal tokens appearing as substrings of text, over the
// given denominator (at least 1).
func overlapRatio(tokens []string, text string, denom int) float64 {
	if denom < 1 {
		denom = 1
	}
	found := 0
	for _, tok := range tokens {
		if strings.Contains(text, tok) {
			found++
		}
	}
	return float64(found) / float64(denom)
}

// tagOverlapRatio counts goal tokens matched by any tag, over the tag count.
func tagOverlapRatio(tokens []string, tags []string) float64 {
	denom := len(tags)
	if denom < 1 {
		denom = 1
	}
	found := 0
	for _, tok := range tokens {
		for _, tag := range tags {
			if strings.Contains(strings.ToLower(tag), tok) {
				found++
				break
			}
		}
	}
	return float64(found) / float64(denom)
}

func clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
