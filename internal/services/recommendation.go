package services

import (
	"sort"
	"strings"

	"github.com/teampath/learnhub-backend/internal/types"
)

const (
	recommendedLimit = 10
	noteworthyLimit  = 8
)

// RecommendationBuckets carries the four dashboard carousels.
type RecommendationBuckets struct {
	Recommended         []types.LearningModule `json:"recommended"`
	NewAndNoteworthy    []types.LearningModule `json:"newAndNoteworthy"`
	PopularInDept       []types.LearningModule `json:"popularInDept"`
	BecauseYouCompleted []types.LearningModule `json:"becauseYouCompleted"`
}

// Recommend buckets a user's module snapshot. Pure and deterministic: same
// inputs, same output. The caller is responsible for ordering the input by
// recency if it wants newAndNoteworthy to mean "new".
func Recommend(user types.User, all []types.LearningModule) RecommendationBuckets {
	popular := make([]types.LearningModule, len(all))
	copy(popular, all)
	sort.SliceStable(popular, func(i, j int) bool {
		return popular[i].PopularityScore > popular[j].PopularityScore
	})

	recent := all
	if len(recent) > noteworthyLimit {
		recent = recent[len(recent)-noteworthyLimit:]
	}

	deptToken := ""
	if fields := strings.Fields(user.Department); len(fields) > 0 {
		deptToken = strings.ToLower(fields[0])
	}
	var byDept []types.LearningModule
	for _, m := range all {
		if strings.Contains(strings.ToLower(m.Category), deptToken) {
			byDept = append(byDept, m)
		}
	}

	completedTags := map[string]struct{}{}
	for _, m := range all {
		if m.Progress == 100 {
			for _, t := range m.Tags {
				completedTags[t] = struct{}{}
			}
		}
	}
	var similar []types.LearningModule
	for _, m := range all {
		if m.Progress >= 100 {
			continue
		}
		for _, t := range m.Tags {
			if _, ok := completedTags[t]; ok {
				similar = append(similar, m)
				break
			}
		}
	}

	return RecommendationBuckets{
		Recommended:         head(popular, recommendedLimit),
		NewAndNoteworthy:    recent,
		PopularInDept:       head(byDept, recommendedLimit),
		BecauseYouCompleted: head(similar, recommendedLimit),
	}
}

func head(modules []types.LearningModule, n int) []types.LearningModule {
	if len(modules) > n {
		return modules[:n]
	}
	return modules
}
