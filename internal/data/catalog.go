package data

import "github.com/teampath/learnhub-backend/internal/types"

// catalog is the immutable seed content every deployment starts with. Users
// never mutate these records directly; adding one to a learning path copies
// it into the per-user module store.
var catalog = []types.LearningModule{
	{
		ID:              "mod-001",
		Title:           "React Advanced Patterns",
		Description:     "Render props, compound components and hooks composition for large React codebases.",
		Type:            types.ModuleTypeVideo,
		Duration:        45,
		Difficulty:      types.DifficultyAdvanced,
		Category:        "Product Engineering",
		Mandatory:       false,
		Tags:            []string{"react", "frontend", "javascript"},
		CreatedBy:       "Learning Team",
		PopularityScore: 92,
		Rating:          4.7,
		TotalRatings:    128,
	},
	{
		ID:              "mod-002",
		Title:           "TypeScript Mastery",
		Description:     "Generics, conditional types and strict-mode migration strategies for production TypeScript.",
		Type:            types.ModuleTypeVideo,
		Duration:        120,
		Difficulty:      types.DifficultyIntermediate,
		Category:        "Product Engineering",
		Mandatory:       false,
		Tags:            []string{"typescript", "javascript", "frontend"},
		CreatedBy:       "Learning Team",
		PopularityScore: 88,
		Rating:          4.9,
		TotalRatings:    163,
	},
	{
		ID:              "mod-003",
		Title:           "Microservices Architecture Deep Dive",
		Description:     "Service boundaries, event-driven communication and failure isolation in distributed systems.",
		Type:            types.ModuleTypePodcast,
		Duration:        60,
		Difficulty:      types.DifficultyAdvanced,
		Category:        "Platform Engineering",
		Mandatory:       false,
		Tags:            []string{"architecture", "backend", "distributed-systems"},
		CreatedBy:       "Learning Team",
		PopularityScore: 81,
		Rating:          4.5,
		TotalRatings:    94,
	},
	{
		ID:              "mod-004",
		Title:           "Leadership Fundamentals",
		Description:     "Feedback, delegation and one-on-ones for first-time leads.",
		Type:            types.ModuleTypeVideo,
		Duration:        90,
		Difficulty:      types.DifficultyBeginner,
		Category:        "Management",
		Mandatory:       true,
		Tags:            []string{"leadership", "management", "communication"},
		CreatedBy:       "People Team",
		PopularityScore: 95,
		Rating:          4.8,
		TotalRatings:    215,
	},
	{
		ID:              "mod-005",
		Title:           "Cloud Architecture with AWS",
		Description:     "Designing resilient workloads on AWS: networking, storage tiers and cost controls.",
		Type:            types.ModuleTypeVideo,
		Duration:        180,
		Difficulty:      types.DifficultyIntermediate,
		Category:        "Platform Engineering",
		Mandatory:       false,
		Tags:            []string{"cloud", "aws", "architecture"},
		CreatedBy:       "Learning Team",
		PopularityScore: 86,
		Rating:          4.6,
		TotalRatings:    201,
	},
	{
		ID:              "mod-006",
		Title:           "Kubernetes for Developers",
		Description:     "Deployments, services and debugging workloads without owning the cluster.",
		Type:            types.ModuleTypeInteractive,
		Duration:        150,
		Difficulty:      types.DifficultyIntermediate,
		Category:        "Platform Engineering",
		Mandatory:       false,
		Tags:            []string{"kubernetes", "cloud", "containers"},
		CreatedBy:       "Learning Team",
		PopularityScore: 78,
		Rating:          4.4,
		TotalRatings:    87,
	},
	{
		ID:              "mod-007",
		Title:           "Security Awareness Essentials",
		Description:     "Phishing, credential hygiene and incident reporting. Required yearly.",
		Type:            types.ModuleTypeDocument,
		Duration:        30,
		Difficulty:      types.DifficultyBeginner,
		Category:        "Compliance",
		Mandatory:       true,
		Tags:            []string{"security", "compliance"},
		CreatedBy:       "Security Team",
		PopularityScore: 60,
		Rating:          4.1,
		TotalRatings:    342,
	},
	{
		ID:              "mod-008",
		Title:           "Effective Technical Communication",
		Description:     "Design docs, code review comments and presenting to non-engineers.",
		Type:            types.ModuleTypePodcast,
		Duration:        40,
		Difficulty:      types.DifficultyBeginner,
		Category:        "Product Engineering",
		Mandatory:       false,
		Tags:            []string{"communication", "writing"},
		CreatedBy:       "People Team",
		PopularityScore: 72,
		Rating:          4.3,
		TotalRatings:    119,
	},
}

// Catalog returns a fresh copy of the seed modules so callers can decorate
// entries (progress, collaboration fields) without touching the seed.
func Catalog() []types.LearningModule {
	out := make([]types.LearningModule, len(catalog))
	copy(out, catalog)
	for i := range out {
		out[i].Tags = append([]string(nil), catalog[i].Tags...)
	}
	return out
}
