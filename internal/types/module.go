package types

// ModuleType enumerates the supported content formats.
type ModuleType string

const (
	ModuleTypeVideo       ModuleType = "video"
	ModuleTypePodcast     ModuleType = "podcast"
	ModuleTypeDocument    ModuleType = "document"
	ModuleTypeInteractive ModuleType = "interactive"
)

// Difficulty enumerates the supported skill levels.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// LearningModule is a content unit. Catalog entries carry only the base
// fields; personal copies, branches and pulled copies additionally carry the
// collaboration fields, which are written exclusively by the collab service
// constructors (BranchOf, PullOf).
//
// The json layout mirrors the records the web client already persists, so a
// store seeded by the old front end still reads back cleanly.
type LearningModule struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Type        ModuleType `json:"type"`
	Duration    int        `json:"duration"`
	Difficulty  Difficulty `json:"difficulty"`
	Category    string     `json:"category"`
	Mandatory   bool       `json:"mandatory"`
	Progress    int        `json:"progress"`
	Tags        []string   `json:"tags"`
	Thumbnail   string     `json:"thumbnail,omitempty"`
	CreatedBy   string     `json:"createdBy,omitempty"`

	PopularityScore float64 `json:"popularityScore,omitempty"`
	Rating          float64 `json:"rating,omitempty"`
	TotalRatings    int     `json:"totalRatings,omitempty"`

	// Collaboration fields. SourceModuleID is the source of truth;
	// ParentModule is a legacy mirror kept for records written by older
	// clients and is always set alongside it.
	BranchID       string `json:"branchId,omitempty"`
	BranchOwnerID  string `json:"branchOwnerId,omitempty"`
	BranchName     string `json:"branchName,omitempty"`
	SourceModuleID string `json:"sourceModuleId,omitempty"`
	IsBranched     bool   `json:"isBranched,omitempty"`
	ParentModule   string `json:"parentModule,omitempty"`
	IsPublic       *bool  `json:"isPublic,omitempty"`
	PulledFrom     string `json:"pulledFrom,omitempty"`
	ChatRoomID     string `json:"chatRoomId,omitempty"`
}

// Source returns the module id discussion and dedup checks key on: the
// source module when set, otherwise the module's own id.
func (m *LearningModule) Source() string {
	if m.SourceModuleID != "" {
		return m.SourceModuleID
	}
	if m.ParentModule != "" {
		return m.ParentModule
	}
	return m.ID
}

// Public reports branch visibility. Unset defaults to visible.
func (m *LearningModule) Public() bool {
	return m.IsPublic == nil || *m.IsPublic
}
