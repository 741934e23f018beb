package knowledge

// Program is one catalog entry. Immutable after load.
type Program struct {
	Name           string   `json:"name"`
	Duration       string   `json:"duration"`
	Format         string   `json:"format"`
	Price          string   `json:"price"`
	Description    string   `json:"description"`
	Highlights     []string `json:"highlights"`
	TargetAudience string   `json:"target_audience"`
	Prerequisites  string   `json:"prerequisites"`
	KeyOutcomes    string   `json:"key_outcomes"`
}

// FAQ is one question/answer pair. Immutable after load.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Contact holds the organization contact block.
type Contact struct {
	Phone         string `json:"phone"`
	Website       string `json:"website"`
	Mission       string `json:"mission"`
	CommunitySize string `json:"community_size"`
}

// Enrollment describes the enrollment process. Immutable after load.
type Enrollment struct {
	Steps          []string `json:"steps"`
	Requirements   []string `json:"requirements"`
	PaymentOptions []string `json:"payment_options"`
	StartDates     string   `json:"start_dates"`
	Contact        Contact  `json:"contact"`
	WhoShouldJoin  []string `json:"who_should_join"`
}
