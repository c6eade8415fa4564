package trivia

// QuestionsPerPage is the fixed page size for question listings.
const QuestionsPerPage = 10

// CategoryIDOffset translates wire category ids (zero-based, in the order
// categories are listed) into storage ids. Seed migrations insert categories
// with explicit ids starting at 1 so that wire id N always maps to storage id N+1.
const CategoryIDOffset = 1

// AnyCategory is the quiz_category.type value the client sends when the
// player picked "All" instead of a specific category.
const AnyCategory = "click"

// StorageCategoryID converts a wire category id into the id used by the store.
func StorageCategoryID(wireID int64) int64 {
	return wireID + CategoryIDOffset
}

// Category is a question grouping. Name is exposed as "type" on the wire.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"type"`
}

// Question is a stored trivia question.
type Question struct {
	ID         int64  `json:"id"`
	Text       string `json:"question"`
	Answer     string `json:"answer"`
	CategoryID int64  `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// NewQuestion carries the fields needed to insert a question. CategoryID is a storage id.
type NewQuestion struct {
	Text       string
	Answer     string
	CategoryID int64
	Difficulty int
}

// CategoryNames returns the display names in order.
func CategoryNames(categories []Category) []string {
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}
	return names
}
