package shared

// Filter represents query filter options shared by all repositories.
// Results are ordered newest-first by default so freshly created records
// surface at the top of management screens.
type Filter struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
	Search   string
	Filters  map[string]any
}

// DefaultFilter returns a filter with default values
func DefaultFilter() Filter {
	return Filter{
		Page:     1,
		PageSize: 20,
		OrderBy:  "created_at",
		OrderDir: "desc",
		Filters:  make(map[string]any),
	}
}

// UnpagedFilter returns a filter that orders newest-first without any
// pagination. Aggregate computations use it so derived stats always
// cover the full collection, never just the first page.
func UnpagedFilter() Filter {
	return Filter{
		OrderBy:  "created_at",
		OrderDir: "desc",
		Filters:  make(map[string]any),
	}
}
