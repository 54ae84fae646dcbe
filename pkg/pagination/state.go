package pagination

// State is the page position held by a list view. The zero value is page 1
// with DefaultPageSize.
type State struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// NewState returns a state positioned on the first page.
func NewState(pageSize int) *State {
	return &State{Page: 1, PageSize: normalizeSize(pageSize)}
}

// SetPage moves to page. The value is clamped on the next Clamp or Apply.
func (s *State) SetPage(page int) {
	s.Page = page
}

// SetPageSize changes the page size and goes back to the first page.
func (s *State) SetPageSize(size int) {
	s.PageSize = normalizeSize(size)
	s.Page = 1
}

func (s *State) Next() { s.Page++ }

func (s *State) Prev() {
	if s.Page > 1 {
		s.Page--
	}
}

// Clamp keeps the state valid for a collection of totalItems, for example
// after a filter shrank the list below the current page.
func (s *State) Clamp(totalItems int) {
	s.PageSize = normalizeSize(s.PageSize)
	s.Page = ClampPage(s.Page, TotalPages(totalItems, s.PageSize))
}

// Apply clamps the state against items and returns the current page.
func Apply[T any](s *State, items []T) Page[T] {
	s.Clamp(len(items))
	return Paginate(items, s.Page, s.PageSize)
}
