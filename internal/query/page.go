package query

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Page is a zero-based page request.
type Page struct {
	Number int `json:"page"`
	Size   int `json:"page_size"`
}

// Normalize clamps the page into range: negative numbers become 0, a missing
// size becomes def and sizes above max are capped.
func (p Page) Normalize(def, max int) Page {
	if p.Number < 0 {
		p.Number = 0
	}
	if p.Size <= 0 {
		p.Size = def
	}
	if p.Size > max {
		p.Size = max
	}
	return p
}

// Offset is the number of rows before this page.
func (p Page) Offset() int {
	return p.Number * p.Size
}

// PageCount returns ceil(total/size); at least 1 so an empty table still has
// a page to show.
func PageCount(total, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	if total <= 0 {
		return 1
	}
	return (total + size - 1) / size
}

// Slice returns the rows of items that fall on p. Used where paging happens
// after an in-memory filter.
func Slice[T any](items []T, p Page) []T {
	p = p.Normalize(DefaultPageSize, MaxPageSize)
	start := p.Offset()
	if start >= len(items) {
		return []T{}
	}
	end := start + p.Size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
