package user

const (
	// DefaultPage is used when the caller does not ask for a page.
	DefaultPage = 1
	// DefaultPageSize is used when the caller does not ask for a page size.
	DefaultPageSize = 10
)

// Page selects a window of the insertion-ordered user collection.
type Page struct {
	Number int // 1-based page number
	Size   int // Number of records per page, unbounded
}

// NewPage creates a Page, falling back to defaults for unspecified values.
func NewPage(number, size *int) Page {
	p := Page{Number: DefaultPage, Size: DefaultPageSize}
	if number != nil {
		p.Number = *number
	}
	if size != nil {
		p.Size = *size
	}
	return p
}

// Bounds returns the half-open range [start, end) of a collection of length total
// covered by the page. Pages at or below 1 skip nothing, and a non-positive size
// selects nothing. Out-of-range pages yield an empty range.
func (p Page) Bounds(total int) (start, end int) {
	if p.Size <= 0 || total <= 0 {
		return 0, 0
	}

	if p.Number > 1 {
		// (Number-1)*Size > total without overflowing
		if p.Number-1 > total/p.Size {
			return total, total
		}
		start = (p.Number - 1) * p.Size
	}
	if start >= total {
		return total, total
	}

	end = total
	if p.Size < total-start {
		end = start + p.Size
	}
	return start, end
}
