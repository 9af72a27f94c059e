package word

const (
	defaultPerPage     = 20
	maxPerPage         = 200
	searchPerPageFloor = 50
)

// filter holds normalized pagination parameters.
type filter struct {
	page    int
	perPage int
}

// newFilter clamps page and perPage into valid ranges. floor, when positive,
// is the minimum page size (syllable search enforces 50).
func newFilter(page, perPage, floor int) filter {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	if floor > 0 && perPage < floor {
		perPage = floor
	}
	return filter{page: page, perPage: perPage}
}

func (f filter) limit() uint64 {
	return uint64(f.perPage)
}

func (f filter) offset() uint64 {
	return uint64((f.page - 1) * f.perPage)
}
