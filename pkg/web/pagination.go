package web

// Pagination describes the window a list response covers.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Default pagination window.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// PageDefaults substitutes the default page and limit for unset values.
func PageDefaults(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}

	if limit < 1 {
		limit = DefaultLimit
	}

	return page, limit
}

// Paginated is the common list response shape.
type Paginated[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// NewPaginated assembles a list response. An empty result set yields
// total 0 and totalPages 0.
func NewPaginated[T any](data []T, page, limit, total int) Paginated[T] {
	if data == nil {
		data = []T{}
	}

	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return Paginated[T]{
		Data: data,
		Pagination: Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}
}
