package handler

import (
	"net/http"
	"strconv"

	"github.com/inkline/blog/api/internal/model"
	"github.com/inkline/blog/api/internal/pagination"
	"github.com/inkline/blog/api/internal/service"
)

// pageParams reads ?page= and ?limit= from the query string. Absent
// parameters fall back to the defaults; a value that is not an integer is
// rejected with a 400.
func pageParams(r *http.Request) (page, limit int, pd *model.ProblemDetails) {
	page, limit = 1, pagination.DefaultLimit

	if raw := r.URL.Query().Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, model.NewBadRequestError("page must be an integer")
		}
		page = parsed
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, model.NewBadRequestError("limit must be an integer")
		}
		limit = parsed
	}
	return page, limit, nil
}

// countParam reads ?n= for the stats endpoints.
func countParam(r *http.Request) (int, *model.ProblemDetails) {
	raw := r.URL.Query().Get("n")
	if raw == "" {
		return service.DefaultTopAuthors, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, model.NewBadRequestError("n must be an integer")
	}
	return n, nil
}
