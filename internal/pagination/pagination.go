package pagination

import (
	"strconv"

	"gorm.io/gorm"

	"taskapi/internal/api"
)

// DefaultPerPage is the fixed page size for collection listings.
const DefaultPerPage = 10

// ParsePage converts a raw page query parameter to a 1-based page number.
// Unparsable or non-positive input falls back to page 1.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Paginate counts the rows matching the query's predicate set, then fetches
// one page into dest with the given ordering. Both statements reuse the same
// predicates via session cloning, so the reported count always reflects the
// filters applied to the page. The two statements are not snapshot-isolated:
// concurrent writes between count and fetch may skew the page against the
// total, which is accepted.
//
// A page beyond the last yields an empty dest, not an error.
func Paginate(query *gorm.DB, order string, page, perPage int, currentURL string, dest interface{}) (api.Meta, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}

	var count int64
	if err := query.Session(&gorm.Session{}).Count(&count).Error; err != nil {
		return api.Meta{}, err
	}

	fetch := query.Session(&gorm.Session{})
	if order != "" {
		fetch = fetch.Order(order)
	}
	offset := (page - 1) * perPage
	if err := fetch.Offset(offset).Limit(perPage).Find(dest).Error; err != nil {
		return api.Meta{}, err
	}

	return api.Meta{
		Count:      count,
		PerPage:    perPage,
		TotalPage:  totalPages(count, int64(perPage)),
		CurrentURL: currentURL,
	}, nil
}

func totalPages(count, perPage int64) int64 {
	return (count + perPage - 1) / perPage
}
