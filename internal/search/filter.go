package search

import "bookgrid/internal/domain"

// FilterByYear applies the client-side year range filter. Bounds are
// inclusive. When either bound is set, books without a first publish
// year are excluded. With no bounds the input is returned unchanged.
func FilterByYear(books []domain.Book, from, to *int) []domain.Book {
	if from == nil && to == nil {
		return books
	}

	filtered := make([]domain.Book, 0, len(books))
	for _, book := range books {
		if book.FirstPublishYear == nil {
			continue
		}
		year := *book.FirstPublishYear
		if from != nil && year < *from {
			continue
		}
		if to != nil && year > *to {
			continue
		}
		filtered = append(filtered, book)
	}
	return filtered
}
