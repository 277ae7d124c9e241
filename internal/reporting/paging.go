package reporting

import "sales-backend/internal/models"

// PageCount returns ceil(n/size) for a record list, 0 when the list is empty.
func PageCount(n, size int) int {
	if size <= 0 || n <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// Page returns the 1-based page slice [(page-1)*size, page*size) of a record
// list. Out-of-range pages yield an empty slice; clamping to a valid page is
// the caller's job.
func Page(sales []*models.Sale, size, page int) []*models.Sale {
	if size <= 0 || page <= 0 {
		return nil
	}
	start := (page - 1) * size
	if start >= len(sales) {
		return nil
	}
	end := start + size
	if end > len(sales) {
		end = len(sales)
	}
	return sales[start:end]
}
