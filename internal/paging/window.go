package paging

// Item is one element of the page window: either a page number or an
// ellipsis marker standing in for a collapsed run of pages.
type Item struct {
	Page     int
	Ellipsis bool
}

func page(n int) Item { return Item{Page: n} }
func ellipsis() Item { return Item{Ellipsis: true} }

// Window produces the bounded sequence of page indicators for navigation.
// Page 1 and the last page are always present; every page within two of
// current is enumerated. A gap of more than one page on either side collapses
// into a single ellipsis, while a gap of exactly one is enumerated, so the
// indicator count stays bounded no matter how many pages exist.
func Window(current, total int) []Item {
	if total <= 1 {
		return []Item{page(1)}
	}

	items := []Item{page(1)}

	start := current - 2
	if start < 2 {
		start = 2
	}
	end := current + 2
	if end > total-1 {
		end = total - 1
	}

	if start > 2 {
		items = append(items, ellipsis())
	} else {
		for i := 2; i < start; i++ {
			items = append(items, page(i))
		}
	}

	for i := start; i <= end; i++ {
		items = append(items, page(i))
	}

	if end < total-1 {
		items = append(items, ellipsis())
	} else {
		for i := end + 1; i < total; i++ {
			items = append(items, page(i))
		}
	}

	return append(items, page(total))
}
