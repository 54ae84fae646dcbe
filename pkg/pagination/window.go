package pagination

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

const ellipsisToken = "ellipsis"

// Item is an entry of a page window: either a page number or an ellipsis
// marking skipped pages.
type Item struct {
	Page     int
	Ellipsis bool
}

// PageItem returns the item for page n.
func PageItem(n int) Item { return Item{Page: n} }

// EllipsisItem returns the gap marker.
func EllipsisItem() Item { return Item{Ellipsis: true} }

func (i Item) String() string {
	if i.Ellipsis {
		return "…"
	}
	return strconv.Itoa(i.Page)
}

// MarshalJSON encodes a page as a number and a gap as "ellipsis".
func (i Item) MarshalJSON() ([]byte, error) {
	if i.Ellipsis {
		return json.Marshal(ellipsisToken)
	}
	return json.Marshal(i.Page)
}

func (i *Item) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s != ellipsisToken {
			return fmt.Errorf("pagination: unexpected window item %q", s)
		}
		*i = EllipsisItem()
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*i = PageItem(n)
	return nil
}

// PageWindow lists the page links to render around current: always the first
// and last page, every page within delta of current, and one ellipsis wherever
// pages are skipped, even when the gap is a single page.
//
//	PageWindow(5, 10, 2) // 1 … 3 4 5 6 7 … 10
//
// A total of zero or less gives an empty window. A negative delta is treated as 0.
func PageWindow(current, total, delta int) []Item {
	if total <= 0 {
		return []Item{}
	}
	if delta < 0 {
		delta = 0
	}
	current = ClampPage(current, total)

	pages := make([]int, 0, 2*delta+3)
	pages = append(pages, 1)
	for p := max(2, current-delta); p <= min(total-1, current+delta); p++ {
		pages = append(pages, p)
	}
	if total > 1 {
		pages = append(pages, total)
	}

	items := make([]Item, 0, len(pages)+2)
	prev := 0
	for _, p := range pages {
		if prev > 0 && p-prev > 1 {
			items = append(items, EllipsisItem())
		}
		items = append(items, PageItem(p))
		prev = p
	}
	return items
}
