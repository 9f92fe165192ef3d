package stats

import "fmt"

// ListStats summarises a built list
type ListStats struct {
	Kind           string         `json:"kind"`
	Ordered        bool           `json:"ordered"`
	Ascending      bool           `json:"ascending"`
	Length         int            `json:"length"`
	DistinctValues int            `json:"distinctValues"`
	CountsByValue  map[string]int `json:"countsByValue"`
	First          any            `json:"first,omitempty"`
	Last           any            `json:"last,omitempty"`
}

// NewListStats creates a new ListStats instance with initialized maps
func NewListStats(kind string, ordered bool, ascending bool) *ListStats {
	return &ListStats{
		Kind:          kind,
		Ordered:       ordered,
		Ascending:     ascending && ordered,
		CountsByValue: make(map[string]int),
	}
}

// AddItem counts one item, in list order. value is what the item is compared
// by: the item itself or its key.
func (ls *ListStats) AddItem(item any, value any) {
	if ls.Length == 0 {
		ls.First = item
	}
	ls.Last = item
	ls.Length++
	ls.CountsByValue[fmt.Sprint(value)]++
}

// Finalize calculates derived fields from accumulated data
func (ls *ListStats) Finalize() {
	ls.DistinctValues = len(ls.CountsByValue)
}
