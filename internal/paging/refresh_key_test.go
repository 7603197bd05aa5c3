package paging

import "testing"

func intPtr(v int) *int { return &v }

func page(key, items int, prev, next *int) LoadedPage {
	return LoadedPage{Key: key, Result: PageResult{Items: makePosts("x", items), PrevKey: prev, NextKey: next}, Kept: items}
}

func TestRefreshKey(t *testing.T) {
	tests := []struct {
		name     string
		state    State
		expected int
	}{
		{"no pages", State{}, FirstKey},
		{"first page with next", State{Pages: []LoadedPage{page(0, 3, nil, intPtr(1))}, Anchor: 1}, 0},
		{"anchor in second page", State{
			Pages:  []LoadedPage{page(0, 3, nil, intPtr(1)), page(1, 3, intPtr(0), intPtr(2))},
			Anchor: 4,
		}, 1},
		{"anchor past end", State{
			Pages:  []LoadedPage{page(2, 3, intPtr(1), intPtr(3)), page(3, 1, intPtr(2), nil)},
			Anchor: 99,
		}, 3},
		{"single short page", State{Pages: []LoadedPage{page(0, 1, nil, nil)}}, FirstKey},
		{"resumed flow without prev", State{Pages: []LoadedPage{page(5, 3, nil, intPtr(6))}}, 5},
		{"anchor counts kept items only", State{
			Pages: []LoadedPage{
				page(0, 3, nil, intPtr(1)),
				{Key: 1, Result: PageResult{Items: makePosts("x", 3), PrevKey: intPtr(0), NextKey: intPtr(2)}, Kept: 1},
				page(2, 3, intPtr(1), intPtr(3)),
			},
			Anchor: 4,
		}, 2},
	}

	for _, test := range tests {
		if result := RefreshKey(test.state); result != test.expected {
			t.Errorf("%s: RefreshKey() = %d, expected %d", test.name, result, test.expected)
		}
	}
}
