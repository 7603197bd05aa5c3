package paging

// LoadedPage is one page held by a flow together with its key. Kept is how
// many of its items entered the flow's item list after de-duplication.
type LoadedPage struct {
	Key    int
	Result PageResult
	Kept   int
}

// State describes what a flow has loaded and where the user is looking.
// Anchor is an index into the flow's items, i.e. the kept items of Pages in
// order.
type State struct {
	Pages  []LoadedPage
	Anchor int
}

// ClosestPage returns the loaded page containing the anchor, or the nearest
// page at either end when the anchor is out of range
func (s State) ClosestPage() (LoadedPage, bool) {
	if len(s.Pages) == 0 {
		return LoadedPage{}, false
	}
	if s.Anchor <= 0 {
		return s.Pages[0], true
	}

	seen := 0
	for _, page := range s.Pages {
		seen += page.Kept
		if s.Anchor < seen {
			return page, true
		}
	}
	return s.Pages[len(s.Pages)-1], true
}

// RefreshKey picks the key to resume from after an invalidation
func RefreshKey(state State) int {
	page, ok := state.ClosestPage()
	if !ok {
		return FirstKey
	}
	if page.Result.PrevKey != nil {
		return *page.Result.PrevKey + 1
	}
	if page.Result.NextKey != nil {
		return *page.Result.NextKey - 1
	}
	return FirstKey
}
