package tablo

// applySearchMsg triggers the coalesced push of the search filter.
// Stale generations are dropped so rapid keystrokes propagate once.
type applySearchMsg struct {
	gen int
}

// errorMsg surfaces a collaborator failure to the footer.
type errorMsg struct {
	err error
}
