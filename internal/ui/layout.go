package ui

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the favorites sidebar
	// is stacked above the card instead of beside it.
	LayoutCompactWidth = 72

	// SidebarWidth is the fixed width of the favorites list.
	SidebarWidth = 24

	// CardMinWidth keeps the weather card readable on narrow terminals.
	CardMinWidth = 36
)

// Input limits.
const (
	// QueryCharLimit caps the search and add-favorite fields.
	QueryCharLimit = 64
)

// cardWidth returns the width available to the card for a terminal width.
func cardWidth(total int) int {
	w := total
	if total >= LayoutCompactWidth {
		w = total - SidebarWidth - 1
	}
	if w < CardMinWidth {
		return CardMinWidth
	}
	return w
}
