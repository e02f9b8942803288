package tui

const (
	heroTitle   = "Video Highlight Chat"
	heroTagline = "Ask about the indexed videos and jump to the matching highlights."

	inputPlaceholder = "Ask about the videos (e.g., What occurred in the videos?)"

	submitLabel        = "Ask"
	submitLoadingLabel = "Searching…"
)

const (
	minViewportWidth          = 40
	minViewportHeight         = 5
	viewportHorizontalPadding = 4
	buttonReserve             = 18
)

type healthStatus int

const (
	healthUnknown healthStatus = iota
	healthOK
	healthDown
)
