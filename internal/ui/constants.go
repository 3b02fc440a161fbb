package ui

// Modal sizing
const (
	// ModalWidth is the standard modal content width
	ModalWidth = 50

	// ModelNameCharLimit is the maximum length of a model name in settings
	ModelNameCharLimit = 60
)
