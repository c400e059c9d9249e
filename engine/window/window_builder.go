package window

// WindowBuilderOption is a functional option for configuring an engineWindow.
// Use the With* functions to create options.
type WindowBuilderOption func(w *engineWindow)

// WithTitle sets the window title displayed in the title bar.
//
// Parameters:
//   - title: the window title text
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithTitle(title string) WindowBuilderOption {
	return func(w *engineWindow) {
		w.title = title
	}
}

// WithSize sets the initial client area size. Non-positive values are ignored.
//
// Parameters:
//   - width: initial width in pixels
//   - height: initial height in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithSize(width, height int) WindowBuilderOption {
	return func(w *engineWindow) {
		if width > 0 && height > 0 {
			w.width, w.height = width, height
		}
	}
}

// WithSizeLimits bounds the size the user can resize the window to.
// Limits that are not positive, or a maximum below its minimum, are ignored.
//
// Parameters:
//   - minWidth, minHeight: smallest allowed size in pixels
//   - maxWidth, maxHeight: largest allowed size in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithSizeLimits(minWidth, minHeight, maxWidth, maxHeight int) WindowBuilderOption {
	return func(w *engineWindow) {
		if minWidth <= 0 || minHeight <= 0 || maxWidth < minWidth || maxHeight < minHeight {
			return
		}
		w.minWidth, w.minHeight = minWidth, minHeight
		w.maxWidth, w.maxHeight = maxWidth, maxHeight
	}
}
