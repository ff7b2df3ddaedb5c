package tui

// Option customises the interactive renderer.
type Option func(*Renderer)

// WithPromptDriver injects a custom prompt driver, primarily for tests.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithPageSize caps the number of groups shown per prompt page.
func WithPageSize(size int) Option {
	return func(r *Renderer) {
		if size > 0 {
			r.pageSize = size
		}
	}
}
