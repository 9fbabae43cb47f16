package tui

// Theme captures optional message prefixes the sink applies when printing.
type Theme struct {
	InfoPrefix  string
	ErrorPrefix string
}

// Option configures the TUI sink.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by the sink.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		r.theme = theme
	}
}

// WithRepeat asks whether to edit again after every pass over the rows.
func WithRepeat(enabled bool) Option {
	return func(r *Renderer) {
		r.repeat = enabled
	}
}

// WithPageSize limits how many options select prompts show at once.
func WithPageSize(size int) Option {
	return func(r *Renderer) {
		r.pageSize = size
	}
}
