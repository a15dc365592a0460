package prompt

import "io"

// Theme captures optional prefixes the prompter applies to messages.
type Theme struct {
	PromptPrefix string
	ErrorPrefix  string
}

// Option configures the Prompter.
type Option func(*Prompter)

// WithDriver overrides the driver used by the prompter.
func WithDriver(driver Driver) Option {
	return func(p *Prompter) {
		if driver != nil {
			p.driver = driver
		}
	}
}

// WithOutput sets where the default survey driver prints informational
// messages. Ignored when a custom driver is supplied.
func WithOutput(w io.Writer) Option {
	return func(p *Prompter) {
		if w != nil {
			p.out = w
		}
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(p *Prompter) {
		p.theme = theme
	}
}

// WithPageSize limits how many choices a select prompt shows at once.
func WithPageSize(n int) Option {
	return func(p *Prompter) {
		if n > 0 {
			p.pageSize = n
		}
	}
}
