package viewstack

import "log/slog"

// Option configures a ViewStack at construction.
type Option func(*ViewStack)

// WithRenderContext sets the context handed to every ScreenFactory.
func WithRenderContext(ctx RenderContext) Option {
	return func(s *ViewStack) { s.ctx = ctx }
}

// WithTransitionRunner replaces the DefaultRunner.
// Tests use this to finish transitions by hand.
func WithTransitionRunner(r TransitionRunner) Option {
	return func(s *ViewStack) {
		if r != nil {
			s.runner = r
		}
	}
}

// WithRegistry sets the registry used by Save and Restore.
func WithRegistry(r *FactoryRegistry) Option {
	return func(s *ViewStack) {
		if r != nil {
			s.registry = r
		}
	}
}

// WithLogger sets the logger for stack events. Defaults to the internal logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *ViewStack) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTransitionErrorHandler receives builder failures that happen after an
// animated push has already returned (the component was laid out later).
// Without a handler those errors are logged.
func WithTransitionErrorHandler(fn func(error)) Option {
	return func(s *ViewStack) { s.onTransitionError = fn }
}
