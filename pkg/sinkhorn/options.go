package sinkhorn

import "github.com/rs/zerolog"

// Option is one Scaler option.
type Option func(*Scaler)

// WithMaxIterations tells the Scaler to stop after at most n balancing
// passes (default DefaultMaxIterations). n must be positive.
func WithMaxIterations(n int) Option {
	return func(s *Scaler) { s.maxIterations = n }
}

// WithEpsilon sets the convergence tolerance (default DefaultEpsilon):
// iteration stops once every row and column sum of the scaled matrix lies
// within e of one. e must be strictly between 0 and 1.
func WithEpsilon(e float64) Option {
	return func(s *Scaler) { s.epsilon = e }
}

// WithLogger directs the Scaler's support-check warnings and run logs to
// the given logger instead of the package logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Scaler) { s.logger = logger }
}
