package pruner

import "go.uber.org/zap"

// WithLogger attaches a structured logger a Pruner uses to report descent
// progress. Without a call to WithLogger a Pruner logs nothing.
func (p *Pruner) WithLogger(logger *zap.Logger) *Pruner {
	p.logger = logger
	return p
}

func (p *Pruner) logf() *zap.Logger {
	if p.logger == nil {
		return zap.NewNop()
	}
	return p.logger
}
