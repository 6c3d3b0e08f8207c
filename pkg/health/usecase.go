package health

import "context"

// Checker reports whether a single backing dependency is reachable.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// ReadinessUseCase answers whether the service can take traffic.
type ReadinessUseCase interface {
	Ready(ctx context.Context) error
}

type service struct {
	checkers []Checker
}

// NewService builds a readiness check over the given dependency checkers.
// With no checkers the service is always ready.
func NewService(checkers ...Checker) ReadinessUseCase {
	return &service{checkers: checkers}
}

// Ready runs every checker and returns the first failure.
func (s *service) Ready(ctx context.Context) error {
	for _, ch := range s.checkers {
		if err := ch.Check(ctx); err != nil {
			return err
		}
	}
	return nil
}
