package geometry

import "fmt"

// DomainError reports a curve or patch evaluated outside its parameter domain.
type DomainError struct {
	Name  string  // parameter name, e.g. "u" or "m"
	Value float64 // offending value
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("parameter %s=%g out of range [0,1]", e.Name, e.Value)
}

// SingularityError reports a geometry or flow configuration that is not
// integrable as specified: parallel construction lines, zero meridional
// relative speed, or a non-positive radius outside the fan-apex case.
type SingularityError struct {
	Op     string // operation that hit the singularity
	Detail string
}

func (e *SingularityError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Detail)
}

// ConfigurationError reports an unsupported combination rejected at
// construction time, before any computation proceeds.
type ConfigurationError struct {
	Detail string
}

func (e *ConfigurationError) Error() string {
	return e.Detail
}
