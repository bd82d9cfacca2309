package indicators

// Value is an indicator output that may be undefined while the indicator
// is still warming up. The zero value is undefined. Undefined is an
// explicit state, never a NaN that silently survives comparisons.
type Value struct {
	Float float64
	Valid bool
}

// Defined wraps a computed float in a valid Value.
func Defined(f float64) Value {
	return Value{Float: f, Valid: true}
}

// Undefined returns the explicit absent value.
func Undefined() Value {
	return Value{}
}
