package woflang

import "strconv"

// Kind is the active discriminant of a Value.
type Kind int

const (
	// Unknown is the zero Kind. It carries no payload and marks an empty
	// value. Normal dispatch never pushes one; it exists as a defensive
	// default.
	Unknown Kind = iota
	Integer
	Double
	String
	Symbol
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case Unknown:
		return "Unknown"
	case Integer:
		return "Integer"
	case Double:
		return "Double"
	case String:
		return "String"
	case Symbol:
		return "Symbol"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Unit is optional unit-of-measure metadata attached to a Value. Scale is the
// factor converting one of this unit into the base unit of its dimension.
// Only a minority of operations (chemistry and physics conversions) consult
// it; everything else passes it through untouched.
type Unit struct {
	Name  string
	Scale float64
}

// Value is the universal unit of data on the stack. A Value has no identity
// beyond its content and is freely copied. The active payload always matches
// Kind.
type Value struct {
	Kind Kind
	Unit *Unit

	i int64
	d float64
	s string
}

// MakeInteger returns an Integer value.
func MakeInteger(i int64) Value { return Value{Kind: Integer, i: i} }

// MakeDouble returns a Double value.
func MakeDouble(d float64) Value { return Value{Kind: Double, d: d} }

// MakeString returns a String value.
func MakeString(s string) Value { return Value{Kind: String, s: s} }

// MakeSymbol returns a Symbol value.
func MakeSymbol(s string) Value { return Value{Kind: Symbol, s: s} }

// Int returns the integer payload. It is meaningful only for Integer values.
func (v Value) Int() int64 { return v.i }

// Float returns the floating payload. It is meaningful only for Double
// values; use AsNumeric to coerce any value.
func (v Value) Float() float64 { return v.d }

// Text returns the text payload of a String or Symbol value, without quotes.
func (v Value) Text() string { return v.s }

// WithUnit returns a copy of v carrying the given unit tag.
func (v Value) WithUnit(u Unit) Value {
	v.Unit = &Unit{Name: u.Name, Scale: u.Scale}
	return v
}

// IsNumeric reports whether the value is an Integer or a Double.
func (v Value) IsNumeric() bool { return v.Kind == Integer || v.Kind == Double }

// AsNumeric converts the value to a float64. It is total: String, Symbol,
// and Unknown values convert to 0 rather than failing, because many
// operations coerce unconditionally.
func (v Value) AsNumeric() float64 {
	switch v.Kind {
	case Integer:
		return float64(v.i)
	case Double:
		return v.d
	}
	return 0
}

// String renders the value for display. Integers print in decimal, Doubles
// in the shortest decimal form that round-trips, Strings with surrounding
// quotes, and Symbols bare.
func (v Value) String() string {
	switch v.Kind {
	case Integer:
		return strconv.FormatInt(v.i, 10)
	case Double:
		return strconv.FormatFloat(v.d, 'g', -1, 64)
	case String:
		return `"` + v.s + `"`
	case Symbol:
		return v.s
	}
	return "<unknown>"
}

// Equal reports whether two values have the same kind, payload, and unit
// tag. Kinds never compare equal across the Integer/Double divide, so
// MakeInteger(2) and MakeDouble(2) are unequal.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	if v.Unit != nil && o.Unit != nil {
		if v.Unit.Name != o.Unit.Name || v.Unit.Scale != o.Unit.Scale {
			return false
		}
	} else if v.Unit != nil || o.Unit != nil {
		return false
	}
	switch v.Kind {
	case Integer:
		return v.i == o.i
	case Double:
		return v.d == o.d
	case String, Symbol:
		return v.s == o.s
	}
	return true
}
