// Package token turns catalog addresses into the literal text inserted into
// the host buffer.
package token

// Policy produces the insertion text for an address. Implementations must be
// pure: the same address always yields the same text.
type Policy interface {
	Format(address string) string
}

// Wrap surrounds the address with fixed delimiters.
type Wrap struct {
	Open  string
	Close string
}

// Format implements Policy.
func (w Wrap) Format(address string) string {
	return w.Open + address + w.Close
}

// Func adapts an arbitrary formatting function into a Policy, giving the
// caller full control over the produced text.
type Func func(address string) string

// Format implements Policy.
func (f Func) Format(address string) string {
	return f(address)
}

// Default delimiters.
const (
	DefaultOpen  = "{{"
	DefaultClose = "}}"
)

// Default returns the standard moustache-style wrap policy.
func Default() Wrap {
	return Wrap{Open: DefaultOpen, Close: DefaultClose}
}
