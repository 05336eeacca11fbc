package mock

import "github.com/fwojciec/stash"

var _ stash.Converter = (*Converter)(nil)

// Converter is a mock implementation of stash.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
