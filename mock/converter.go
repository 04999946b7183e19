package mock

import "pagesum"

var _ pagesum.Converter = (*Converter)(nil)

// Converter is a mock implementation of pagesum.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
