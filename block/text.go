package block

// MarshalText implements encoding.TextMarshaler. The text is the full
// rendering of n, so no block is lost.
func (n Number) MarshalText() (text []byte, err error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Number) UnmarshalText(text []byte) (err error) {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}

	*n = v

	return nil
}
