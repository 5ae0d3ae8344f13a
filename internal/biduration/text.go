package biduration

// MarshalText encodes the duration as its friendly string.
func (b BiDuration) MarshalText() ([]byte, error) {
	return []byte(b.FriendlyString()), nil
}

// UnmarshalText parses any text accepted by Parse.
func (b *BiDuration) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// Set implements pflag.Value.
func (b *BiDuration) Set(s string) error {
	return b.UnmarshalText([]byte(s))
}

// Type implements pflag.Value.
func (b *BiDuration) Type() string {
	return "offset"
}
