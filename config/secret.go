package config

const redacted = "[redacted]"

// Secret is a credential loaded from configuration. Its printed and
// serialized forms never contain the value; use Reveal at the point of use.
type Secret string

func (s Secret) String() string {
	if s == "" {
		return ""
	}
	return redacted
}

// GoString keeps %#v from printing the value
func (s Secret) GoString() string {
	return s.String()
}

func (s Secret) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

func (s Secret) Reveal() string {
	return string(s)
}

func (s Secret) IsEmpty() bool {
	return s == ""
}
