package profiles

// Field is one of the four per-profile settings stored under a profile tag.
type Field int

const (
	FieldName Field = iota
	FieldEmail
	FieldSigningKey
	FieldSSHKey
)

var fieldNames = [...]string{
	FieldName:       "name",
	FieldEmail:      "email",
	FieldSigningKey: "signingkey",
	FieldSSHKey:     "sshkey",
}

// Fields returns every field in the order Add writes them.
func Fields() []Field {
	return []Field{FieldName, FieldEmail, FieldSigningKey, FieldSSHKey}
}

// String returns the git config option name of the field.
func (f Field) String() string {
	if f < 0 || int(f) >= len(fieldNames) {
		return "unknown"
	}
	return fieldNames[f]
}

// ParseField maps an option name to its Field. Matching is exact and
// case-sensitive; anything else reports false.
func ParseField(s string) (Field, bool) {
	for f, name := range fieldNames {
		if name == s {
			return Field(f), true
		}
	}
	return 0, false
}
