package entities

import "strings"

// MethodSeparator joins an owner type name and a member name in a symbol key.
const MethodSeparator = "::"

// Prototype is the signature and description metadata stored for one symbol.
//
// Key is either a bare function name ("mysqli_connect") or an owner-qualified
// method name ("PDO::query"). Return, Params and Description are opaque
// payloads: they are stored and returned verbatim and may be empty.
type Prototype struct {
	Key         string `json:"key" yaml:"key" toml:"key" validate:"required,symbolkey" jsonschema:"minLength=1"`
	Return      string `json:"return" yaml:"return" toml:"return"`
	Params      string `json:"params" yaml:"params" toml:"params"`
	Description string `json:"description" yaml:"description" toml:"description"`
}

// IsMethod reports whether the key names a method scoped to an owner type.
func (p Prototype) IsMethod() bool {
	return strings.Contains(p.Key, MethodSeparator)
}

// Owner returns the owner type name of a method key, or "" for a bare function.
func (p Prototype) Owner() string {
	owner, _, ok := strings.Cut(p.Key, MethodSeparator)
	if !ok {
		return ""
	}
	return owner
}

// Member returns the member part of a method key, or the whole key for a bare function.
func (p Prototype) Member() string {
	_, member, ok := strings.Cut(p.Key, MethodSeparator)
	if !ok {
		return p.Key
	}
	return member
}

// Signature renders the prototype the way the shell shows it inline,
// e.g. "object PDO::query(string statement)".
func (p Prototype) Signature() string {
	var b strings.Builder
	if p.Return != "" {
		b.WriteString(p.Return)
		b.WriteByte(' ')
	}
	b.WriteString(p.Key)
	b.WriteByte('(')
	b.WriteString(p.Params)
	b.WriteByte(')')
	return b.String()
}
