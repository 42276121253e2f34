// Package variable manages named regex variables.
//
// A variable is a named sub-pattern that must match the same text every time
// it appears. Because fragments are composed independently, the first use
// cannot be known while building. Variables are therefore carried as pending
// tokens of the form
//
//	(?<name>body\k<name>)
//
// which can be pasted into a fragment any number of times. Resolve rewrites
// the first occurrence of each token into the declaration (?<name>body) and
// every later occurrence into the backreference (\k<name>).
//
// Import converts named groups and backreferences written in a native
// pattern into pending tokens, so imported patterns compose the same way.
package variable

// Declare returns the pending token for body under the explicit name.
// The name must be a non-empty identifier.
func Declare(body, name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	return token(name, body), nil
}

// DeclareAuto returns the pending token for body under a name drawn from n.
// A nil n uses Default.
func DeclareAuto(body string, n Namer) string {
	if n == nil {
		n = Default
	}
	return token(n.Name(), body)
}

// ValidateName reports whether name can be used as a variable name.
func ValidateName(name string) error {
	if name == "" {
		return &NameError{Name: name, Reason: "name is empty"}
	}
	if !isIdent(name) {
		return &NameError{
			Name:   name,
			Reason: "must start with a letter or underscore and contain only letters, digits and underscores",
		}
	}
	return nil
}

func token(name, body string) string {
	return "(?<" + name + ">" + body + backref(name) + ")"
}

func backref(name string) string {
	return `\k<` + name + ">"
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
