package fragment

// Special lists the characters Escape prefixes with a backslash.
const Special = `.*+-?^${}()|[]\`

// Escape returns s with every character in Special prefixed by a backslash,
// so the result matches s literally.
//
// Example:
//
//	fragment.Escape("1+1=2?") // `1\+1=2\?`
func Escape(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if isSpecial(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	buf := make([]byte, len(s)+n)
	j := 0
	for i := 0; i < len(s); i++ {
		if isSpecial(s[i]) {
			buf[j] = '\\'
			j++
		}
		buf[j] = s[i]
		j++
	}
	return string(buf)
}

// EscapeClass escapes s for use inside a bracket expression, where only
// `\`, `]`, `[`, `^` and `-` carry meaning.
func EscapeClass(s string) string {
	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\', ']', '[', '^', '-':
			buf = append(buf, '\\')
		}
		buf = append(buf, s[i])
	}
	return string(buf)
}

func isSpecial(c byte) bool {
	for i := 0; i < len(Special); i++ {
		if c == Special[i] {
			return true
		}
	}
	return false
}
