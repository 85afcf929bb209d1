package token

// number scans an RFC 8259 number at the start of d. It returns the length
// of the literal and whether it has a fraction or exponent part.
func number(d []byte) (int, bool, error) {
	i := 0
	if len(d) > 0 && d[0] == '-' {
		i = 1
	}
	digits := asciiDigits(d[i:])
	if digits == 0 {
		return i, false, ErrNumber
	}
	if digits > 1 && d[i] == '0' {
		return i + digits, false, ErrNumberLeadingZero
	}
	i += digits
	f := fract(d[i:])
	e := exp(d[i+f:])
	return i + f + e, f+e != 0, nil
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}

func exp(d []byte) int {
	if len(d) < 2 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch d[1] {
	case '+', '-':
		i++
	default:
	}
	if i == len(d) {
		return 0
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0
	}
	return n + i
}

func fract(d []byte) int {
	if len(d) == 0 || d[0] != '.' {
		return 0
	}
	// . must be followed by 1 or more digits rfc 7159
	n := asciiDigits(d[1:])
	if n == 0 {
		return 0
	}
	return n + 1
}
