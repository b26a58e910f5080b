package nif

// Length is the number of digits in a NIF.
const Length = 9

// Prefix sets as bit masks indexed by digit value.
const (
	// firstDigitMask holds leading digits that are valid on their own: 1,2,3,5,6,8.
	firstDigitMask uint16 = 1<<1 | 1<<2 | 1<<3 | 1<<5 | 1<<6 | 1<<8
	// after4Mask holds second digits valid after a leading 4: 45.
	after4Mask uint16 = 1 << 5
	// after7Mask holds second digits valid after a leading 7: 70,71,72,74,75,77,79.
	after7Mask uint16 = 1<<0 | 1<<1 | 1<<2 | 1<<4 | 1<<5 | 1<<7 | 1<<9
	// after9Mask holds second digits valid after a leading 9: 90,91,98,99.
	after9Mask uint16 = 1<<0 | 1<<1 | 1<<8 | 1<<9
)

// Validate reports whether s is a valid NIF: exactly nine ASCII digits,
// an allowed one- or two-digit prefix, and a matching mod-11 check digit.
// Any other input, including empty or non-ASCII strings, yields false.
func Validate(s string) bool {
	if len(s) != Length {
		return false
	}
	for i := 0; i < Length; i++ {
		if s[i]-'0' > 9 {
			return false
		}
	}
	if !prefixAllowed(s[0]-'0', s[1]-'0') {
		return false
	}
	return checkDigit(s) == s[8]-'0'
}

// HasValidPrefix reports whether s starts with two ASCII digits forming an
// allowed prefix. The rest of s is ignored.
func HasValidPrefix(s string) bool {
	if len(s) < 2 {
		return false
	}
	d0, d1 := s[0]-'0', s[1]-'0'
	if d0 > 9 || d1 > 9 {
		return false
	}
	return prefixAllowed(d0, d1)
}

// CheckDigit returns the ASCII check digit for an eight-digit body.
// The boolean is false if body is not exactly eight ASCII digits.
func CheckDigit(body string) (byte, bool) {
	if len(body) != Length-1 {
		return 0, false
	}
	for i := 0; i < len(body); i++ {
		if body[i]-'0' > 9 {
			return 0, false
		}
	}
	return '0' + checkDigit(body), true
}

func prefixAllowed(d0, d1 byte) bool {
	if firstDigitMask&(1<<d0) != 0 {
		return true
	}
	var mask uint16
	switch d0 {
	case 4:
		mask = after4Mask
	case 7:
		mask = after7Mask
	case 9:
		mask = after9Mask
	default:
		return false
	}
	return mask&(1<<d1) != 0
}

// checkDigit expects at least eight ASCII digits and returns the digit value.
func checkDigit(s string) byte {
	total := int(s[0]-'0')*9 +
		int(s[1]-'0')*8 +
		int(s[2]-'0')*7 +
		int(s[3]-'0')*6 +
		int(s[4]-'0')*5 +
		int(s[5]-'0')*4 +
		int(s[6]-'0')*3 +
		int(s[7]-'0')*2
	r := total % 11
	if r < 2 {
		return 0
	}
	return byte(11 - r)
}
