package snake

// Score is a four-digit packed-BCD counter: each nibble holds one
// decimal digit, most significant in the high nibble. The value is
// displayable as four independent digits without binary-to-decimal
// conversion, and it saturates at 9999.
type Score uint16

// ScoreMax is the largest displayable value, 9999 in packed BCD.
const ScoreMax Score = 0x9999

// Inc adds one in decimal, cascading nibble carries. At ScoreMax the
// counter holds; the saturation check also guarantees the carry can
// never run out of the most significant digit.
func (s Score) Inc() Score {
	if s >= ScoreMax {
		return ScoreMax
	}
	for shift := 0; shift < 16; shift += 4 {
		digit := (s >> shift) & 0xF
		if digit < 9 {
			return s + 1<<shift
		}
		// Digit rolls 9 -> 0, carry continues into the next nibble.
		s &^= 0xF << shift
	}
	return ScoreMax
}

// Digits returns the four decimal digits, most significant first.
func (s Score) Digits() [4]uint8 {
	return [4]uint8{
		uint8(s >> 12 & 0xF),
		uint8(s >> 8 & 0xF),
		uint8(s >> 4 & 0xF),
		uint8(s & 0xF),
	}
}

// Int returns the counter as a plain integer in [0, 9999].
func (s Score) Int() int {
	d := s.Digits()
	return int(d[0])*1000 + int(d[1])*100 + int(d[2])*10 + int(d[3])
}
