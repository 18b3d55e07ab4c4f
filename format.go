package jdate

// appendInt appends the decimal form of x to b and returns the result.
// If the decimal form (excluding sign) is shorter than width, the result
// is padded with leading 0's.
//
// If trim is true, trailing zeroes are dropped (fraction rendering).
func appendInt(b []byte, x int, width int, trim bool) []byte {
	u := uint(x)
	if x < 0 {
		b = append(b, '-')
		u = uint(-x)
	}

	// Assemble decimal in reverse order.
	var buf [20]byte
	i := len(buf)
	for u >= 10 {
		q := u / 10
		if trim = trim && u == q*10; trim {
			width-- // avoid extra padding
		} else {
			i--
			buf[i] = byte('0' + u - q*10)
		}
		u = q
	}
	i--
	buf[i] = byte('0' + u)

	// Add 0-padding.
	for w := len(buf) - i; w < width; w++ {
		b = append(b, '0')
	}

	return append(b, buf[i:]...)
}

// AppendText appends the canonical "YYYY-MM-DD" form of d to b.
//
// Years before year 1 are rendered with a leading minus sign.
func (d Date) AppendText(b []byte) []byte {
	year, month, day := d.YMD()
	b = appendInt(b, year, 4, false)
	b = append(b, '-')
	b = appendInt(b, int(month), 2, false)
	b = append(b, '-')
	return appendInt(b, day, 2, false)
}

// AppendText appends the canonical "YYYY-MM-DD HH:MM:SS[.ffffff]" form
// of t to b. A zero fraction is omitted, trailing zero digits of a
// non-zero fraction are trimmed.
func (t Timestamp) AppendText(b []byte) []byte {
	b = t.Date().AppendText(b)
	b = append(b, ' ')

	hour, min, sec := t.Clock()
	b = appendInt(b, hour, 2, false)
	b = append(b, ':')
	b = appendInt(b, min, 2, false)
	b = append(b, ':')
	b = appendInt(b, sec, 2, false)

	if us := t.Microsecond(); us != 0 {
		b = append(b, '.')
		b = appendInt(b, us, 6, true)
	}
	return b
}
