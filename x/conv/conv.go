// Package conv formats integers without strconv or fmt.
package conv

const hexDigits = "0123456789abcdef"

// AppendHex32 appends v as 0x-prefixed, zero-padded, lowercase hex.
func AppendHex32(buf []byte, v uint32) []byte {
	buf = append(buf, '0', 'x')
	for shift := 28; shift >= 0; shift -= 4 {
		buf = append(buf, hexDigits[v>>uint(shift)&0xF])
	}
	return buf
}

// Hex32 returns v as 0x-prefixed, zero-padded, lowercase hex.
func Hex32(v uint32) string {
	var b [10]byte
	return string(AppendHex32(b[:0], v))
}

// AppendUint appends the decimal form of n.
func AppendUint(buf []byte, n uint64) []byte {
	var tmp [20]byte
	i := len(tmp)
	for {
		i--
		tmp[i] = byte('0' + n%10)
		n /= 10
		if n == 0 {
			break
		}
	}
	return append(buf, tmp[i:]...)
}

// Utoa returns the decimal form of n.
func Utoa(n uint64) string {
	var b [20]byte
	return string(AppendUint(b[:0], n))
}
