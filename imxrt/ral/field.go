package ral

// Field is a contiguous bit range inside one register.
type Field struct {
	Reg   Register
	Shift uint8
	Width uint8
}

// Mask returns the in-place bit mask of the field.
func (fd Field) Mask() uint32 {
	return (uint32(1)<<fd.Width - 1) << fd.Shift
}

// Max returns the largest value the field can hold.
func (fd Field) Max() uint32 { return uint32(1)<<fd.Width - 1 }

// Extract returns the field value from a register word.
func (fd Field) Extract(word uint32) uint32 {
	return (word & fd.Mask()) >> fd.Shift
}

// Insert returns word with the field replaced by v.
// v must fit the field; wider values are a programming error.
func (fd Field) Insert(word, v uint32) uint32 {
	if v > fd.Max() {
		panic("ral: value does not fit field")
	}
	return word&^fd.Mask() | v<<fd.Shift
}

// Get reads the field.
func (fd Field) Get(f File) uint32 { return fd.Extract(f.Read(fd.Reg)) }

// Set writes the field, leaving the rest of the register untouched.
func (fd Field) Set(f File, v uint32) {
	Modify(f, fd.Reg, fd.Mask(), fd.Insert(0, v))
}
