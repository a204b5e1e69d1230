package enc

import "fmt"

/*
 Input octets are read as one continuous bit stream, most significant bit first. Every quintet
 takes the next 5 bits of that stream:

  0           1          2            Octet index
  +---------+----------+---------+
  |01234 567|01 23456 7|0123 4567|    Bit offset within the octet
  +---------+----------+---------+
  |< 0 > < 1| > < 2 > <|.3 > < 4.|>   Quintets
  +---------+----------+---------+-+

 A quintet that starts at bit offset 0..3 fits within a single octet. Anything starting later
 spills over into the next octet.
*/

// OctetPosition describes where the bits of a quintet live in the input.
type OctetPosition struct {
	// Primary is the index of the octet in which the quintet starts.
	Primary int
	// Secondary is the index of the following octet. Only meaningful if Spans is true. It may point
	// past the end of the input, in which case the missing octet reads as zero.
	Secondary int
	// Spans is true if the quintet crosses into the Secondary octet.
	Spans bool
	// BitOffset is the position of the first quintet bit within the primary octet, 0 being the
	// most significant bit.
	BitOffset uint
}

// Shift returns the offset, counted from the least significant bit, of the quintet within the 16-bit
// window formed by CombineBytes(primary, secondary).
func (p OctetPosition) Shift() uint {
	return 16 - 5 - p.BitOffset
}

func (p OctetPosition) String() string {
	if p.Spans {
		return fmt.Sprintf("octets=%d+%d offset=%d", p.Primary, p.Secondary, p.BitOffset)
	}
	return fmt.Sprintf("octet=%d offset=%d", p.Primary, p.BitOffset)
}

// OctetsForQuintet returns the position of the quintet with the given index.
func OctetsForQuintet(index int) OctetPosition {
	if index < 0 {
		panic(fmt.Sprintf("enc: negative quintet index %d", index))
	}

	bit := index * 5
	pos := OctetPosition{
		Primary:   bit / 8,
		BitOffset: uint(bit % 8),
	}
	if pos.BitOffset > 3 {
		pos.Secondary = pos.Primary + 1
		pos.Spans = true
	}
	return pos
}

// CombineBytes glues two octets together into a 16-bit value, leading octet being the high one.
func CombineBytes(leading, trailing byte) uint16 {
	return uint16(leading)<<8 | uint16(trailing)
}

// ExtractBits returns `count` bits of `from`, starting `offset` bits from the least significant bit.
// The result is right-aligned. Ranges reaching past the 16th bit are a programming error.
func ExtractBits(count uint, from uint16, offset uint) uint16 {
	if offset+count > 16 {
		panic(fmt.Sprintf("enc: cannot extract %d bits at offset %d from a 16-bit value", count, offset))
	}
	return (from >> offset) & (1<<count - 1)
}

// QuintetAt calculates the value of a single quintet of data. Octets past the end of data are
// treated as zeros.
func QuintetAt(data []byte, index int) byte {
	pos := OctetsForQuintet(index)
	if !pos.Spans {
		return byte(ExtractBits(5, uint16(data[pos.Primary]), 3-pos.BitOffset))
	}

	var trailing byte
	if pos.Secondary < len(data) {
		trailing = data[pos.Secondary]
	}
	return byte(ExtractBits(5, CombineBytes(data[pos.Primary], trailing), pos.Shift()))
}

// QuintetCount returns the number of quintets needed to hold n octets.
func QuintetCount(n int) int {
	return (n*8 + 4) / 5
}

// BytesToQuintets splits data into 5-bit values. The last quintet is padded with zero bits if
// needed.
func BytesToQuintets(data []byte) []byte {
	res := make([]byte, QuintetCount(len(data)))
	for i := range res {
		res[i] = QuintetAt(data, i)
	}
	return res
}
