// Package codec implements LZW compression over arbitrary byte strings.
//
// Grounded on original_source/lib/lzw/lzw.h: 12-bit codes, code 4095
// reserved as the END marker, the dictionary growing from 256 up to and
// including 4094, and little-endian bit-packing with a zero-padded
// final byte.
package codec

const (
	codeBits      = 12
	maxCode       = 4095
	endCode       = 4095
	firstFreeCode = 256
)

// Compress LZW-encodes input and returns the packed byte stream. The
// final code emitted is always endCode.
func Compress(input []byte) []byte {
	dict := make(map[string]uint16, maxCode+1)
	for i := 0; i < firstFreeCode; i++ {
		dict[string([]byte{byte(i)})] = uint16(i)
	}

	nextCode := uint16(firstFreeCode)
	var w []byte
	var codes []uint16

	for _, c := range input {
		if len(w) == 0 {
			w = []byte{c}
			continue
		}

		wc := append(append([]byte{}, w...), c)
		if _, ok := dict[string(wc)]; ok {
			w = wc
			continue
		}

		if code, ok := dict[string(w)]; ok {
			codes = append(codes, code)
		}

		if nextCode < endCode {
			dict[string(wc)] = nextCode
			nextCode++
		}

		w = []byte{c}
	}

	if len(w) > 0 {
		if code, ok := dict[string(w)]; ok {
			codes = append(codes, code)
		}
	}

	codes = append(codes, endCode)
	return packCodes(codes)
}

// Decompress reverses Compress. A malformed stream (an impossible code,
// or no codes at all) yields an empty result rather than an error, per
// the engine's Absent-entity/Malformed-input error model.
func Decompress(data []byte) []byte {
	codes := unpackCodes(data)
	if len(codes) == 0 {
		return nil
	}

	dict := make([][]byte, firstFreeCode, maxCode+1)
	for i := 0; i < firstFreeCode; i++ {
		dict[i] = []byte{byte(i)}
	}
	nextCode := uint16(firstFreeCode)

	idx := 0
	firstCode := codes[idx]
	idx++
	if firstCode == endCode || int(firstCode) >= len(dict) {
		return nil
	}

	w := dict[firstCode]
	out := append([]byte{}, w...)

	for idx < len(codes) {
		k := codes[idx]
		idx++
		if k == endCode {
			break
		}

		var entry []byte
		switch {
		case int(k) < len(dict):
			entry = dict[k]
		case k == nextCode && len(w) > 0:
			entry = append(append([]byte{}, w...), w[0])
		default:
			return nil
		}

		out = append(out, entry...)

		if nextCode < endCode && len(w) > 0 && len(entry) > 0 {
			newEntry := append(append([]byte{}, w...), entry[0])
			dict = append(dict, newEntry)
			nextCode++
		}

		w = entry
	}

	return out
}

func packCodes(codes []uint16) []byte {
	var out []byte
	var buffer uint32
	var bits uint

	for _, code := range codes {
		buffer |= uint32(code&((1<<codeBits)-1)) << bits
		bits += codeBits
		for bits >= 8 {
			out = append(out, byte(buffer&0xFF))
			buffer >>= 8
			bits -= 8
		}
	}

	if bits > 0 {
		out = append(out, byte(buffer&0xFF))
	}

	return out
}

func unpackCodes(data []byte) []uint16 {
	var codes []uint16
	var buffer uint32
	var bits uint

	for _, b := range data {
		buffer |= uint32(b) << bits
		bits += 8

		for bits >= codeBits {
			codes = append(codes, uint16(buffer&((1<<codeBits)-1)))
			buffer >>= codeBits
			bits -= codeBits
		}
	}

	return codes
}
