package si4464

// Si4464 command arguments carry multi-byte integers in big-endian
// order (most significant byte clocked first).

func marshalUint16(n uint16) []byte {
	return []byte{byte(n >> 8), byte(n & 0xFF)}
}

func marshalUint32(n uint32) []byte {
	return append(marshalUint16(uint16(n>>16)), marshalUint16(uint16(n&0xFFFF))...)
}
