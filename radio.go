package si4464

// Response frames are returned uninterpreted: field semantics belong
// to the caller. An empty frame means the chip never signaled
// clear-to-send; see Radio.Error.

// PowerUp boots the chip firmware. Call it after PowerOn and Reset,
// before any other command. The chip answers with CTS only, no
// response frame.
func (r *Radio) PowerUp() {
	if r.Error() != nil {
		return
	}
	args := []byte{bootMainImage, xtalNormal}
	args = append(args, marshalUint32(r.config.XtalFrequency)...)
	r.request(CmdPowerUp, args...)
	r.waitCTS()
}

// Nop sends the NOP command. The chip returns nothing; a NOP on a
// responsive chip is a cheap aliveness check via Error.
func (r *Radio) Nop() {
	if r.Error() != nil {
		return
	}
	r.request(CmdNop)
}

// PartInfo returns the chip's part information frame: revision, part
// number, part build, ID, customer, and ROM ID.
func (r *Radio) PartInfo() []byte {
	if r.Error() != nil {
		return nil
	}
	r.request(CmdPartInfo)
	return r.readResponse(PartInfoLen)
}

// InterruptStatus reads the chip's pending interrupt status,
// clearing all pending flags.
func (r *Radio) InterruptStatus() []byte {
	if r.Error() != nil {
		return nil
	}
	r.request(CmdGetIntStatus, 0x00, 0x00, 0x00)
	return r.readResponse(IntStatusLen)
}
