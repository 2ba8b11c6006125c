package si4464

// Command represents a command opcode understood by the Si4464.
// See the Si446x command reference (AN625).
type Command byte

//go:generate stringer -type Command

const (
	CmdNop          Command = 0x00
	CmdPartInfo     Command = 0x01
	CmdPowerUp      Command = 0x02
	CmdFuncInfo     Command = 0x10
	CmdSetProperty  Command = 0x11
	CmdGetProperty  Command = 0x12
	CmdFifoInfo     Command = 0x15
	CmdGetIntStatus Command = 0x20
	CmdStartTx      Command = 0x31
	CmdStartRx      Command = 0x32
	CmdRequestState Command = 0x33
	CmdChangeState  Command = 0x34
	CmdReadCmdBuf   Command = 0x44
	CmdWriteTxFifo  Command = 0x66
	CmdReadRxFifo   Command = 0x77
)

// Response frame lengths for the commands that return one.
const (
	PartInfoLen  = 8
	IntStatusLen = 8
)

const (
	// ctsReady is the status byte a clear-to-send chip clocks back
	// on a CmdReadCmdBuf probe; anything else means busy.
	ctsReady byte = 0xFF

	// POWER_UP arguments: boot the main EZRadioPRO firmware image
	// from an ordinary crystal (no TCXO).
	bootMainImage byte = 0x01
	xtalNormal    byte = 0x00
)
