package si4464

// Configuration for Intel Edison in 64-bit mode.

const (
	spiDevice = "/dev/spidev5.1"
	spiSpeed  = 500000 // Hz
	sdnPin    = 14
	csPin     = 110
)
