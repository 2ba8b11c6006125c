package si4464

// Configuration for Raspberry Pi with the Si4464 breakout on SPI0.

const (
	spiDevice = "/dev/spidev0.0"
	spiSpeed  = 500000 // Hz
	sdnPin    = 27
	csPin     = 8
)
