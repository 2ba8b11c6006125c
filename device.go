package si4464

import (
	"errors"
	"time"

	"github.com/ecc1/gpio"
	"github.com/ecc1/radio"
	"github.com/ecc1/spi"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetLevel(logrus.WarnLevel)
}

// Errors recoverable at the protocol layer.
// A Radio carrying one of these can be cleared with SetError(nil)
// and the command reissued.
var (
	ErrCTSTimeout = errors.New("si4464: CTS timeout")
	ErrCanceled   = errors.New("si4464: canceled")
)

// Port is the full-duplex byte exchange used for chip transactions.
// Each Transfer clocks buf out on the bus and overwrites it with the
// bytes clocked back in. *spi.Device satisfies Port.
type Port interface {
	Transfer(buf []byte) error
	Close() error
}

// Line is a discrete control line. Write(true) asserts the line's
// logical function (select, shutdown); electrical polarity is the
// gpio layer's concern. gpio.OutputPin satisfies Line.
type Line interface {
	Write(bool) error
}

// Config collects the bus, pin, and polling parameters for a Radio.
// A zero duration or count field means the default.
type Config struct {
	// SPIDevice is the spidev pathname of the bus the chip is on.
	SPIDevice string
	// SPISpeed is the bus clock rate in Hz.
	SPISpeed int

	// SDNPin is the GPIO number of the shutdown line (high = shutdown).
	SDNPin int
	// CSPin is the GPIO number of the chip-select line (active low).
	CSPin int

	// PowerOnDelay is how long to wait for the chip to stabilize
	// after releasing shutdown.
	PowerOnDelay time.Duration
	// ResetDelay is the width of each phase of the reset pulse.
	ResetDelay time.Duration

	// PollAttempts bounds the number of CTS probes per response read.
	PollAttempts int
	// PollInterval is the pause between CTS probes of a busy chip.
	PollInterval time.Duration

	// XtalFrequency is the crystal frequency in Hz sent with POWER_UP.
	XtalFrequency uint32

	// Cancel, if non-nil, aborts a CTS poll loop when closed.
	// It is checked once per attempt.
	Cancel <-chan struct{}

	// Verbose enables debug logging of every request and transfer.
	Verbose bool
}

func defaultConfig() Config {
	return Config{
		SPIDevice:     spiDevice,
		SPISpeed:      spiSpeed,
		SDNPin:        sdnPin,
		CSPin:         csPin,
		PowerOnDelay:  20 * time.Millisecond,
		ResetDelay:    20 * time.Millisecond,
		PollAttempts:  1000,
		PollInterval:  1 * time.Millisecond,
		XtalFrequency: 30000000,
	}
}

// Radio represents an open radio device.
type Radio struct {
	device Port
	sdnPin Line
	csPin  Line
	config Config
	stats  radio.Statistics
	err    error
}

// Open opens the radio device using the platform defaults.
// Check Error before use: an initialization failure here is fatal
// for any further protocol activity.
func Open() *Radio {
	return OpenConfig(defaultConfig())
}

// OpenConfig opens the radio device described by cfg.
func OpenConfig(cfg Config) *Radio {
	r := &Radio{config: fillDefaults(cfg)}
	if cfg.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	r.device, r.err = spi.Open(r.config.SPIDevice, r.config.SPISpeed, 0)
	if r.err != nil {
		return r
	}
	// SDN is an active-high shutdown line; come up powered off.
	r.sdnPin, r.err = gpio.Output(r.config.SDNPin, false, true)
	if r.err != nil {
		r.Close()
		return r
	}
	// Chip-select idles deasserted between transactions.
	r.csPin, r.err = gpio.Output(r.config.CSPin, true, false)
	if r.err != nil {
		r.Close()
	}
	return r
}

// New creates a Radio from explicitly provided transport and pin
// handles. Hardware callers normally use Open; New exists for tests
// and nonstandard platforms.
func New(device Port, sdn Line, cs Line, cfg Config) *Radio {
	if cfg.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return &Radio{
		device: device,
		sdnPin: sdn,
		csPin:  cs,
		config: fillDefaults(cfg),
	}
}

func fillDefaults(cfg Config) Config {
	def := defaultConfig()
	if cfg.PowerOnDelay == 0 {
		cfg.PowerOnDelay = def.PowerOnDelay
	}
	if cfg.ResetDelay == 0 {
		cfg.ResetDelay = def.ResetDelay
	}
	if cfg.PollAttempts == 0 {
		cfg.PollAttempts = def.PollAttempts
	}
	if cfg.PollInterval == 0 {
		cfg.PollInterval = def.PollInterval
	}
	if cfg.XtalFrequency == 0 {
		cfg.XtalFrequency = def.XtalFrequency
	}
	return cfg
}

// Close closes the radio device. An error already on the Radio is
// kept in preference to the close result, so a failed initialization
// stays visible through Error after cleanup.
func (r *Radio) Close() {
	err := r.device.Close()
	if r.err == nil {
		r.err = err
	}
}

// Name returns the radio's name.
func (r *Radio) Name() string {
	return "Si4464"
}

// Device returns the pathname of the radio's device.
func (r *Radio) Device() string {
	return r.config.SPIDevice
}

// Statistics returns the byte and packet counts for the radio device.
func (r *Radio) Statistics() radio.Statistics {
	return r.stats
}

// Error returns the error state of the radio device.
func (r *Radio) Error() error {
	return r.err
}

// SetError sets the error state of the radio device.
func (r *Radio) SetError(err error) {
	r.err = err
}

// Hardware returns the radio's hardware information.
func (r *Radio) Hardware() *radio.Hardware {
	panic("unimplemented")
}

// PowerOn releases the shutdown line and waits for the chip to
// stabilize. Call it once, before Reset and before any command;
// releasing shutdown on an already-powered chip is a caller error.
func (r *Radio) PowerOn() {
	if r.Error() != nil {
		return
	}
	r.err = r.sdnPin.Write(false)
	time.Sleep(r.config.PowerOnDelay)
}

// Reset pulses the shutdown line to put the chip through a full
// reset. Safe to call repeatedly.
func (r *Radio) Reset() {
	if r.Error() != nil {
		return
	}
	_ = r.sdnPin.Write(true)
	time.Sleep(r.config.ResetDelay)
	r.err = r.sdnPin.Write(false)
	time.Sleep(r.config.ResetDelay)
}

func (r *Radio) setSelect(asserted bool) {
	if r.err != nil {
		return
	}
	r.err = r.csPin.Write(asserted)
}

func (r *Radio) exchange(buf []byte) {
	if r.err != nil {
		return
	}
	r.err = r.device.Transfer(buf)
	log.Debugf("exchanged % X", buf)
}

// request transmits cmd followed by its argument bytes as a single
// select-gated transaction. Bytes clocked back during the command
// phase are discarded.
func (r *Radio) request(cmd Command, args ...byte) {
	data := make([]byte, 1+len(args))
	data[0] = byte(cmd)
	copy(data[1:], args)
	log.Debugf("request: % X", data)
	r.setSelect(true)
	r.exchange(data)
	r.setSelect(false)
}

// pollCTS performs one probe transaction and reports whether the chip
// answered with the ready sentinel.
func (r *Radio) pollCTS() bool {
	probe := []byte{byte(CmdReadCmdBuf)}
	status := []byte{0}
	r.setSelect(true)
	r.exchange(probe)
	r.exchange(status)
	r.setSelect(false)
	return r.err == nil && status[0] == ctsReady
}

// waitCTS polls until the chip reports clear-to-send, giving up after
// the configured attempt budget. Each probe is a complete select-gated
// transaction; a busy chip costs one PollInterval per attempt.
func (r *Radio) waitCTS() bool {
	for n := r.config.PollAttempts; n > 0; n-- {
		if r.config.Cancel != nil {
			select {
			case <-r.config.Cancel:
				r.SetError(ErrCanceled)
				return false
			default:
			}
		}
		if r.pollCTS() {
			return true
		}
		if r.Error() != nil {
			return false
		}
		time.Sleep(r.config.PollInterval)
	}
	log.Warnf("no CTS after %d attempts", r.config.PollAttempts)
	r.SetError(ErrCTSTimeout)
	return false
}

// readResponse retrieves an n-byte response frame once the chip
// signals clear-to-send. On timeout it returns nil and leaves
// ErrCTSTimeout as the device error; the caller may clear that with
// SetError and reissue the whole command. The payload is fetched as a
// separate transaction from the successful probe, so a chip that goes
// busy again in between is not re-validated; the chip's readiness
// holds until the next command in practice, and revalidation would
// change the transaction sequence the chip sees.
func (r *Radio) readResponse(n int) []byte {
	if !r.waitCTS() {
		return nil
	}
	p := make([]byte, n)
	r.setSelect(true)
	r.exchange(p)
	r.setSelect(false)
	if r.Error() != nil {
		return nil
	}
	log.Debugf("received %d-byte response % X", n, p)
	return p
}
