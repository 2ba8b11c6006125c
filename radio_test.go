package si4464

import (
	"bytes"
	"testing"
)

func TestPartInfo(t *testing.T) {
	payload := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	sim := &chip{ctsAfter: 1, payload: payload}
	r := testRadio(t, sim, Config{})
	got := r.PartInfo()
	if r.Error() != nil {
		t.Fatalf("PartInfo error: %v", r.Error())
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("PartInfo = % X, want % X", got, payload)
	}
	wantTransaction(t, sim, 0, []byte{0x01})
	if sim.payloadReads != 1 {
		t.Errorf("%d payload reads, want 1", sim.payloadReads)
	}
}

func TestInterruptStatus(t *testing.T) {
	payload := []byte{0x00, 0x00, 0x08, 0x00, 0x00, 0x00, 0x00, 0x00}
	sim := &chip{ctsAfter: 2, payload: payload}
	r := testRadio(t, sim, Config{})
	got := r.InterruptStatus()
	if r.Error() != nil {
		t.Fatalf("InterruptStatus error: %v", r.Error())
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("InterruptStatus = % X, want % X", got, payload)
	}
	wantTransaction(t, sim, 0, []byte{0x20, 0x00, 0x00, 0x00})
	if sim.probes != 2 {
		t.Errorf("%d probes, want 2", sim.probes)
	}
}

func TestNop(t *testing.T) {
	sim := &chip{ctsAfter: -1}
	r := testRadio(t, sim, Config{})
	r.Nop()
	if r.Error() != nil {
		t.Fatalf("Nop error: %v", r.Error())
	}
	if len(sim.windows) != 1 {
		t.Fatalf("%d transactions, want 1", len(sim.windows))
	}
	wantTransaction(t, sim, 0, []byte{0x00})
	if sim.probes != 0 {
		t.Errorf("%d probes, want 0", sim.probes)
	}
}

func TestPowerUp(t *testing.T) {
	sim := &chip{ctsAfter: 1}
	r := testRadio(t, sim, Config{})
	r.PowerUp()
	if r.Error() != nil {
		t.Fatalf("PowerUp error: %v", r.Error())
	}
	// 30 MHz crystal, big-endian
	wantTransaction(t, sim, 0, []byte{0x02, 0x01, 0x00, 0x01, 0xC9, 0xC3, 0x80})
	if sim.probes != 1 {
		t.Errorf("%d probes, want 1", sim.probes)
	}
	if sim.payloadReads != 0 {
		t.Errorf("%d payload reads, want 0", sim.payloadReads)
	}
}

func TestPowerUpCustomXtal(t *testing.T) {
	sim := &chip{ctsAfter: 1}
	r := testRadio(t, sim, Config{XtalFrequency: 26000000})
	r.PowerUp()
	wantTransaction(t, sim, 0, []byte{0x02, 0x01, 0x00, 0x01, 0x8C, 0xBA, 0x80})
}
