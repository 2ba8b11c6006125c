package main

import (
	"fmt"
	"log"

	"github.com/ecc1/si4464"
)

func main() {
	r := si4464.Open()
	if r.Error() != nil {
		log.Fatal(r.Error())
	}
	defer r.Close()
	fmt.Printf("device: %s\n", r.Device())

	r.PowerOn()
	r.Reset()
	r.PowerUp()
	if r.Error() != nil {
		log.Fatal(r.Error())
	}

	r.Nop()
	report(r, "PART_INFO", r.PartInfo())
	report(r, "GET_INT_STATUS", r.InterruptStatus())
}

func report(r *si4464.Radio, label string, frame []byte) {
	if len(frame) == 0 {
		fmt.Printf("%s: no response (%v)\n", label, r.Error())
		r.SetError(nil)
		return
	}
	fmt.Printf("%s [%d bytes]: % X\n", label, len(frame), frame)
}
