package pstate

import "math"

// Field layout of the Zen P-state status register.
const (
	vidShift = 14
	vidMask  = 0xFF
	didShift = 8
	didMask  = 0x3F
	fidMask  = 0xFF
)

// Scaling constants for the VID and FID/DID encodings.
const (
	fidStep      = 25.0
	didStep      = 12.5
	ratioPerGHz  = 10.0
	vidBaseVolts = 1.55
	vidStepVolts = 0.00625
)

// State is the decoded view of one raw register value.
type State struct {
	FID uint8 `json:"fid"`
	DID uint8 `json:"did"`
	VID uint8 `json:"vid"`

	FrequencyGHz float64 `json:"frequency_ghz"`
	Voltage      float64 `json:"voltage_volts"`
}

// Decode extracts FID, DID and VID from v and converts them to a core
// frequency and voltage. Only bits 0-21 are significant.
//
// The arithmetic is deliberately unclamped: a DID of zero yields +Inf GHz
// (or NaN when FID is zero too) and a large VID yields a negative voltage.
// Use Plausible to detect such values.
func Decode(v uint64) State {
	s := State{
		FID: uint8(v & fidMask),
		DID: uint8((v >> didShift) & didMask),
		VID: uint8((v >> vidShift) & vidMask),
	}

	ratio := fidStep * float64(s.FID) / (didStep * float64(s.DID))
	s.FrequencyGHz = ratio / ratioPerGHz
	s.Voltage = vidBaseVolts - float64(s.VID)*vidStepVolts

	return s
}

// Plausible reports whether the decoded values could describe real hardware.
func (s State) Plausible() bool {
	if math.IsNaN(s.FrequencyGHz) || math.IsInf(s.FrequencyGHz, 0) {
		return false
	}
	return s.Voltage >= 0
}

// Encode packs fid, did and vid into a register value. It is the inverse
// of Decode for the three fields and is mostly useful for fixtures.
func Encode(fid, did, vid uint8) uint64 {
	return uint64(fid)&fidMask |
		(uint64(did)&didMask)<<didShift |
		(uint64(vid)&vidMask)<<vidShift
}
