package config

import "fmt"

// FreqInfo is the derived frequency descriptor used to cross-check PHY
// hardware frequencies against the cell-info SYSINFO fields broadcast
// over the air. The full TETRA frequency table (ETSI EN 300 392-2 clause
// 21) is channel-coding detail out of this core's scope; this is the
// minimal band/carrier/offset/duplex/reverse deriver needed to satisfy
// StackConfig.Validate's consistency check.
type FreqInfo struct {
	Band             uint8
	Carrier          uint16
	FreqOffsetHz      uint8
	DuplexSpacingID   uint8
	ReverseOperation bool
}

// tetraBaseFreqHz is the base frequency (Hz, 380 MHz) that band 4 main
// carrier numbering starts from here; a simplification sufficient for
// consistency-checking, not channel-accurate RF synthesis.
const tetraBaseFreqHz = 380_000_000

// duplexSpacingTableHz are the duplex spacing values (Hz) indexed by the
// 3-bit duplex_spacing_setting field (ETSI EN 300 392-2 table 21.4).
var duplexSpacingTableHz = [8]uint32{
	0, 1_600_000, 10_000_000, 45_000_000, 50_000_000, 36_000_000, 6_250_000, 9_000_000,
}

// FreqInfoFromComponents builds a FreqInfo directly from its fields,
// mirroring the teacher's FreqInfo::from_components constructor.
func FreqInfoFromComponents(band uint8, carrier uint16, freqOffsetHz uint8, reverse bool, duplexSpacingID uint8, _ *uint32) (FreqInfo, error) {
	if int(duplexSpacingID) >= len(duplexSpacingTableHz) {
		return FreqInfo{}, fmt.Errorf("duplex spacing id %d out of range", duplexSpacingID)
	}
	return FreqInfo{
		Band:             band,
		Carrier:          carrier,
		FreqOffsetHz:     freqOffsetHz,
		DuplexSpacingID:  duplexSpacingID,
		ReverseOperation: reverse,
	}, nil
}

// FreqInfoFromSysinfoSettings derives a FreqInfo from the raw SYSINFO
// fields broadcast in cell info.
func FreqInfoFromSysinfoSettings(band uint8, mainCarrier uint16, freqOffset uint8, duplexSpacingSetting uint8, reverse bool) (FreqInfo, error) {
	return FreqInfoFromComponents(band, mainCarrier, freqOffset, reverse, duplexSpacingSetting, nil)
}

// FreqInfoFromDlUlFreqs derives a FreqInfo from a pair of actual downlink
// and uplink hardware frequencies in Hz, reducing them to the same
// band/carrier/offset/duplex/reverse descriptor SYSINFO settings produce.
func FreqInfoFromDlUlFreqs(dlFreqHz, ulFreqHz uint32) (FreqInfo, error) {
	if dlFreqHz == ulFreqHz {
		return FreqInfo{}, fmt.Errorf("downlink and uplink frequencies must differ, both are %d", dlFreqHz)
	}
	spacing := dlFreqHz - ulFreqHz
	if ulFreqHz > dlFreqHz {
		spacing = ulFreqHz - dlFreqHz
	}
	duplexID := -1
	for i, v := range duplexSpacingTableHz {
		if v == spacing {
			duplexID = i
			break
		}
	}
	if duplexID < 0 {
		return FreqInfo{}, fmt.Errorf("duplex spacing %d Hz does not match any known TETRA spacing", spacing)
	}

	const carrierSpacingHz = 25_000
	if dlFreqHz < tetraBaseFreqHz {
		return FreqInfo{}, fmt.Errorf("downlink frequency %d below TETRA base frequency", dlFreqHz)
	}
	carrier := uint16((dlFreqHz - tetraBaseFreqHz) / carrierSpacingHz)

	return FreqInfo{
		Band:             4,
		Carrier:          carrier,
		FreqOffsetHz:     0,
		DuplexSpacingID:  uint8(duplexID),
		ReverseOperation: ulFreqHz > dlFreqHz,
	}, nil
}
