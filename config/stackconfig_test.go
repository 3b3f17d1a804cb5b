package config

import "testing"

func TestValidatePhyNoneSucceeds(t *testing.T) {
	cfg := NewStackConfig(ModeBs, 204, 1337)
	cfg.PhyIO.Backend = PhyNone
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected PhyNone to validate, got %v", err)
	}
}

func TestValidateUndefinedBackendFails(t *testing.T) {
	cfg := NewStackConfig(ModeBs, 204, 1337)
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected undefined backend to fail validation")
	}
}

func TestValidateSoapySdrRequiresExactlyOneHardwareConfig(t *testing.T) {
	cfg := NewStackConfig(ModeBs, 204, 1337)
	cfg.PhyIO.Backend = PhySoapySdr
	cfg.PhyIO.SoapySdr = &CfgSoapySdr{}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected zero-hardware-config to fail validation")
	}

	cfg.PhyIO.SoapySdr.IOCfgUsrpB2xx = &IOCfgUsrpB2xx{DeviceArgs: "type=b200"}
	cfg.PhyIO.SoapySdr.IOCfgLimeSdr = &IOCfgLimeSdr{DeviceArgs: "driver=lime"}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected two-hardware-configs to fail validation")
	}
}

func TestValidateSoapySdrFrequencyConsistency(t *testing.T) {
	cfg := NewStackConfig(ModeBs, 204, 1337)
	cfg.PhyIO.Backend = PhySoapySdr
	cfg.Cell.FreqBand = 4
	cfg.Cell.MainCarrier = 100
	cfg.Cell.DuplexSpacingSetting = 1 // 1.6 MHz

	dlFreq := tetraBaseFreqHz + uint32(cfg.Cell.MainCarrier)*25_000
	ulFreq := dlFreq - duplexSpacingTableHz[1]

	cfg.PhyIO.SoapySdr = &CfgSoapySdr{
		DlFreq:        dlFreq,
		UlFreq:        ulFreq,
		IOCfgUsrpB2xx: &IOCfgUsrpB2xx{DeviceArgs: "type=b200"},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected consistent frequencies to validate, got %v", err)
	}

	cfg.Cell.MainCarrier = 200 // now inconsistent with dlFreq
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected inconsistent carrier to fail validation")
	}
}

func TestSharedConfigStateReadWrite(t *testing.T) {
	cfg := NewStackConfig(ModeBs, 204, 1337)
	cfg.PhyIO.Backend = PhyNone
	shared := NewSharedConfig(cfg)

	state, unlock := shared.StateWrite()
	state.CellLoadCA = 2
	unlock()

	readState, runlock := shared.StateRead()
	defer runlock()
	if readState.CellLoadCA != 2 {
		t.Errorf("expected CellLoadCA=2, got %d", readState.CellLoadCA)
	}
}

func TestFromPartsPanicsOnInvalidConfig(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic constructing SharedConfig from invalid config")
		}
	}()
	NewSharedConfig(NewStackConfig(ModeBs, 204, 1337))
}
