package victron

// optionalU maps a raw unsigned field to a pointer, absent when raw equals
// its sentinel value. Centralizes the "sentinels belong to the parser"
// rule so individual device parsers don't repeat the nil-check.
func optionalU(raw, sentinel uint64, scale func(uint64) float64) *float64 {
	if raw == sentinel {
		return nil
	}
	v := scale(raw)
	return &v
}

// optionalS is optionalU's signed counterpart.
func optionalS(raw, sentinel int64, scale func(int64) float64) *float64 {
	if raw == sentinel {
		return nil
	}
	v := scale(raw)
	return &v
}

func scaled(factor float64) func(uint64) float64 {
	return func(raw uint64) float64 { return float64(raw) * factor }
}

func scaledSigned(factor float64) func(int64) float64 {
	return func(raw int64) float64 { return float64(raw) * factor }
}

// optionalChargerError maps the raw charger_error byte to a pointer,
// absent at the 0xFF sentinel. ChargerError's wire values top out at 215,
// so unlike OperationMode it has no in-band "not available" member.
func optionalChargerError(raw uint64) *ChargerError {
	if raw == 0xFF {
		return nil
	}
	v := ChargerError(raw)
	return &v
}

// optionalOperationMode maps a raw device_state byte to a pointer, absent
// at the 0xFF sentinel. OperationMode already has a NOT_AVAILABLE member at
// 255, but some device kinds document device_state's sentinel as absent
// rather than that in-band value, so this keeps the two conventions
// distinct per field rather than collapsing them.
func optionalOperationMode(raw uint64) *OperationMode {
	if raw == 0xFF {
		return nil
	}
	v := OperationMode(raw)
	return &v
}
