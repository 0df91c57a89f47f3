package nvimage

// 3-D engine class numbers, as reported by the kernel driver. Only the
// generation boundaries layout math cares about are listed.
const (
	// ClsFermiA is FERMI_A, the oldest 3-D engine class with 8-row GOBs.
	ClsFermiA uint32 = 0x9097
	// ClsTuringA is TURING_A, the first class with the simplified
	// compression-aware MMU kinds.
	ClsTuringA uint32 = 0xc597
)

// DeviceInfo carries the device capability data that image layout depends on.
// Callers resolve it once from their device-enumeration path and treat it as
// read-only afterwards.
type DeviceInfo struct {
	// Cls3D is the class number of the device's 3-D engine.
	Cls3D uint32
}

// Generation is the closed set of hardware generations with distinct layout
// behavior. Adding support for a new generation means adding a value here and
// one more PTE-kind table, not new control flow.
type Generation uint8

const (
	// GenerationUnsupported is reported for engine classes older than Fermi.
	GenerationUnsupported Generation = iota
	// GenerationFermi covers Fermi through Volta.
	GenerationFermi
	// GenerationTuring covers Turing and newer.
	GenerationTuring
)

// Generation resolves the device's 3-D engine class to a layout generation.
func (d *DeviceInfo) Generation() Generation {
	switch {
	case d.Cls3D >= ClsTuringA:
		return GenerationTuring
	case d.Cls3D >= ClsFermiA:
		return GenerationFermi
	}

	return GenerationUnsupported
}

func (g Generation) String() string {
	switch g {
	case GenerationFermi:
		return "GenerationFermi"
	case GenerationTuring:
		return "GenerationTuring"
	}

	return "GenerationUnsupported"
}
