package entities

type TrackingReport struct {
	RunId      string            `json:"runId"`
	FileName   string            `json:"fileName"`
	Language   string            `json:"language"`
	SystemInfo *HostInfo         `json:"systemInfo"`
	Execution  *ExecutionResult  `json:"execution"`
	Emissions  *EmissionEstimate `json:"emissions"`
}

type ExecutionResult struct {
	Status     string  `json:"status"`
	ExitCode   int     `json:"exitCode"`
	Signal     string  `json:"signal,omitempty"`
	DurationMs int64   `json:"durationMs"`
	Stdout     string  `json:"stdout"`
	Stderr     string  `json:"stderr"`
	Error      *string `json:"error"`
}

type EmissionEstimate struct {
	EnergyKWh  float64 `json:"energyKWh"`
	EnergyMWh  float64 `json:"energyMWh"`
	EmissionsG float64 `json:"emissionsG"`
}

// RawEnergyMWh is the energy in mWh before the display floor is applied.
func (e *EmissionEstimate) RawEnergyMWh() float64 {
	return e.EnergyKWh * 1000 * 1000
}

type HostInfo struct {
	Cpu    *CpuInfo    `json:"cpu"`
	Memory *MemoryInfo `json:"memory"`
	Load   *LoadInfo   `json:"load,omitempty"`
}

type CpuInfo struct {
	Manufacturer  string  `json:"manufacturer"`
	Brand         string  `json:"brand"`
	SpeedMhz      float64 `json:"speedMhz"`
	PhysicalCores int     `json:"physicalCores"`
	Cores         int     `json:"cores"`
}

type MemoryInfo struct {
	Total     uint64 `json:"total"`
	Available uint64 `json:"available"`
}

type LoadInfo struct {
	Load1  float64 `json:"load1"`
	Load5  float64 `json:"load5"`
	Load15 float64 `json:"load15"`
}
