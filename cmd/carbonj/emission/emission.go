// Package emission turns an execution's wall time into a rough energy and
// CO2 figure. The power draw and the grid carbon intensity are fixed
// assumptions, not measurements.
package emission

import (
	"github.com/darkyzhou/seele/carbonj/cmd/carbonj/entities"
	"github.com/samber/lo"
)

const (
	// Watts drawn for the whole duration of a run.
	AssumedPowerWatts = 100.0
	// kgCO2 per kWh.
	CarbonIntensity = 0.475
	// Only applied to the displayed mWh value.
	MinDisplayEnergyMWh = 0.001
)

func Estimate(durationMs int64) *entities.EmissionEstimate {
	durationSec := float64(lo.Max([]int64{durationMs, 0})) / 1000

	energyKWh := AssumedPowerWatts * durationSec / 3600 / 1000
	emissionsKg := energyKWh * CarbonIntensity
	energyMWh := energyKWh * 1000 * 1000

	return &entities.EmissionEstimate{
		EnergyKWh:  energyKWh,
		EnergyMWh:  lo.Max([]float64{energyMWh, MinDisplayEnergyMWh}),
		EmissionsG: emissionsKg * 1000,
	}
}
