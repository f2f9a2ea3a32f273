// Package hostinfo takes a snapshot of the machine the tracked program runs on.
// The values are passed through to the report as they are.
package hostinfo

import (
	"context"
	"fmt"

	"github.com/darkyzhou/seele/carbonj/cmd/carbonj/entities"
	"github.com/samber/lo"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/sirupsen/logrus"
)

type Provider interface {
	Snapshot(ctx context.Context) (*entities.HostInfo, error)
}

// System reads host information from the operating system.
type System struct{}

func NewSystem() *System {
	return &System{}
}

func (s *System) Snapshot(ctx context.Context) (*entities.HostInfo, error) {
	cpuInfo, err := cpuSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("Error reading cpu information: %w", err)
	}

	memory, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("Error reading memory information: %w", err)
	}

	// Load averages are not available everywhere and are only informational
	var loadInfo *entities.LoadInfo
	if avg, err := load.AvgWithContext(ctx); err != nil {
		logrus.WithError(err).Debug("Error reading load averages")
	} else {
		loadInfo = &entities.LoadInfo{Load1: avg.Load1, Load5: avg.Load5, Load15: avg.Load15}
	}

	return &entities.HostInfo{
		Cpu: cpuInfo,
		Memory: &entities.MemoryInfo{
			Total:     memory.Total,
			Available: memory.Available,
		},
		Load: loadInfo,
	}, nil
}

func cpuSnapshot(ctx context.Context) (*entities.CpuInfo, error) {
	infos, err := cpu.InfoWithContext(ctx)
	if err != nil {
		return nil, err
	}
	if len(infos) == 0 {
		return nil, fmt.Errorf("No cpu found")
	}

	// Some virtualized hosts do not expose core topology
	physical, err := cpu.CountsWithContext(ctx, false)
	if err != nil {
		logrus.WithError(err).Debug("Error counting physical cores")
	}
	logical, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		return nil, err
	}

	first := infos[0]
	return &entities.CpuInfo{
		Manufacturer:  manufacturer(first.VendorID),
		Brand:         first.ModelName,
		SpeedMhz:      lo.MaxBy(infos, func(a, b cpu.InfoStat) bool { return a.Mhz > b.Mhz }).Mhz,
		PhysicalCores: physical,
		Cores:         logical,
	}, nil
}

var vendorNames = map[string]string{
	"GenuineIntel": "Intel",
	"AuthenticAMD": "AMD",
	"CentaurHauls": "VIA",
	"HygonGenuine": "Hygon",
}

func manufacturer(vendorId string) string {
	if name, ok := vendorNames[vendorId]; ok {
		return name
	}
	return vendorId
}

// Static serves a fixed snapshot, for hosts that already know their own information.
type Static struct {
	Info *entities.HostInfo
}

func (s *Static) Snapshot(ctx context.Context) (*entities.HostInfo, error) {
	if s.Info == nil {
		return nil, fmt.Errorf("No host information available")
	}
	return s.Info, nil
}
