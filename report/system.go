package report

import (
	"fmt"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"
)

// System describes the machine a run executed on.
type System struct {
	Platform string
	CPU      string
	Memory   string
}

// CollectSystem queries the host. Fields that cannot be read are left
// empty rather than failing the run.
func CollectSystem() System {
	var s System
	if h, err := host.Info(); err == nil && h != nil {
		s.Platform = h.Platform
	}
	if c, err := cpu.Info(); err == nil && len(c) > 0 {
		s.CPU = c[0].ModelName
	}
	if vm, err := mem.VirtualMemory(); err == nil && vm != nil {
		s.Memory = fmt.Sprintf("%d GB", vm.Total/1024/1024/1024)
	}
	return s
}
