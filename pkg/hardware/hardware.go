// Package hardware probes the host for execution resources and
// provides the in-process pool used for GPU-bound schemes.
package hardware

import (
	"context"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"

	"github.com/electric-power/algo-service/pkg/log"
)

// Info describes the execution resources of the host.
type Info struct {
	HasGPU        bool
	GPUName       string
	PhysicalCores int
	LogicalCores  int
}

// Device returns the device label reported by health checks.
func (i Info) Device() string {
	if i.HasGPU {
		return "cuda"
	}
	return "cpu"
}

// Detect probes CPU topology and NVIDIA GPU presence. Failures fall
// back to conservative defaults instead of erroring out.
func Detect() Info {
	info := Info{PhysicalCores: 1, LogicalCores: 1}

	if n, err := cpu.Counts(false); err == nil && n > 0 {
		info.PhysicalCores = n
	}
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		info.LogicalCores = n
	}

	info.HasGPU, info.GPUName = detectGPU()

	log.WithComponent("hardware").Info().
		Int("physical_cores", info.PhysicalCores).
		Int("logical_cores", info.LogicalCores).
		Bool("gpu", info.HasGPU).
		Str("gpu_name", info.GPUName).
		Msg("hardware detected")
	return info
}

func detectGPU() (bool, string) {
	path, err := exec.LookPath("nvidia-smi")
	if err != nil {
		if _, err := os.Stat("/proc/driver/nvidia"); err == nil {
			return true, ""
		}
		return false, ""
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	out, err := exec.CommandContext(ctx, path, "--query-gpu=name", "--format=csv,noheader").Output()
	if err != nil {
		// the binary exists but the driver may be unavailable
		return false, ""
	}
	name := strings.TrimSpace(strings.SplitN(string(out), "\n", 2)[0])
	return true, name
}

// WorkerSlots returns the CPU subprocess budget: two cores are held
// back for the service itself and the GPU pool.
func WorkerSlots(physicalCores int) int {
	if physicalCores-2 < 1 {
		return 1
	}
	return physicalCores - 2
}
