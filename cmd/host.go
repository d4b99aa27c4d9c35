package cmd

import (
	"runtime"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// logHost describes the machine the benchmark runs on. Missing information
// is skipped rather than treated as an error.
func logHost(logger zerolog.Logger) {
	ev := logger.Info().
		Str("component", "host").
		Str("go", runtime.Version()).
		Str("arch", runtime.GOOS+"/"+runtime.GOARCH).
		Int("cpus", runtime.NumCPU())

	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		ev = ev.Str("cpu", infos[0].ModelName)
	} else if err != nil {
		logger.Debug().Err(err).Msg("cpu info unavailable")
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		ev = ev.Uint64("mem_total", vm.Total).Uint64("mem_available", vm.Available)
	} else {
		logger.Debug().Err(err).Msg("memory info unavailable")
	}
	ev.Msg("host")
}
