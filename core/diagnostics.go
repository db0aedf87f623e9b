package core

import (
	"github.com/shirou/gopsutil/host"
)

// logHostDiagnostics emits one structured line describing the platform
// Init is running on (spec §4.12). Nothing here is load-bearing for channel
// selection; it exists purely so a bug report carries the kernel and
// platform version alongside the channel-degradation warnings.
func logHostDiagnostics(c config) {
	info, err := host.Info()
	if err != nil {
		c.logger.Warn().Err(err).Msg("host diagnostics unavailable")
		return
	}
	c.logger.Info().
		Str("os", info.OS).
		Str("platform", info.Platform).
		Str("platform_version", info.PlatformVersion).
		Str("kernel_version", info.KernelVersion).
		Str("kernel_arch", info.KernelArch).
		Msg("fbinput init")
}
