package server

import (
	"net/http"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// SystemHealthResponse reports process and host resource usage.
type SystemHealthResponse struct {
	Status        string  `json:"status"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	CPUPercent    float64 `json:"cpu_percent"`
	RAMPercent    float64 `json:"ram_percent"`
	CheckedAt     string  `json:"checked_at"`
}

// handleSystemHealth returns host CPU/RAM usage and process uptime.
func (s *Server) handleSystemHealth(w http.ResponseWriter, r *http.Request) {
	cpuPct, ramPct := s.systemStats()

	s.writeJSON(w, http.StatusOK, SystemHealthResponse{
		Status:        "running",
		UptimeSeconds: time.Since(s.startupTime).Seconds(),
		CPUPercent:    cpuPct,
		RAMPercent:    ramPct,
		CheckedAt:     time.Now().UTC().Format(time.RFC3339),
	})
}

// systemStats samples CPU over 100ms to keep the endpoint responsive.
func (s *Server) systemStats() (float64, float64) {
	cpuPercent, err := cpu.Percent(100*time.Millisecond, false)
	if err != nil {
		s.log.Warn().Err(err).Msg("Failed to get CPU percentage")
		cpuPercent = []float64{0}
	}

	memStat, err := mem.VirtualMemory()
	if err != nil {
		s.log.Warn().Err(err).Msg("Failed to get memory statistics")
		return 0, 0
	}

	cpuAvg := 0.0
	if len(cpuPercent) > 0 {
		cpuAvg = cpuPercent[0]
	}
	return cpuAvg, memStat.UsedPercent
}
