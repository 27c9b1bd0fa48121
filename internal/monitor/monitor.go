package monitor

import (
	"math"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/madihagulraiz771/Color-detection-sys/internal/entity"
)

// Sampler reads host CPU and memory usage at most once per interval.
// It is called from the frame loop, so it never blocks: cpu.Percent(0, ...)
// reports usage since the previous call instead of waiting for a window.
type Sampler struct {
	every time.Duration
	last  time.Time
	stats entity.Stats

	// swapped in tests
	cpuPercent func() (float64, error)
	memPercent func() (float64, error)
}

func NewSampler(every time.Duration) *Sampler {
	return &Sampler{
		every:      every,
		cpuPercent: hostCPU,
		memPercent: hostMem,
	}
}

// Tick refreshes the stats when the interval has passed and reports whether
// it did.
func (s *Sampler) Tick(now time.Time) bool {
	if !s.last.IsZero() && now.Sub(s.last) < s.every {
		return false
	}
	s.last = now

	// keep the old value on error, the HUD is best effort
	if v, err := s.memPercent(); err == nil {
		s.stats.MemUsage = round1(v)
	}
	if v, err := s.cpuPercent(); err == nil {
		s.stats.CPUUsage = round1(v)
	}
	return true
}

func (s *Sampler) Stats() entity.Stats { return s.stats }

func hostCPU() (float64, error) {
	c, err := cpu.Percent(0, false)
	if err != nil || len(c) == 0 {
		return 0, err
	}
	return c[0], nil
}

func hostMem() (float64, error) {
	v, err := mem.VirtualMemory()
	if err != nil {
		return 0, err
	}
	return v.UsedPercent, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
