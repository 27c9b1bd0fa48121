package entity

import "fmt"

// Stats is one host resource sample shown by the optional monitor HUD.
type Stats struct {
	CPUUsage float64 // 0-100
	MemUsage float64 // 0-100
}

func (s Stats) String() string {
	return fmt.Sprintf("CPU %.1f%%  MEM %.1f%%", s.CPUUsage, s.MemUsage)
}
