package tui

import (
	"fmt"
	"math"
	"strings"
	"time"
)

var graphChars = []string{"▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"}

// renderCPUGraph creates an ASCII sparkline of the aggregate CPU history
func renderCPUGraph(data []float64, width int, interval time.Duration) string {
	if width < 10 {
		width = 10
	}
	if len(data) == 0 {
		return dimStyle.Render("No data yet...")
	}

	// Take the last 'width' points
	start := 0
	if len(data) > width {
		start = len(data) - width
	}
	display := data[start:]

	// Find min and max for scaling
	min, max := math.MaxFloat64, 0.0
	for _, v := range display {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	// If all values are the same, adjust range slightly
	if max == min {
		min = math.Max(0, max-10)
		max = max + 10
	}

	dataRange := max - min
	if dataRange == 0 {
		dataRange = 1
	}

	var line strings.Builder
	for _, value := range display {
		normalized := (value - min) / dataRange
		charIndex := int(normalized * float64(len(graphChars)-1))
		if charIndex >= len(graphChars) {
			charIndex = len(graphChars) - 1
		}
		if charIndex < 0 {
			charIndex = 0
		}
		line.WriteString(graphChars[charIndex])
	}

	current := display[len(display)-1]
	header := fmt.Sprintf("CPU history: %.1f%% (min: %.1f%%, max: %.1f%%)", current, min, max)

	span := (time.Duration(len(display)) * interval).Round(time.Second)
	timeline := fmt.Sprintf("◄─ %s ago", span)

	var s strings.Builder
	s.WriteString(titleStyle.Render(header) + "\n\n")
	s.WriteString(valueStyle.Render(line.String()) + "\n")
	s.WriteString(dimStyle.Render(timeline))
	return s.String()
}
