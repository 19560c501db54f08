package display

import (
	"fmt"

	"github.com/satha027/IoT-Based-Temperature-and-Humidity-Monitoring-System/internal/model"
)

// Frame lays the reading out as the fixed two lines every renderer draws,
// sized to fit a 16-column character display.
func Frame(e model.CacheEntry) [2]string {
	return [2]string{
		fmt.Sprintf("Temp: %.1fC", e.Reading.Temperature),
		fmt.Sprintf("Hum:  %.1f%%", e.Reading.Humidity),
	}
}
