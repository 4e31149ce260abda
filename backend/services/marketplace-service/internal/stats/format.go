package stats

import "fmt"

// FormatCarbonReduction renders a CO2 saving, switching to tonnes at 1000 kg.
func FormatCarbonReduction(kg float64) string {
	if kg >= 1000 {
		return fmt.Sprintf("%.2f t", kg/1000)
	}
	return fmt.Sprintf("%.2f kg", kg)
}

// FormatQuantity renders delivered energy, switching to MWh at 1000 kWh.
func FormatQuantity(kwh float64) string {
	if kwh >= 1000 {
		return fmt.Sprintf("%.2f MWh", kwh/1000)
	}
	return fmt.Sprintf("%.2f kWh", kwh)
}
