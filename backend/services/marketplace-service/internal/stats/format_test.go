package stats

import "testing"

func TestFormatCarbonReduction(t *testing.T) {
	cases := []struct {
		kg   float64
		want string
	}{
		{0, "0.00 kg"},
		{64.116, "64.12 kg"},
		{999.99, "999.99 kg"},
		{1000, "1.00 t"},
		{1234.5, "1.23 t"},
	}
	for _, tc := range cases {
		if got := FormatCarbonReduction(tc.kg); got != tc.want {
			t.Errorf("FormatCarbonReduction(%v) = %q, want %q", tc.kg, got, tc.want)
		}
	}
}

func TestFormatQuantity(t *testing.T) {
	cases := []struct {
		kwh  float64
		want string
	}{
		{0, "0.00 kWh"},
		{82.2, "82.20 kWh"},
		{999.99, "999.99 kWh"},
		{1000, "1.00 MWh"},
		{2500, "2.50 MWh"},
	}
	for _, tc := range cases {
		if got := FormatQuantity(tc.kwh); got != tc.want {
			t.Errorf("FormatQuantity(%v) = %q, want %q", tc.kwh, got, tc.want)
		}
	}
}
