package proximity

import (
	"fmt"
	"math"
	"sort"
	"time"

	"chargeshare/backend/services/marketplace-service/internal/models"
)

// Listing geometry. One degree of latitude is roughly 111 km, so the 150-800 m
// ring around the caller is 0.0015-0.008 in degree space.
const (
	metersPerDegree = 111000.0
	minRingDeg      = 0.0015
	ringSpanDeg     = 0.0065
)

type owner struct {
	id   int64
	name string
}

var owners = []owner{
	{101, "Sam Porter"},
	{102, "Maria Keller"},
	{103, "John Reyes"},
	{104, "Carl Jensen"},
	{105, "Lucy Tan"},
	{106, "Mike Orlov"},
	{107, "Emma Walsh"},
	{108, "Tom Okafor"},
}

var locationPrefixes = []string{
	"Sunrise Court",
	"Harmony Gardens",
	"Greenfield Plaza",
	"Golden Meadows",
	"Riverside Towers",
	"Maple Heights",
	"Polaris Residence",
	"Grandview Estate",
	"Lakeshore Villas",
	"Cedar Park",
}

var parkingAreas = []string{
	"underground garage A",
	"underground garage B",
	"underground garage C",
	"surface lot",
	"parking deck",
	"street-side bay",
}

var descriptions = []string{
	"Brand-new unit, stable output, reservations welcome.",
	"Private charger shared during the day, cheaper overnight.",
	"High-power fast charging, 80% in about 30 minutes.",
	"Slow charger, ideal for overnight top-ups at a low rate.",
	"Available around the clock, well maintained, wide bay.",
	"Recently installed, discount for first-time visitors.",
	"Easy to find, quick turnaround, friendly host.",
	"Free all weekend, weekdays after 6 pm.",
}

// Generate synthesizes 12-15 charger listings on a ring around the given
// coordinate and returns them sorted by distance, nearest first. Output is a
// pure function of the coordinate: the same input produces the same listings,
// attribute for attribute. The caller owns the returned slice; nothing is
// retained between calls.
func Generate(lat, lng float64) []models.Charger {
	count := 12 + int(unit(int64(lat*1000))*4)

	chargers := make([]models.Charger, 0, count)
	for i := 0; i < count; i++ {
		seed := int64(i + 1)

		angle := float64(seed)/float64(count)*2*math.Pi + unit(seed)*0.5
		ringDeg := minRingDeg + unit(seed+100)*ringSpanDeg
		latOffset := math.Cos(angle) * ringDeg
		lngOffset := math.Sin(angle) * ringDeg
		distanceM := int(math.Round(ringDeg * metersPerDegree))

		fast := unit(seed+200) > 0.4
		chargerType := models.ChargerTypeSlow
		powerKW := 3.5
		price := 0.6 + unit(seed+500)*0.4
		if fast {
			chargerType = models.ChargerTypeFast
			powerKW = 7 + math.Floor(unit(seed+400)*7)
			price = 1.0 + unit(seed+500)*0.6
		}

		host := owners[int(unit(seed+300)*float64(len(owners)))]
		site := pick(locationPrefixes, seed+600) + ", " + pick(parkingAreas, seed+700)

		chargers = append(chargers, models.Charger{
			ID:          fmt.Sprintf("c%d", i+1),
			OwnerID:     host.id,
			OwnerName:   host.name,
			Name:        site,
			Type:        chargerType,
			PowerKW:     powerKW,
			PricePerKWh: math.Round(price*100) / 100,
			Status:      status(seed),
			Address:     site,
			Location: models.Location{
				Lat: lat + latOffset,
				Lng: lng + lngOffset,
			},
			Description: fmt.Sprintf("About %d m away. %s", distanceM, pick(descriptions, seed+800)),
			Rating:      math.Round((3.5+unit(seed+1000)*1.5)*10) / 10,
			OrderCount:  5 + int(unit(seed+1100)*95),
			DistanceM:   distanceM,
			CreatedAt:   time.Date(2025, time.January, 1+int(unit(seed+1200)*28), 0, 0, 0, 0, time.UTC),
		})
	}

	sort.SliceStable(chargers, func(i, j int) bool {
		return distance(chargers[i], lat, lng) < distance(chargers[j], lat, lng)
	})
	return chargers
}

// status draws availability with roughly 70% available, the rest split between
// in-use and offline.
func status(seed int64) models.ChargerStatus {
	if unit(seed+900) > 0.3 {
		return models.ChargerStatusAvailable
	}
	if unit(seed+910) > 0.5 {
		return models.ChargerStatusInUse
	}
	return models.ChargerStatusOffline
}

// distance is flat-plane degree-space distance, good enough at a few hundred
// metres.
func distance(c models.Charger, lat, lng float64) float64 {
	return math.Hypot(c.Location.Lat-lat, c.Location.Lng-lng)
}

// Filter applies search filters to a listing set, preserving order.
func Filter(chargers []models.Charger, filters models.SearchFilters) []models.Charger {
	filtered := make([]models.Charger, 0, len(chargers))
	for _, c := range chargers {
		if filters.Type != "" && c.Type != filters.Type {
			continue
		}
		if filters.MinPrice > 0 && c.PricePerKWh < filters.MinPrice {
			continue
		}
		if filters.MaxPrice > 0 && c.PricePerKWh > filters.MaxPrice {
			continue
		}
		if filters.OnlyAvailable && c.Status != models.ChargerStatusAvailable {
			continue
		}
		filtered = append(filtered, c)
	}
	return filtered
}
