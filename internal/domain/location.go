package domain

import (
	"fmt"
	"time"

	// Embedded zoneinfo so Europe/Berlin resolves on hosts without /usr/share/zoneinfo.
	_ "time/tzdata"
)

// BerlinZone is the IANA name of the zone the service converts into.
const BerlinZone = "Europe/Berlin"

// LoadBerlin resolves the Europe/Berlin location.
func LoadBerlin() (*time.Location, error) {
	loc, err := time.LoadLocation(BerlinZone)
	if err != nil {
		return nil, fmt.Errorf("load location %s: %w", BerlinZone, err)
	}
	return loc, nil
}
