package utils

import (
	"log"
	"time"
)

// GetUKTimeLocation returns the Europe/London location used for all
// regulatory timestamps.
func GetUKTimeLocation() *time.Location {
	loc, err := time.LoadLocation("Europe/London")
	if err != nil {
		log.Fatal("Failed to load location", err)
	}
	return loc
}

// TimeNowUK returns the current time in the UK regulatory timezone.
func TimeNowUK() time.Time {
	return time.Now().In(GetUKTimeLocation())
}
