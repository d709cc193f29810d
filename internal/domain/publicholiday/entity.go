package publicholiday

import "time"

type Type string

const (
	TypePublic    Type = "public"
	TypeReligious Type = "religious"
)

// Source records where a cached year came from.
type Source string

const (
	SourceAPI      Source = "api"
	SourceFallback Source = "fallback"
)

// PublicHoliday is a national or religious holiday of the configured country.
type PublicHoliday struct {
	Date time.Time
	Name string
	Type Type
}
