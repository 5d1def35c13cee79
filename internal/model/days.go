package model

// Day identifiers used as dataset keys and filter values.
const (
	Monday    = "monday"
	Tuesday   = "tuesday"
	Wednesday = "wednesday"
	Thursday  = "thursday"
	Friday    = "friday"
	Saturday  = "saturday"
	Sunday    = "sunday"
)

// FilterAll is the sentinel meaning "no restriction". Note it only relaxes the
// neighborhood side of a filter; day matching is always literal (a day set
// never contains "all", so filtering on it yields nothing).
const FilterAll = "all"

// WeekDays defines the canonical day order. Aggregation iterates the dataset
// in this order, so it also fixes which record becomes the representative when
// one location appears under several days.
var WeekDays = []string{
	Monday,
	Tuesday,
	Wednesday,
	Thursday,
	Friday,
	Saturday,
	Sunday,
}

// DayTables holds the per-day display lookups. Built once at startup and
// injected into the presenter and handlers instead of being read as globals.
type DayTables struct {
	Colors map[string]string // day -> color token (hex)
	Labels map[string]string // day -> localized display name
}

// DefaultDayTables returns the stock tables: a distinct pin color per weekday
// and Spanish day names for popups and the day picker.
func DefaultDayTables() DayTables {
	return DayTables{
		Colors: map[string]string{
			Monday:    "#e53935",
			Tuesday:   "#fb8c00",
			Wednesday: "#fdd835",
			Thursday:  "#43a047",
			Friday:    "#1e88e5",
			Saturday:  "#8e24aa",
			Sunday:    "#d81b60",
		},
		Labels: map[string]string{
			Monday:    "Lunes",
			Tuesday:   "Martes",
			Wednesday: "Miércoles",
			Thursday:  "Jueves",
			Friday:    "Viernes",
			Saturday:  "Sábado",
			Sunday:    "Domingo",
		},
	}
}

// IsWeekDay reports whether s is one of the seven known day identifiers.
func IsWeekDay(s string) bool {
	for _, d := range WeekDays {
		if d == s {
			return true
		}
	}
	return false
}
