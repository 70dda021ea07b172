package model

// Weekday is one day of the fixed six-day teaching week.
type Weekday string

const (
	Monday    Weekday = "Segunda"
	Tuesday   Weekday = "Terça"
	Wednesday Weekday = "Quarta"
	Thursday  Weekday = "Quinta"
	Friday    Weekday = "Sexta"
	Saturday  Weekday = "Sábado"
)

// Weekdays returns the teaching-week domain in calendar order.
func Weekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}
}

// IsValid reports whether d is within the teaching-week domain.
func (d Weekday) IsValid() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday:
		return true
	}
	return false
}
