package fechas

import (
	"database/sql/driver"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Layout is the wire format for dates ("YYYY-MM-DD").
const Layout = "2006-01-02"

// Fecha is a calendar date without time-of-day. It marshals as "YYYY-MM-DD"
// on the wire and stores as a date column in the database.
type Fecha struct {
	time.Time
}

func Nueva(year int, month time.Month, day int) Fecha {
	return Fecha{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func Desde(t time.Time) Fecha {
	return Nueva(t.Year(), t.Month(), t.Day())
}

func Parse(s string) (Fecha, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Fecha{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Fecha{t}, nil
}

func (f Fecha) String() string {
	return f.Format(Layout)
}

func (f Fecha) MarshalJSON() ([]byte, error) {
	if f.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + f.Format(Layout) + `"`), nil
}

func (f *Fecha) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		*f = Fecha{}
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

func (f Fecha) Value() (driver.Value, error) {
	if f.IsZero() {
		return nil, nil
	}
	return f.Format(Layout), nil
}

func (f *Fecha) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*f = Fecha{}
		return nil
	case time.Time:
		*f = Desde(v)
		return nil
	case string:
		return f.scanString(v)
	case []byte:
		return f.scanString(string(v))
	}
	return fmt.Errorf("cannot scan %T into Fecha", value)
}

func (f *Fecha) scanString(s string) error {
	// SQLite may hand back the bare date or a full timestamp.
	if len(s) > len(Layout) {
		s = s[:len(Layout)]
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

func (Fecha) GormDataType() string {
	return "date"
}

// Antes reports whether f falls strictly before other.
func (f Fecha) Antes(other Fecha) bool {
	return f.Time.Before(other.Time)
}

func (f Fecha) Igual(other Fecha) bool {
	return f.Year() == other.Year() && f.Month() == other.Month() && f.Day() == other.Day()
}

func (f Fecha) EsFinDeSemana() bool {
	wd := f.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// Siguiente returns the following calendar date.
func (f Fecha) Siguiente() Fecha {
	return Fecha{f.AddDate(0, 0, 1)}
}

// RangoInclusivo returns every calendar date between a and b inclusive,
// ascending, regardless of argument order.
func RangoInclusivo(a, b Fecha) []Fecha {
	if b.Antes(a) {
		a, b = b, a
	}
	var fechas []Fecha
	for d := a; !b.Antes(d); d = d.Siguiente() {
		fechas = append(fechas, d)
	}
	return fechas
}

// DiasDelMes returns every date of the given month, first to last.
func DiasDelMes(year int, month time.Month) []Fecha {
	primero := Nueva(year, month, 1)
	ultimo := Fecha{primero.AddDate(0, 1, -1)}
	return RangoInclusivo(primero, ultimo)
}

var patronDiaMes = regexp.MustCompile(`^(0[1-9]|[12][0-9]|3[01])/(0[1-9]|1[0-2])$`)

// DiaMes is a recurring day/month pair ("DD/MM"), independent of year.
type DiaMes struct {
	Dia int
	Mes int
}

// ParseDiaMes applies the strict DD/MM pattern: two-digit day 01-31 and
// two-digit month 01-12. It does not check day-count-per-month; see
// Materializable for that.
func ParseDiaMes(s string) (DiaMes, error) {
	if !patronDiaMes.MatchString(s) {
		return DiaMes{}, fmt.Errorf("formato de fecha debe ser DD/MM: %q", s)
	}
	partes := strings.SplitN(s, "/", 2)
	dia, _ := strconv.Atoi(partes[0])
	mes, _ := strconv.Atoi(partes[1])
	return DiaMes{Dia: dia, Mes: mes}, nil
}

func (dm DiaMes) String() string {
	return fmt.Sprintf("%02d/%02d", dm.Dia, dm.Mes)
}

// Clave is an integer sort key ordering by month then day.
func (dm DiaMes) Clave() int {
	return dm.Mes*100 + dm.Dia
}

// Coincide reports whether the pair matches the date's day and month,
// whatever the year.
func (dm DiaMes) Coincide(f Fecha) bool {
	return f.Day() == dm.Dia && int(f.Month()) == dm.Mes
}

// Materializable reports whether the pair exists as a real date in the given
// year (30/02 never does, 29/02 only on leap years).
func (dm DiaMes) Materializable(year int) bool {
	d := time.Date(year, time.Month(dm.Mes), dm.Dia, 0, 0, 0, 0, time.UTC)
	return d.Day() == dm.Dia && int(d.Month()) == dm.Mes
}

// EnAnio materializes the pair in the given year. Only valid when
// Materializable reports true.
func (dm DiaMes) EnAnio(year int) Fecha {
	return Nueva(year, time.Month(dm.Mes), dm.Dia)
}
