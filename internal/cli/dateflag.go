package cli

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// dateValue is a pflag.Value holding a YYYY-MM-DD date.
type dateValue struct {
	t *time.Time
}

func newDateValue(def time.Time, target *time.Time) *dateValue {
	*target = def
	return &dateValue{t: target}
}

func (d *dateValue) String() string {
	if d.t == nil || d.t.IsZero() {
		return ""
	}
	return d.t.Format("2006-01-02")
}

func (d *dateValue) Set(s string) error {
	parsed, err := time.Parse("2006-01-02", s)
	if err != nil {
		return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	*d.t = parsed
	return nil
}

func (d *dateValue) Type() string {
	return "date"
}

var _ pflag.Value = (*dateValue)(nil)
