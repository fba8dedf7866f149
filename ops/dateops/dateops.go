// Package dateops provides date and clock ops. Formatting uses ANSI C
// strftime directives via gitlab.com/variadico/lctime. The clock epoch is
// captured per Register call, so each interpreter keeps its own.
package dateops

import (
	"fmt"
	"time"

	"gitlab.com/variadico/lctime"

	"github.com/wofl/woflang"
)

// Register adds the date ops to an interpreter.
func Register(it *woflang.Interp) {
	start := time.Now()
	it.Register("now", func(it *woflang.Interp) error {
		it.Push(woflang.MakeDouble(float64(time.Now().UnixNano()) / 1e9))
		return nil
	})
	it.Register("clock", func(it *woflang.Interp) error {
		it.Push(woflang.MakeDouble(time.Since(start).Seconds()))
		return nil
	})
	it.Register("date.format", dateFormat)
}

// dateFormat pops a strftime format string and pushes the current time
// rendered with it: "%Y-%m-%d %H:%M:%S" date.format.
func dateFormat(it *woflang.Interp) error {
	format, err := it.PopString()
	if err != nil {
		return fmt.Errorf("date.format: %w", err)
	}
	it.Push(woflang.MakeString(lctime.Strftime(format, time.Now())))
	return nil
}
