package main

import (
	"fmt"
	"io"

	"mizlex/internal/observ"
)

func printTimings(out io.Writer, enabled bool, timer *observ.Timer) {
	if !enabled || out == nil || timer == nil {
		return
	}
	if _, err := fmt.Fprint(out, timer.Summary()); err != nil {
		panic(err)
	}
}
