package output

import (
	"fmt"
	"time"

	"github.com/fatih/color"
)

// Summary describes one completed pass for reporting.
type Summary struct {
	Mode    string // "prepare" or "collect"
	Root    string
	Dest    string // empty for prepare
	Scanned int
	Touched int // files stamped (prepare) or copied (collect)
	Elapsed time.Duration
}

// PrintSummary prints a nicely formatted run report with colors
func PrintSummary(s Summary) {
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)

	bold.Println("reduce-tree - Run Report")
	bold.Println("========================")
	fmt.Printf("Mode: %s\n", s.Mode)
	fmt.Printf("Source: %s\n", s.Root)
	if s.Dest != "" {
		fmt.Printf("Destination: %s\n", s.Dest)
	}
	fmt.Printf("Scanned: %d source files\n", s.Scanned)

	switch s.Mode {
	case "prepare":
		green.Printf("Stamped: %d files\n", s.Touched)
	case "collect":
		if s.Touched == 0 {
			yellow.Println("Copied: 0 files (did the build run between prepare and collect?)")
		} else {
			green.Printf("Copied: %d files\n", s.Touched)
		}
	}

	fmt.Printf("Elapsed: %s\n", s.Elapsed.Round(time.Millisecond))
}
