// Package tui holds the terminal presentation helpers of the CLI: the
// startup banner and the markdown renderer used by invoke output.
package tui

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// PrintBanner outputs the HODOS banner in the brand gradient. Suppressed
// when stdout is not a terminal so piped output stays clean.
func PrintBanner(version string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return
	}
	p := termenv.ColorProfile()
	s1 := termenv.String(" _   _  ___  ____   ___  ____    _____  __    ___ ").Foreground(p.Color("#10439F"))
	s2 := termenv.String("| | | |/ _ \\|  _ \\ / _ \\/ ___|  |___ / / /_  / _ \\").Foreground(p.Color("#4a5fc1"))
	s3 := termenv.String("| |_| | | | | | | | | | \\___ \\    |_ \\| '_ \\| | | |").Foreground(p.Color("#874CCC"))
	s4 := termenv.String("|  _  | |_| | |_| | |_| |___) |  ___) | (_) | |_| |").Foreground(p.Color("#c285e0"))
	s5 := termenv.String("|_| |_|\\___/|____/ \\___/|____/  |____/ \\___/ \\___/").Foreground(p.Color("#FFB700"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Printf("  AI-Powered Law Firm Management Demo v%s\n\n", version)
}
