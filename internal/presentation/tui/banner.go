package tui

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
)

// PrintBanner outputs a professional ASCII art banner for Switchboard.
// The banner goes to stderr so it never interleaves with protocol
// traffic on stdout.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	// Using a subtle gradient-like color scheme (Indigo/Violet)
	s1 := termenv.String("                _  _          _      _                          _ ").Foreground(p.Color("#818cf8"))
	s2 := termenv.String(" ___ __      __(_)| |_   ___ | |__  | |__    ___    __ _  _ __   __| |").Foreground(p.Color("#a78bfa"))
	s3 := termenv.String("/ __|\\ \\ /\\ / /| || __| / __|| '_ \\ | '_ \\  / _ \\  / _` || '__| / _` |").Foreground(p.Color("#c084fc"))
	s4 := termenv.String("\\__ \\ \\ V  V / | || |_ | (__ | | | || |_) || (_) || (_| || |   | (_| |").Foreground(p.Color("#e879f9"))
	s5 := termenv.String("|___/  \\_/\\_/  |_| \\__| \\___||_| |_||_.__/  \\___/  \\__,_||_|    \\__,_|").Foreground(p.Color("#f472b6"))
	tag := termenv.String(fmt.Sprintf("  tool dispatch over MCP  v%s", version)).Foreground(p.Color("#fb7185"))

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, s1)
	fmt.Fprintln(os.Stderr, s2)
	fmt.Fprintln(os.Stderr, s3)
	fmt.Fprintln(os.Stderr, s4)
	fmt.Fprintln(os.Stderr, s5)
	fmt.Fprintln(os.Stderr, tag)
	fmt.Fprintln(os.Stderr)
}
