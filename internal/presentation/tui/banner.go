package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{`  _____     _        __        ___                  _ `, "#fbbf24"},
	{` |_   _| __(_)_ __   \ \      / (_)______ _ _ __ __| |`, "#f59e0b"},
	{`   | || '__| | '_ \   \ \ /\ / /| |_  / _` + "`" + ` | '__/ _` + "`" + ` |`, "#f97316"},
	{`   | || |  | | |_) |   \ V  V / | |/ / (_| | | | (_| |`, "#ef4444"},
	{`   |_||_|  |_| .__/     \_/\_/  |_/___\__,_|_|  \__,_|`, "#e11d48"},
	{`             |_|                                      `, "#be123c"},
}

// PrintBanner writes the tripwizard banner to w, colored when the terminal supports it.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()

	fmt.Fprintln(w)
	for _, l := range bannerLines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
