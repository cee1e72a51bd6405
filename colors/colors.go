// Package colors provides ANSI terminal colors for diagnostic output
package colors

import (
	"fmt"
	"io"
	"os"
	"strings"
)

type COLOR string

const (
	RESET  COLOR = "\033[0m"
	RED    COLOR = "\033[31m"
	GREEN  COLOR = "\033[32m"
	YELLOW COLOR = "\033[33m"
	BLUE   COLOR = "\033[34m"
	PURPLE COLOR = "\033[35m"
	CYAN   COLOR = "\033[36m"
	GREY   COLOR = "\033[90m"

	BOLD_RED    COLOR = "\033[1;31m"
	BOLD_GREEN  COLOR = "\033[1;32m"
	BOLD_YELLOW COLOR = "\033[1;33m"
	BOLD_BLUE   COLOR = "\033[1;34m"
	BOLD_PURPLE COLOR = "\033[1;35m"
	BOLD_CYAN   COLOR = "\033[1;36m"
)

// Print writes colored text to stderr
func (c COLOR) Print(a ...interface{}) {
	c.Fprint(os.Stderr, a...)
}

// Printf writes colored formatted text to stderr
func (c COLOR) Printf(format string, a ...interface{}) {
	c.Fprintf(os.Stderr, format, a...)
}

// Println writes colored text to stderr, followed by a newline
func (c COLOR) Println(a ...interface{}) {
	c.Fprintln(os.Stderr, a...)
}

// Fprint writes colored text to w
func (c COLOR) Fprint(w io.Writer, a ...interface{}) {
	fmt.Fprint(w, string(c))
	fmt.Fprint(w, a...)
	fmt.Fprint(w, string(RESET))
}

// Fprintf writes colored formatted text to w
func (c COLOR) Fprintf(w io.Writer, format string, a ...interface{}) {
	fmt.Fprint(w, string(c))
	fmt.Fprintf(w, format, a...)
	fmt.Fprint(w, string(RESET))
}

// Fprintln writes colored text to w, followed by a newline
func (c COLOR) Fprintln(w io.Writer, a ...interface{}) {
	fmt.Fprint(w, string(c))
	fmt.Fprint(w, a...)
	fmt.Fprint(w, string(RESET))
	fmt.Fprintln(w)
}

// Sprint returns the text wrapped in this color's escape codes
func (c COLOR) Sprint(a ...interface{}) string {
	return string(c) + fmt.Sprint(a...) + string(RESET)
}

// ansiToCSS maps each escape code to an inline CSS style
var ansiToCSS = map[string]string{
	string(RED):         "color:#f85149",
	string(GREEN):       "color:#3fb950",
	string(YELLOW):      "color:#d29922",
	string(BLUE):        "color:#58a6ff",
	string(PURPLE):      "color:#bc8cff",
	string(CYAN):        "color:#39c5cf",
	string(GREY):        "color:#8b949e",
	string(BOLD_RED):    "color:#f85149;font-weight:bold",
	string(BOLD_GREEN):  "color:#3fb950;font-weight:bold",
	string(BOLD_YELLOW): "color:#d29922;font-weight:bold",
	string(BOLD_BLUE):   "color:#58a6ff;font-weight:bold",
	string(BOLD_PURPLE): "color:#bc8cff;font-weight:bold",
	string(BOLD_CYAN):   "color:#39c5cf;font-weight:bold",
}

// ConvertANSIToHTML converts ANSI-colored text into HTML spans, for
// rendering diagnostics in a browser.
func ConvertANSIToHTML(ansi string) string {
	var out strings.Builder
	open := false

	escaped := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

	i := 0
	for i < len(ansi) {
		if ansi[i] == '\033' {
			end := strings.IndexByte(ansi[i:], 'm')
			if end < 0 {
				break
			}
			code := ansi[i : i+end+1]
			if open {
				out.WriteString("</span>")
				open = false
			}
			if css, ok := ansiToCSS[code]; ok {
				out.WriteString("<span style=\"" + css + "\">")
				open = true
			}
			i += end + 1
			continue
		}
		next := strings.IndexByte(ansi[i:], '\033')
		if next < 0 {
			next = len(ansi) - i
		}
		out.WriteString(escaped.Replace(ansi[i : i+next]))
		i += next
	}
	if open {
		out.WriteString("</span>")
	}
	return out.String()
}
