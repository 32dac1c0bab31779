package term

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"hexdrill/internal/radix"
	"hexdrill/internal/round"
)

// Moves back over the echoed answer so WRONG! lands beside the prompt.
const rewriteAnswer = "\x1b[1A\x1b[6C"

type styles struct {
	header lipgloss.Style
	tick   lipgloss.Style
	wrong  lipgloss.Style
	score  lipgloss.Style
	badge  lipgloss.Style
	dim    lipgloss.Style
}

// Console renders the game on a text stream. It implements round.UI.
type Console struct {
	out     io.Writer
	tty     bool
	s       styles
	printer *message.Printer
	title   cases.Caser
}

var _ round.UI = (*Console)(nil)

// IsTerminal reports whether w is attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// New returns a console writing to out. Colors are used only when color is
// set and out is a terminal.
func New(out io.Writer, color bool) *Console {
	c := &Console{
		out:     out,
		tty:     IsTerminal(out),
		printer: message.NewPrinter(language.English),
		title:   cases.Title(language.English),
	}

	r := lipgloss.NewRenderer(out)
	c.s = styles{
		header: r.NewStyle(),
		tick:   r.NewStyle(),
		wrong:  r.NewStyle(),
		score:  r.NewStyle(),
		badge:  r.NewStyle(),
		dim:    r.NewStyle(),
	}
	if color && c.tty {
		c.s.header = c.s.header.Bold(true).Foreground(lipgloss.Color("12"))
		c.s.tick = c.s.tick.Foreground(lipgloss.Color("11"))
		c.s.wrong = c.s.wrong.Foreground(lipgloss.Color("1"))
		c.s.score = c.s.score.Bold(true).Foreground(lipgloss.Color("10"))
		c.s.badge = c.s.badge.Foreground(lipgloss.Color("13"))
		c.s.dim = c.s.dim.Foreground(lipgloss.Color("8"))
	}
	return c
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) Announce(number int, pair radix.Pair) {
	c.printf("\n%s\n", c.s.header.Render(fmt.Sprintf("Round %d: Convert %s", number, pair)))
}

func (c *Console) Tick(remaining int) {
	if c.tty {
		c.printf("\rStarting in %s ", c.s.tick.Render(fmt.Sprint(remaining)))
		if remaining == 1 {
			c.printf("\n")
		}
		return
	}
	c.printf("%d...\n", remaining)
}

func (c *Console) Prompt(operand string) {
	c.printf("%4s: ", operand)
}

func (c *Console) Wrong() {
	if c.tty {
		c.printf("%s%s\r", rewriteAnswer, c.s.wrong.Render("WRONG!"))
		return
	}
	c.printf("WRONG!\n")
}

func (c *Console) RoundOver(res round.Result) {
	c.printf("Round %d score: %s\n", res.Number, c.s.score.Render(c.number(int(res.Score))))
}

// number formats n with English digit grouping.
func (c *Console) number(n int) string {
	return c.printer.Sprintf("%d", n)
}
