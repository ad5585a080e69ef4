package console

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

// Colours of the marks, matching the window palette.
const (
	ColorX = "#8B2500"
	ColorO = "#EEC900"
)

// Announcer prints round results to a terminal.
type Announcer struct {
	output *termenv.Output
}

// New returns an Announcer writing to w. Colours are dropped when w is not a terminal.
func New(w io.Writer, opts ...termenv.OutputOption) *Announcer {
	return &Announcer{output: termenv.NewOutput(w, opts...)}
}

func (that *Announcer) Win(player entity.Mark) {
	color := ColorX
	if player == entity.O {
		color = ColorO
	}

	msg := that.output.String(fmt.Sprintf("%s wins!", player)).
		Foreground(that.output.Color(color)).
		Bold()

	that.println(msg.String())
}

func (that *Announcer) Tie() {
	that.println(that.output.String("It's a tie!").Bold().String())
}

func (that *Announcer) Restarting() {
	that.println(that.output.String("Restarting...").Faint().String())
}

func (that *Announcer) println(s string) {
	_, _ = fmt.Fprintln(that.output, s)
}
