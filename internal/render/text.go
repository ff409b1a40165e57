package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/tarockbots/tarock"
)

// Static styles for the text view
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	TrumpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	RedCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	BlackCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)

	ContractStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)
)

type textWriter struct {
	color bool
	b     strings.Builder
}

func (t *textWriter) paint(style lipgloss.Style, s string) string {
	if !t.color {
		return s
	}
	return style.Render(s)
}

func (t *textWriter) card(c tarock.Card) string {
	switch {
	case c.IsTrump():
		return t.paint(TrumpStyle, c.String())
	case c.Suit().IsRed():
		return t.paint(RedCardStyle, c.String())
	case c.IsKnown():
		return t.paint(BlackCardStyle, c.String())
	default:
		return c.String()
	}
}

func (t *textWriter) collection(c tarock.Collection) string {
	parts := make([]string, 0, c.Cap()+1)
	for _, card := range c.Cards() {
		if card != tarock.NoCard {
			parts = append(parts, t.card(card))
		}
	}
	if len(parts) == 0 {
		parts = append(parts, t.paint(LabelStyle, "(none)"))
	}
	if empty := c.Cap() - c.Len(); empty > 0 && c.Len() > 0 {
		parts = append(parts, t.paint(LabelStyle, fmt.Sprintf("(+%d empty)", empty)))
	}
	return strings.Join(parts, " ")
}

func (t *textWriter) line(label, value string) {
	fmt.Fprintf(&t.b, "  %s %s\n", t.paint(LabelStyle, fmt.Sprintf("%-9s", label)), value)
}

// Text writes a human-readable view of st. Styles are applied when color is set.
func Text(w io.Writer, st tarock.GameState, color bool) error {
	t := &textWriter{color: color}

	for i, p := range st.Players {
		t.b.WriteString(t.paint(HeaderStyle, fmt.Sprintf(" Player %d ", i+1)))
		if p.Calls.IsDeclarer() {
			t.b.WriteString(" " + t.paint(ContractStyle, "contract "+p.Calls.Contract.String()))
		}
		t.b.WriteString("\n")

		t.line("hand", t.collection(p.Hand))
		t.line("tricks", t.collection(p.Tricks))
		if p.Calls.IsDeclarer() {
			king := "-"
			if p.Calls.CalledKing != tarock.NoCard {
				king = t.card(p.Calls.CalledKing)
			}
			teammate := "-"
			if p.Calls.Teammate > 0 {
				teammate = fmt.Sprint(p.Calls.Teammate)
			}
			t.line("king", king)
			t.line("partner", teammate)
			t.line("talon", p.Calls.TakenTalon.String())
		}
		if names := CallNames(p.Calls); len(names) > 0 {
			t.line("calls", strings.Join(names, ", "))
		}
	}

	t.b.WriteString(t.paint(HeaderStyle, " Table ") + "\n")
	t.line("trick", t.collection(st.Trick))
	t.line("talon", t.collection(st.Talon[0])+" | "+t.collection(st.Talon[1]))
	rule := "no"
	if st.SmallBeatsBig {
		rule = "yes"
	}
	t.line("small>big", rule)
	t.line("reserved", st.Reserved)

	_, err := io.WriteString(w, t.b.String())
	return err
}
