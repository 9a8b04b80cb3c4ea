package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"go-jump/internal/game"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	scoreStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	blockStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	heroStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	redStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	menuStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(0, 2)
)

const (
	glyphBlock   = "█"
	glyphHero    = "@"
	glyphJumping = "^"
	glyphFinish  = "|"
)

// viewport returns the first road column to draw and how many columns fit.
func viewport(pos, length, width int) (int, int) {
	cols := width - 2
	if cols < 10 {
		cols = 10
	}
	total := length + 2 // one column past the end shows the finish line
	if cols > total {
		cols = total
	}
	offset := pos - cols/4
	if offset > total-cols {
		offset = total - cols
	}
	if offset < 0 {
		offset = 0
	}
	return offset, cols
}

// RenderRoad draws the player row and the ground row.
func (m *Model) RenderRoad() string {
	pos := m.player.Position()
	offset, cols := viewport(pos, m.length, m.width)
	ground := m.scene.Columns()

	var hero, floor strings.Builder
	for x := offset; x < offset+cols; x++ {
		switch {
		case x == pos && m.player.Jumping():
			hero.WriteString(heroStyle.Render(glyphJumping))
		case x == pos:
			hero.WriteString(heroStyle.Render(glyphHero))
		default:
			hero.WriteByte(' ')
		}

		switch {
		case ground[x]:
			floor.WriteString(blockStyle.Render(glyphBlock))
		case x == m.length:
			floor.WriteString(scoreStyle.Render(glyphFinish))
		default:
			floor.WriteByte(' ')
		}
	}
	return hero.String() + "\n" + floor.String()
}

func (m *Model) renderMenu() string {
	lines := []string{
		titleStyle.Render("GO-JUMP"),
		"",
		"Cross the road without landing in a gap.",
		"Press enter to start.",
	}
	if m.player.Falling() {
		lines = append(lines, redStyle.Render("You fell! Try again."))
	}
	if m.scores != nil {
		if best := m.scores.Best(m.length); best != nil {
			lines = append(lines, scoreStyle.Render(fmt.Sprintf("Best: %d/%d", best.Steps, m.length)))
		}
	}
	return menuStyle.Render(strings.Join(lines, "\n"))
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	label := m.hud.StepLabel
	if label == "" {
		label = game.StepLabel(0)
	}
	status := titleStyle.Render("GO-JUMP") + "  " + scoreStyle.Render(label)
	if m.music != nil && m.music.Playing() {
		status += "  ♪"
	}

	var b strings.Builder
	b.WriteString(status)
	b.WriteString("\n\n")
	b.WriteString(m.RenderRoad())
	b.WriteString("\n\n")
	if m.hud.MenuVisible {
		b.WriteString(m.renderMenu())
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
