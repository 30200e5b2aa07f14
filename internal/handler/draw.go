package handler

import (
	"fmt"
	"math"
	"strings"

	"wordfall/internal/domain"
	"wordfall/internal/game"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

var (
	styleDefault = tcell.StyleDefault
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleBubble  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	styleWrong   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorMaroon)
	styleAnswer  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	stylePanel   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkSlateGray)
	styleWin     = tcell.StyleDefault.Foreground(tcell.ColorLime).Background(tcell.ColorDarkSlateGray).Bold(true)
	styleCursor  = tcell.StyleDefault.Reverse(true)
	styleChosen  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
)

func (t *Terminal) draw() {
	t.screen.Clear()
	w, h := t.screen.Size()

	t.drawHUD(w)
	if t.bubble != nil {
		t.drawBubble(*t.bubble, h)
	}
	t.drawInput(h)

	switch {
	case t.panels[game.PanelExitConfirm]:
		t.drawBox(w, h, stylePanel, []string{
			"Quit to menu?",
			"",
			"y / Enter: quit    n / Esc: keep playing",
		})
	case t.panels[game.PanelMenu]:
		t.drawMenu(w, h)
	case t.panels[game.PanelGameOver]:
		t.drawGameOver(w, h)
	case t.panels[game.PanelContinue]:
		msg := "Missed! Press Enter to continue"
		t.drawText((w-runewidth.StringWidth(msg))/2, h-3, msg, styleHUD)
	}

	t.screen.Show()
}

func (t *Terminal) drawHUD(w int) {
	hud := fmt.Sprintf(" Score: %d / %d", t.score, t.target)
	if t.mode != "" {
		hud += "   Mode: " + t.mode
	}
	t.drawText(0, 0, hud, styleHUD)

	help := "Esc: skip  Backspace on empty: quit "
	t.drawText(w-runewidth.StringWidth(help), 0, help, styleDefault)
}

// drawBubble converts logical pixels to cells; rows above the field are clipped
func (t *Terminal) drawBubble(b domain.Bubble, h int) {
	style := styleBubble
	if b.Revealed {
		style = styleWrong
	}

	col := int(b.X / cellWidth)
	row := 1 + int(math.Floor(b.Y/cellHeight))

	for i, line := range strings.Split(b.Label(), "\n") {
		y := row + i
		if y < 1 || y >= h-1 {
			continue
		}
		lineStyle := style
		if i > 0 {
			lineStyle = styleAnswer
		}
		text := " " + line + " "
		t.drawText(col-runewidth.StringWidth(text)/2, y, text, lineStyle)
	}
}

func (t *Terminal) drawInput(h int) {
	x := t.drawText(0, h-1, "> ", styleHUD)
	x = t.drawText(x, h-1, string(t.input), styleDefault)
	t.screen.SetContent(x, h-1, ' ', nil, styleCursor)
}

func (t *Terminal) drawMenu(w, h int) {
	lines := []string{
		"W O R D F A L L",
		"",
		"Type the English word before the bubble lands.",
		"",
	}
	if len(t.banks) > 0 {
		b := t.banks[t.bankIdx]
		lines = append(lines, fmt.Sprintf("Word bank: %s (%d words)   [Tab] change", b.Name, b.Len()))
	} else {
		lines = append(lines, "No word banks available")
	}
	lines = append(lines, "", "")
	lines = append(lines, "Enter: start   Esc: quit")

	top := t.drawBox(w, h, stylePanel, lines)

	// Difficulty choices on the blank row above the hint
	var parts []string
	for i, d := range domain.Difficulties() {
		parts = append(parts, fmt.Sprintf(" %d %s ", i+1, d.Name))
	}
	row := top + len(lines) - 2
	x := (w - runewidth.StringWidth(strings.Join(parts, "  "))) / 2
	for i, p := range parts {
		style := stylePanel
		if i == t.difficulty {
			style = styleChosen
		}
		x = t.drawText(x, row, p, style) + 2
	}
}

func (t *Terminal) drawGameOver(w, h int) {
	style := stylePanel
	if t.result.Won {
		style = styleWin
	}
	t.drawBox(w, h, style, []string{
		t.result.Title,
		"",
		fmt.Sprintf("Final score: %d", t.result.Score),
		fmt.Sprintf("Matched: %d   Missed: %d", t.result.Matched, t.result.Missed),
		"",
		"Enter: menu   Esc: quit",
	})
}

// drawBox draws centred lines on a filled box and returns the first line's row
func (t *Terminal) drawBox(w, h int, style tcell.Style, lines []string) int {
	width := 0
	for _, l := range lines {
		if lw := runewidth.StringWidth(l); lw > width {
			width = lw
		}
	}
	width += 4

	left := (w - width) / 2
	top := (h - len(lines)) / 2
	for y := top - 1; y <= top+len(lines); y++ {
		for x := left; x < left+width; x++ {
			t.screen.SetContent(x, y, ' ', nil, style)
		}
	}
	for i, l := range lines {
		t.drawText(left+(width-runewidth.StringWidth(l))/2, top+i, l, style)
	}
	return top
}

// drawText writes s starting at x and returns the column after it
func (t *Terminal) drawText(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	return x
}
