package drill

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	dr "github.com/abhisek/kuku/internal/drill"
	"github.com/abhisek/kuku/internal/problemgen"
	"github.com/abhisek/kuku/internal/ui/components"
	"github.com/abhisek/kuku/internal/ui/layout"
	"github.com/abhisek/kuku/internal/ui/theme"
)

const tip = "毎日練習して、九九をマスターしよう！"

func (s *DrillScreen) View(width, height int) string {
	snap := s.ctrl.Snapshot()
	cw := components.ContentWidth(width)
	compact := layout.IsCompactHeight(height)

	sections := []string{
		renderSettings(snap.Settings),
		"",
		renderBadges(snap),
		renderProblemCard(snap, cw),
		components.NewProgressBar("", snap.ProgressPercent, true, cw).View(),
		"",
		renderButtons(snap),
	}

	if !compact {
		sections = append(sections, "", s.renderSequence(snap))
	}
	if s.showHelp {
		sections = append(sections, "", s.help.View(s.keys.forMode(snap.Settings.Mode)))
	} else if !compact {
		sections = append(sections, "", theme.Hint.Render(tip))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderSettings draws the settings panel. The speed row only exists in
// auto mode.
func renderSettings(st dr.Settings) string {
	segments := make([]string, 0, problemgen.MaxSegment)
	for n := problemgen.MinSegment; n <= problemgen.MaxSegment; n++ {
		segments = append(segments, strconv.Itoa(n))
	}

	orders := make([]string, len(problemgen.Orders))
	selectedOrder := 0
	for i, o := range problemgen.Orders {
		orders[i] = o.Label()
		if o == st.Order {
			selectedOrder = i
		}
	}

	modes := []string{dr.ModeManual.Label(), dr.ModeAuto.Label()}
	selectedMode := 0
	if st.Mode == dr.ModeAuto {
		selectedMode = 1
	}

	rows := []string{
		components.NewChoice("段  ", segments, st.Segment-problemgen.MinSegment).View(),
		components.NewChoice("順番", orders, selectedOrder).View(),
		components.NewChoice("方式", modes, selectedMode).View(),
	}

	if st.Mode == dr.ModeAuto {
		speeds := make([]string, len(dr.Speeds))
		selectedSpeed := 0
		for i, sp := range dr.Speeds {
			speeds[i] = sp.Label()
			if sp == st.Speed {
				selectedSpeed = i
			}
		}
		rows = append(rows, components.NewChoice("速さ", speeds, selectedSpeed).View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderBadges(snap dr.Snapshot) string {
	segment := theme.Badge.Render(fmt.Sprintf("%dの段", snap.Settings.Segment))
	position := theme.Badge.Render(fmt.Sprintf("%d/%d", snap.Index+1, snap.Total))
	return segment + "  " + position
}

func renderProblemCard(snap dr.Snapshot, cw int) string {
	problem := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(snap.Problem.String())

	answer := theme.Hint.Render("= ?")
	border := theme.Border
	if snap.AnswerVisible {
		answer = theme.Answer.Render("= " + strconv.Itoa(snap.Answer))
		border = theme.Accent
	}

	return components.HighlightCard(problem+"  "+answer, cw, border)
}

// renderButtons shows the action the main keys perform right now.
func renderButtons(snap dr.Snapshot) string {
	var main components.Button
	if snap.Settings.Mode == dr.ModeAuto {
		label := "開始"
		if snap.Playing {
			label = "一時停止"
		}
		main = components.NewButton("Space", label, true)
	} else {
		label := "答えを見る"
		if snap.AnswerVisible {
			label = "次へ"
		}
		main = components.NewButton("Enter", label, true)
	}
	reset := components.NewButton("r", "リセット", false)

	return lipgloss.JoinHorizontal(lipgloss.Center, main.View(), "  ", reset.View())
}

// renderSequence lists the set in drill order with the current problem
// highlighted.
func (s *DrillScreen) renderSequence(snap dr.Snapshot) string {
	problems := s.ctrl.Problems()
	parts := make([]string, len(problems))
	for i, p := range problems {
		cell := fmt.Sprintf(" %d ", p.Multiplier)
		if i == snap.Index {
			parts[i] = theme.Current.Render(cell)
		} else {
			parts[i] = theme.Hint.Render(cell)
		}
	}
	return strings.Join(parts, "")
}
