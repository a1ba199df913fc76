package playerbar

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/hush/internal/presenter"
	"github.com/llehouerou/hush/internal/ui/styles"
)

const (
	filledBlock = "━"
	emptyBlock  = "─"
)

// RenderProgressBar renders "1:23 ━━━───── 4:56" within width cells. When
// too narrow for a bar, only the times are shown.
func RenderProgressBar(position, duration time.Duration, width int) string {
	posStr := presenter.FormatTime(position)
	durStr := presenter.FormatTime(duration)

	fixedWidth := lipgloss.Width(posStr) + lipgloss.Width(durStr) + 2
	barWidth := width - fixedWidth
	if barWidth < 3 || duration <= 0 {
		return posStr + " / " + durStr
	}

	ratio := float64(position) / float64(duration)
	filled := min(max(int(float64(barWidth)*ratio), 0), barWidth)

	t := styles.T()
	bar := styles.Gradient(strings.Repeat(filledBlock, filled), t.Primary, t.Secondary) +
		t.S().Subtle.Render(strings.Repeat(emptyBlock, barWidth-filled))
	return posStr + " " + bar + " " + durStr
}
