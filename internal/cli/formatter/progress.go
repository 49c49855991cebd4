package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a progress bar like [████░░░░] 45%.
// The bar is colored based on percentage: green >66%, yellow 33-66%, red <33%.
func RenderProgress(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(pct * float64(width))
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}

// RenderCreditProgress shows scheduled credits against the graduation
// target, e.g. "[██░░] 45%  54/120".
func RenderCreditProgress(credits, required, width int) string {
	if required <= 0 {
		return ""
	}
	pct := float64(credits) / float64(required)
	return fmt.Sprintf("%s  %s", RenderProgress(pct, width), Dim(fmt.Sprintf("%d/%d", credits, required)))
}
