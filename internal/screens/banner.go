package screens

import (
	"charm.land/lipgloss/v2"

	"github.com/koundinyapidaparthy2/CADMV/internal/ui/theme"
)

const bannerArt = `
 ██████╗ ███╗   ███╗██╗   ██╗    ██████╗ ██████╗ ███████╗██████╗
 ██╔══██╗████╗ ████║██║   ██║    ██╔══██╗██╔══██╗██╔════╝██╔══██╗
 ██║  ██║██╔████╔██║██║   ██║    ██████╔╝██████╔╝█████╗  ██████╔╝
 ██║  ██║██║╚██╔╝██║╚██╗ ██╔╝    ██╔═══╝ ██╔══██╗██╔══╝  ██╔═══╝
 ██████╔╝██║ ╚═╝ ██║ ╚████╔╝     ██║     ██║  ██║███████╗██║
 ╚═════╝ ╚═╝     ╚═╝  ╚═══╝      ╚═╝     ╚═╝  ╚═╝╚══════╝╚═╝`

const bannerCompact = "D M V   P R E P"

// RenderBanner returns the DMV PREP banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 68 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 68 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
