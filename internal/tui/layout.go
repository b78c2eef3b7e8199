package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

const (
	maxContentW = 100
	maxModalW   = 72
)

// normalizePane forces s to exactly width columns (ANSI-aware) and height
// lines. Split-pane rendering via lipgloss.JoinHorizontal is only stable when
// both panes are rectangular.
func normalizePane(s string, width, height int) string {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	lines := strings.Split(s, "\n")
	if height > 0 {
		if len(lines) > height {
			lines = lines[:height]
		}
		for len(lines) < height {
			lines = append(lines, "")
		}
	}

	for i := range lines {
		ln := lines[i]
		w := xansi.StringWidth(ln)
		if w > width {
			if width <= 0 {
				ln = ""
			} else if width == 1 {
				ln = xansi.Cut(ln, 0, 1)
			} else {
				ln = xansi.Cut(ln, 0, width-1) + "…"
			}
			w = xansi.StringWidth(ln)
		}
		if w < width {
			ln = ln + strings.Repeat(" ", width-w)
		}
		lines[i] = ln
	}

	return strings.Join(lines, "\n")
}

func modalWidth(termWidth int) int {
	w := termWidth - 8
	if w > maxModalW {
		w = maxModalW
	}
	if w < 30 {
		w = 30
	}
	return w
}

// modalBodyWidth is the content width inside the modal box padding.
func modalBodyWidth(termWidth int) int {
	return modalWidth(termWidth) - 4
}

// renderModalBox draws a titled dialog surface. No nested borders: some
// terminals show background artifacts when bordered components sit inside a
// background-colored modal.
func renderModalBox(termWidth int, title, content string) string {
	w := modalWidth(termWidth)

	header := lipgloss.NewStyle().
		Width(w).
		Padding(0, 2).
		Bold(true).
		Foreground(colorSurfaceFg).
		Background(colorControlBg).
		Render(title)

	body := lipgloss.NewStyle().
		Width(w).
		Padding(1, 2).
		Foreground(colorSurfaceFg).
		Background(colorSurfaceBg).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, body)
}

// renderConfirmModal draws a two-button confirmation dialog.
func renderConfirmModal(termWidth int, title, body, confirmLabel, cancelLabel string, confirmFocused bool) string {
	btnBase := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(colorSurfaceFg).
		Background(colorControlBg)
	btnActive := btnBase.
		Foreground(colorSelectedFg).
		Background(colorSelectedBg).
		Bold(true)

	confirm := btnBase.Render(confirmLabel)
	cancel := btnActive.Render(cancelLabel)
	if confirmFocused {
		confirm = btnActive.Render(confirmLabel)
		cancel = btnBase.Render(cancelLabel)
	}

	sep := lipgloss.NewStyle().Background(colorSurfaceBg).Render(" ")
	controls := lipgloss.JoinHorizontal(lipgloss.Top, confirm, sep, cancel)

	help := styleMuted().Width(modalBodyWidth(termWidth)).
		Render("tab: focus   enter: select   esc: cancel")

	content := strings.Join([]string{body, "", controls, "", help}, "\n")
	return renderModalBox(termWidth, title, content)
}

// placeCentered overlays the dialog in the middle of the full screen.
func placeCentered(width, height int, s string) string {
	if width <= 0 || height <= 0 {
		return s
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, s)
}
