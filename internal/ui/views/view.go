package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"

	"github.com/vvzen/projpick/internal/ui/input"
	"github.com/vvzen/projpick/internal/ui/state"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width       int
	Height      int
	App         *state.AppState
	ShowIndices bool
	HelpModel   help.Model
	Keys        input.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{
		styles: NewStyles(),
	}
}

// Render draws the whole screen: header, query line, filtered list with
// the highlighted row distinguished, status line and help footer. Pure
// consumer of ViewState; never mutates it.
func (r *Renderer) Render(vs ViewState) string {
	var b strings.Builder

	b.WriteString(r.styles.Title.Render("projpick"))
	b.WriteString("\n")

	b.WriteString(r.renderQueryLine(vs))
	b.WriteString("\n")

	b.WriteString(r.renderItems(vs))

	b.WriteString(r.renderStatusLine(vs))
	b.WriteString("\n")

	b.WriteString(r.styles.Help.Render(vs.HelpModel.View(vs.Keys)))

	return r.styles.Main.Render(b.String())
}

// renderQueryLine renders the prompt and the current query text
func (r *Renderer) renderQueryLine(vs ViewState) string {
	cursor := r.styles.Dim.Render("█")
	return r.styles.Prompt.Render("> ") + r.styles.Query.Render(vs.App.Query) + cursor
}

// renderItems renders the visible window of the filtered list
func (r *Renderer) renderItems(vs ViewState) string {
	app := vs.App

	if len(app.Filtered) == 0 {
		return r.styles.Dim.Render("  (no matches)") + "\n"
	}

	var b strings.Builder

	start := app.ViewportOffset
	if start > len(app.Filtered) {
		start = len(app.Filtered)
	}
	end := start + app.ViewportHeight
	if end > len(app.Filtered) {
		end = len(app.Filtered)
	}

	for i := start; i < end; i++ {
		item := app.Filtered[i]

		line := ""
		if vs.ShowIndices {
			line += r.styles.ItemIndex.Render(fmt.Sprintf("%3d: ", i))
		}

		if i == app.Highlight {
			line += r.styles.HighlightBg.Render(r.styles.Highlight.Render("▸ " + item))
		} else {
			line += r.styles.Item.Render("  " + item)
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	// Scroll indicator when the list does not fit
	if len(app.Filtered) > app.ViewportHeight {
		b.WriteString(r.styles.Scroll.Render(
			fmt.Sprintf("  … %d-%d of %d", start+1, end, len(app.Filtered))))
		b.WriteString("\n")
	}

	return b.String()
}

// renderStatusLine renders the match count or the most recent error
func (r *Renderer) renderStatusLine(vs ViewState) string {
	app := vs.App

	if app.LastError != nil {
		return r.styles.StatusError.Render(fmt.Sprintf("error: %v", app.LastError))
	}

	status := fmt.Sprintf("%d/%d", len(app.Filtered), len(app.Candidates))
	if app.StatusMessage != "" {
		status += "  " + app.StatusMessage
	}
	return r.styles.Status.Render(status)
}
