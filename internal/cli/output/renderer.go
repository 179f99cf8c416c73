// Package output renders command results for terminals, pipes and machines.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/term"
)

// Mode selects how results are rendered.
type Mode string

// Output modes.
const (
	ModeAuto Mode = "auto" // text, styled when writing to a terminal
	ModeText Mode = "text"
	ModeJSON Mode = "json"
)

// Renderer writes command output in the selected mode.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	isTTY  bool
	styles *Styles
}

// NewRenderer creates a Renderer, detecting whether out is a terminal.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	return NewRendererWithTTY(out, errOut, isTerminal(out), mode)
}

// NewRendererWithTTY creates a Renderer with an explicit terminal state.
func NewRendererWithTTY(out, errOut io.Writer, isTTY bool, mode Mode) *Renderer {
	if mode == "" {
		mode = ModeAuto
	}
	return &Renderer{
		out:    out,
		errOut: errOut,
		mode:   mode,
		isTTY:  isTTY,
		styles: NewStyles(lipgloss.NewRenderer(out)),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// IsTTY reports whether the primary output is a terminal.
func (r *Renderer) IsTTY() bool {
	return r.isTTY
}

// Mode returns the configured mode.
func (r *Renderer) Mode() Mode {
	return r.mode
}

// EffectiveMode resolves ModeAuto to a concrete mode.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode == ModeAuto {
		return ModeText
	}
	return r.mode
}

// IsJSON reports whether output should be machine-readable.
func (r *Renderer) IsJSON() bool {
	return r.EffectiveMode() == ModeJSON
}

// Styles returns the styles for text output.
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Styled reports whether text output is decorated with styles.
func (r *Renderer) Styled() bool {
	return r.isTTY && r.mode == ModeAuto
}

// Style renders s with style when writing to a terminal in auto mode.
// Otherwise s is returned unchanged.
func (r *Renderer) Style(style lipgloss.Style, s string) string {
	if !r.Styled() {
		return s
	}
	return style.Render(s)
}

// Status writes a styled status line to the diagnostic writer. It is shown
// only on terminals in auto mode.
func (r *Renderer) Status(style lipgloss.Style, s string) {
	if !r.Styled() {
		return
	}
	_, _ = fmt.Fprintln(r.errOut, style.Render(s))
}

// Print writes s to the primary output as-is.
func (r *Renderer) Print(s string) {
	_, _ = io.WriteString(r.out, s)
}

// Println writes a line to the primary output.
func (r *Renderer) Println(s string) {
	_, _ = fmt.Fprintln(r.out, s)
}

// JSON writes v as indented JSON.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Table renders rows under header. Terminals get a boxed table, other
// writers a plain column layout.
func (r *Renderer) Table(header []string, rows [][]string) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	if r.isTTY {
		style := table.StyleLight
		style.Format.Header = text.FormatDefault
		t.SetStyle(style)
	} else {
		t.SetStyle(plainStyle())
	}

	headerRow := make(table.Row, len(header))
	for i, h := range header {
		headerRow[i] = r.Style(r.styles.Header, h)
	}
	t.AppendHeader(headerRow)

	for _, row := range rows {
		tr := make(table.Row, len(row))
		for i, cell := range row {
			tr[i] = cell
		}
		t.AppendRow(tr)
	}
	t.Render()
}

// plainStyle is a borderless table style without ANSI colors.
func plainStyle() table.Style {
	style := table.StyleDefault
	style.Options = table.Options{
		DrawBorder:      false,
		SeparateColumns: false,
		SeparateHeader:  false,
		SeparateRows:    false,
	}
	style.Box.PaddingLeft = ""
	style.Box.PaddingRight = "  "
	style.Format.Header = text.FormatDefault
	return style
}
