package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/synonet/engine"
)

var (
	colorAccent = lipgloss.Color("#20B9B4")
	colorMuted  = lipgloss.Color("#6C7A80")
	colorError  = lipgloss.Color("#E74C3C")
)

const arrow = " -> "

// printer renders query results as styled text or JSON. Styles come from a
// renderer bound to w, so output to pipes and buffers stays plain.
type printer struct {
	w    io.Writer
	json bool

	label lipgloss.Style
	word  lipgloss.Style
	muted lipgloss.Style
	fail  lipgloss.Style
}

func newPrinter(w io.Writer, asJSON bool) *printer {
	r := lipgloss.NewRenderer(w)
	return &printer{
		w:     w,
		json:  asJSON,
		label: r.NewStyle().Bold(true),
		word:  r.NewStyle().Foreground(colorAccent),
		muted: r.NewStyle().Foreground(colorMuted),
		fail:  r.NewStyle().Foreground(colorError),
	}
}

func (p *printer) emit(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p *printer) line(format string, args ...any) error {
	_, err := fmt.Fprintf(p.w, format+"\n", args...)
	return err
}

func (p *printer) notFound() error {
	if p.json {
		return p.emit(nil)
	}
	return p.line("%s", p.muted.Render("not found"))
}

func (p *printer) errorf(format string, args ...any) error {
	return p.line("%s", p.fail.Render(fmt.Sprintf(format, args...)))
}

func (p *printer) chain(words []string) string {
	styled := make([]string, len(words))
	for i, w := range words {
		styled[i] = p.word.Render(w)
	}
	return strings.Join(styled, arrow)
}

func (p *printer) boolean(v bool) error {
	if p.json {
		return p.emit(v)
	}
	return p.line("%t", v)
}

func (p *printer) path(path []string, ok bool) error {
	if !ok {
		return p.notFound()
	}
	if p.json {
		return p.emit(path)
	}
	return p.line("%s", p.chain(path))
}

func (p *printer) level(n int) error {
	if n < 0 {
		return p.notFound()
	}
	if p.json {
		return p.emit(n)
	}
	return p.line("%d", n)
}

// synonyms lists syn in path order.
func (p *printer) synonyms(path []string, syn map[string][]string) error {
	if len(path) == 0 {
		return p.notFound()
	}
	if p.json {
		return p.emit(syn)
	}
	for _, w := range path {
		if err := p.synonymLine("", w, syn[w]); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) synonymLine(indent, w string, set []string) error {
	if len(set) == 0 {
		return p.line("%s%s: %s", indent, p.label.Render(w), p.muted.Render("(none)"))
	}
	return p.line("%s%s: %s", indent, p.label.Render(w), strings.Join(set, ", "))
}

// definitions lists defs in words order.
func (p *printer) definitions(words []string, defs map[string]string) error {
	if p.json {
		return p.emit(defs)
	}
	for _, w := range words {
		if err := p.line("%s: %s", p.label.Render(w), defs[w]); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) info(info engine.PathInfo, ok bool) error {
	if !ok {
		return p.notFound()
	}
	if p.json {
		return p.emit(info)
	}
	if err := p.line("%s %s", p.label.Render("path:"), p.chain(info.Path)); err != nil {
		return err
	}
	if err := p.line("%s %d", p.label.Render("level:"), info.Level); err != nil {
		return err
	}
	if err := p.line("%s", p.label.Render("synonyms:")); err != nil {
		return err
	}
	for _, w := range info.Path {
		if err := p.synonymLine("  ", w, info.Synonyms[w]); err != nil {
			return err
		}
	}
	if err := p.line("%s", p.label.Render("definitions:")); err != nil {
		return err
	}
	for _, w := range info.Path {
		if err := p.line("  %s: %s", p.label.Render(w), info.Definitions[w]); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) stats(st engine.Stats) error {
	if p.json {
		return p.emit(st)
	}
	rows := [][2]string{
		{"generation", st.Generation.String()},
		{"vertices", fmt.Sprint(st.Vertices)},
		{"edges", fmt.Sprint(st.Edges)},
		{"definitions", fmt.Sprint(st.Definitions)},
		{"components", fmt.Sprint(st.Components)},
		{"largest", fmt.Sprint(st.LargestComponent)},
		{"built at", st.BuiltAt.Format(time.RFC3339)},
	}
	for _, r := range rows {
		if err := p.line("%-12s %s", r[0], r[1]); err != nil {
			return err
		}
	}
	return nil
}
