package templates

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/a-h/templ"
)

// writer accumulates the first write error so components read top to bottom.
type writer struct {
	w   io.Writer
	err error
}

func (h *writer) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *writer) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *writer) rawf(format string, args ...any) {
	h.raw(fmt.Sprintf(format, args...))
}

func (h *writer) attr(name, value string) {
	h.rawf(` %s="%s"`, name, templ.EscapeString(value))
}

func deltaClass(outcome string) string {
	switch outcome {
	case "better":
		return "delta delta-better"
	case "worse":
		return "delta delta-worse"
	default:
		return "delta"
	}
}

func deltaArrow(delta string) string {
	switch {
	case delta == "":
		return ""
	case strings.HasPrefix(delta, "-"):
		return "↓"
	case delta == "0.00":
		return ""
	default:
		return "↑"
	}
}

// buildCompareURL is the shareable link for a selection.
func buildCompareURL(sel SelectionView) templ.SafeURL {
	q := url.Values{}
	if sel.Fighter1 != "" {
		q.Set("fighter1", sel.Fighter1)
	}
	if sel.Fighter2 != "" {
		q.Set("fighter2", sel.Fighter2)
	}
	if sel.Feature != "" {
		q.Set("feature", sel.Feature)
	}
	if len(q) == 0 {
		return templ.SafeURL("/")
	}
	return templ.SafeURL("/?" + q.Encode())
}

func buildDetailsExportURL(format string, sel SelectionView) templ.SafeURL {
	q := url.Values{}
	q.Set("format", format)
	for _, f := range []string{sel.Fighter1, sel.Fighter2} {
		if f != "" {
			q.Add("fighter", f)
		}
	}
	return templ.SafeURL("/api/export/details?" + q.Encode())
}
