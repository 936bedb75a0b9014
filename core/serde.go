package core

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/bndr/gotabulate"
)

//  ######################################################
//              PART RENDERING
//  ######################################################

// Renderable is an interface implemented by types that can render themselves
// into a human-readable string format, typically for CLI display or logging.
type Renderable interface {
	PrettyTable() string
	PrettyJson(indent ...string) string
}

// partView is the JSON projection of a Part: headers plus payload size, the
// payload bytes themselves are not rendered.
type partView struct {
	Headers     map[string][]string `json:"headers"`
	PayloadSize int                 `json:"payload_size"`
}

// PrettyTable prints a single Part as a table of its headers plus the
// payload size.
func (p Part) PrettyTable() string {
	headers := []string{"header", "value"}
	var rows [][]any
	names := make([]string, 0, len(p.Headers))
	for name := range p.Headers {
		names = append(names, name)
	}
	sort.Strings(names) // Sort to keep consistent order
	for _, name := range names {
		rows = append(rows, []any{name, strings.Join(p.Headers[name], ", ")})
	}
	rows = append(rows, []any{"<<payload bytes>>", fmt.Sprintf("%d", len(p.Body))})
	t := gotabulate.Create(rows)
	t.SetHeaders(headers)
	t.SetAlign("left")
	t.SetWrapStrings(true)
	t.SetMaxCellSize(85)
	return t.Render("grid")
}

// PrettyJson prints the Part as JSON, optionally indented. The payload is
// summarized by its size.
func (p Part) PrettyJson(indent ...string) string {
	view := partView{Headers: p.Headers, PayloadSize: len(p.Body)}
	var b []byte
	var err error
	if len(indent) > 0 {
		b, err = json.MarshalIndent(view, "", indent[0])
	} else {
		b, err = json.Marshal(view)
	}
	if err != nil {
		return fmt.Sprintf("failed to marshal JSON: %v", err)
	}
	return string(b)
}

// PrettyTable prints the full PartSet by rendering each individual Part
func (ps PartSet) PrettyTable() string {
	if len(ps) == 0 {
		return "[]"
	}
	var out strings.Builder
	out.WriteString("[\n")
	for i, part := range ps {
		out.WriteString(part.PrettyTable())
		if i < len(ps)-1 {
			out.WriteString("\n\n") // separate entries with a blank line
		}
	}
	out.WriteString("\n]")
	return out.String()
}

// PrettyJson prints the PartSet as JSON, optionally indented
func (ps PartSet) PrettyJson(indent ...string) string {
	views := make([]partView, len(ps))
	for i, part := range ps {
		views[i] = partView{Headers: part.Headers, PayloadSize: len(part.Body)}
	}
	var b []byte
	var err error
	if len(indent) > 0 {
		b, err = json.MarshalIndent(views, "", indent[0])
	} else {
		b, err = json.Marshal(views)
	}
	if err != nil {
		return fmt.Sprintf("failed to marshal JSON: %v", err)
	}
	return string(b)
}

func (ps PartSet) Empty() bool {
	return len(ps) == 0
}
