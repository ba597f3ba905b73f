package clibeans

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jbuncle/cli-beans/util"
)

// HelpItem is one row of the help text
type HelpItem struct {
	Usage       string
	Description string
}

// Help lists the options split into required and optional items, each in declaration order
type Help struct {
	Required []HelpItem
	Optional []HelpItem
}

func (h *Help) add(d *Descriptor) {
	item := HelpItem{Usage: d.Usage(), Description: d.Description}
	if d.IsRequired {
		h.Required = append(h.Required, item)
	} else {
		h.Optional = append(h.Optional, item)
	}
}

// Print writes the "Usage: " section with the required options followed by the "Optional: "
// section. Usage columns are padded to the widest usage of both sections; empty sections
// are left out.
func (h *Help) Print(w io.Writer) error {
	width := h.usageWidth()

	for _, section := range []struct {
		title string
		items []HelpItem
	}{
		{"Usage: ", h.Required},
		{"Optional: ", h.Optional},
	} {
		if len(section.items) == 0 {
			continue
		}
		if _, err := fmt.Fprintln(w, section.title); err != nil {
			return err
		}
		for _, item := range section.items {
			if _, err := fmt.Fprintf(w, "\t%-*s\t%s\n", width, item.Usage, item.Description); err != nil {
				return err
			}
		}
	}

	return nil
}

func (h *Help) String() string {
	var sb strings.Builder
	_ = h.Print(&sb)

	return sb.String()
}

func (h *Help) usageWidth() int {
	width := 0
	for _, items := range [][]HelpItem{h.Required, h.Optional} {
		for _, item := range items {
			width = util.Max(width, utf8.RuneCountInString(item.Usage))
		}
	}

	return width
}
