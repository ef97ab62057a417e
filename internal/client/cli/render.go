package cli

import (
	"fmt"
	"io"

	"github.com/dmitrijs2005/scankeeper/internal/barcodes"
	"github.com/dmitrijs2005/scankeeper/internal/client/session"
)

// renderScreen prints the render model as plain text.
func renderScreen(w io.Writer, scr session.Screen) {
	header := scr.Title
	if scr.View.Search != "" {
		header = fmt.Sprintf("%s, search %q", header, scr.View.Search)
	}
	if scr.Syncing {
		header += " (syncing)"
	}
	fmt.Fprintln(w, header)

	if scr.Empty != "" {
		fmt.Fprintln(w, "  "+scr.Empty)
		return
	}

	for _, g := range scr.Groups {
		fmt.Fprintf(w, "  %s Group: %d items\n", g.Name, len(g.Items))
	}
	for _, it := range scr.Items {
		renderItem(w, it, scr.Highlight)
	}
}

func renderItem(w io.Writer, it barcodes.Item, highlight bool) {
	marker := " "
	if highlight {
		marker = "*"
	}
	fmt.Fprintf(w, " %s[%d] %-24s %s\n", marker, it.Index, it.Code, it.Timestamp)
}
