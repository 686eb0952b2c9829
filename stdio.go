// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"
)

// Print writes a textual table of every node reachable from root to
// standard output: one line per nonterminal, in ascending id order.
func Print[T comparable](c *Cache[T], root ID) {
	print_(os.Stdout, c, root)
}

func print_[T comparable](w io.Writer, c *Cache[T], root ID) {
	if root.IsTerminal() {
		fmt.Fprintf(w, "%v\n", c.TerminalValue(root))
		return
	}
	type row struct {
		id        ID
		level     int32
		low, high ID
	}
	ids := Allnodes(c, root)
	rows := make([]row, len(ids))
	for i, id := range ids {
		level, low, high := c.NonterminalFields(id)
		rows[i] = row{id, level, low, high}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].id < rows[j].id })

	tw := tabwriter.NewWriter(w, 0, 0, 0, ' ', 0)
	for _, r := range rows {
		fmt.Fprintf(tw, "%d\t[%d\t] ? \t%s\t : %s\n", r.id, r.level, refString(c, r.high), refString(c, r.low))
	}
	tw.Flush()
}

func refString[T comparable](c *Cache[T], id ID) string {
	if id.IsTerminal() {
		return fmt.Sprintf("%v", c.TerminalValue(id))
	}
	return fmt.Sprintf("%d", id)
}

// PrintDot writes a Graphviz DOT description of the graph reachable
// from root to filename ("-" for standard output).
func PrintDot[T comparable](filename string, c *Cache[T], root ID) error {
	var out *os.File
	var err error
	if filename == "-" {
		out = os.Stdout
	} else {
		out, err = os.Create(filename)
		if err != nil {
			return err
		}
		defer out.Close()
	}
	w := bufio.NewWriter(out)
	fmt.Fprintln(w, "digraph G {")
	for _, id := range Allnodes(c, root) {
		level, low, high := c.NonterminalFields(id)
		fmt.Fprintf(w, "%d %s\n", id, dotlabel(id, level))
		fmt.Fprintf(w, "%d -> %s [style=dotted];\n", id, refString(c, low))
		fmt.Fprintf(w, "%d -> %s [style=filled];\n", id, refString(c, high))
	}
	fmt.Fprintln(w, "}")
	return w.Flush()
}

func dotlabel(a ID, b int32) string {
	return fmt.Sprintf(`[label=<
	<FONT POINT-SIZE="20">%d</FONT>
	<FONT POINT-SIZE="10">[%d]</FONT>
>];`, b, a)
}
