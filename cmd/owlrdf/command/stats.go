package command

import (
	"io"
	"sort"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/cayleygraph/owlrdf/consumer"
)

var residueColor = color.New(color.FgRed).SprintFunc()

// WriteStats renders the axiom counts per type and the untranslated triples
// per reason as markdown tables.
func WriteStats(w io.Writer, res *consumer.Result) error {
	counts := make(map[string]int)
	for _, ax := range res.Axioms {
		counts[ax.Type.String()]++
	}
	rows := sortedRows(counts)
	rows = append(rows, []string{"**total**", strconv.Itoa(len(res.Axioms))})
	if err := writeTable(w, []string{"Axiom type", "Count"}, rows); err != nil {
		return err
	}

	reasons := make(map[string]int)
	for _, u := range res.Residue {
		reasons[u.Reason.String()]++
	}
	if res.Dropped != 0 {
		reasons["dropped"] = res.Dropped
	}
	if len(reasons) != 0 {
		io.WriteString(w, "\n")
		if err := writeTable(w, []string{"Residue", "Triples"}, sortedRows(reasons)); err != nil {
			return err
		}
	}

	io.WriteString(w, "\n")
	st := res.Stats
	return writeTable(w, []string{"Triples", "Streamed", "Deferred", "Swept", "Sweeps"}, [][]string{{
		strconv.Itoa(st.Triples), strconv.Itoa(st.Streamed), strconv.Itoa(st.Deferred),
		strconv.Itoa(st.Swept), strconv.Itoa(st.Sweeps),
	}})
}

func sortedRows(counts map[string]int) [][]string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, []string{k, strconv.Itoa(counts[k])})
	}
	return rows
}

func writeTable(w io.Writer, header []string, rows [][]string) error {
	alignment := make([]tw.Align, len(header))
	for i := range alignment {
		alignment[i] = tw.AlignNone
	}
	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(renderer.NewMarkdown()),
		tablewriter.WithAlignment(alignment),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	)
	table.Header(header)
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}
