package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dbsmedya/goinspect/internal/graph"
	"github.com/dbsmedya/goinspect/internal/history"
	"github.com/dbsmedya/goinspect/internal/report"
	"github.com/dbsmedya/goinspect/internal/textfmt"
)

var (
	basesFormat  string
	basesHistory bool
)

var basesCmd = &cobra.Command{
	Use:   "bases <target>",
	Short: "Show the ancestor graph of a type or value",
	Long: `Bases climbs from the target to its ancestors and prints every edge it
walked. For a type the ancestors are its embedded types; for any other value
the only ancestor is its type. The resolution order lists each object before
its bases; cyclic runtime classes are reported instead.

Output formats:
  table    edge table and resolution order (default)
  yaml     machine readable document
  mermaid  mermaid flowchart

Example:
  goinspect bases sample:J
  goinspect bases sample:diamond --format mermaid
  goinspect bases sample:Sub{} --history`,
	Args: cobra.ExactArgs(1),
	RunE: runBases,
}

func init() {
	basesCmd.Flags().StringVarP(&basesFormat, "format", "f", "",
		"Override output format (table, yaml, mermaid)")
	basesCmd.Flags().BoolVar(&basesHistory, "history", false,
		"Also print every visited object with its own attributes")

	rootCmd.AddCommand(basesCmd)
}

// basesDocument is the yaml form of an ancestor climb.
type basesDocument struct {
	Session string               `yaml:"session"`
	Root    string               `yaml:"root"`
	Edges   []history.EdgeRecord `yaml:"edges"`
	Objects []string             `yaml:"objects"`
	Leaves  []string             `yaml:"leaves"`
	Order   []string             `yaml:"resolution_order,omitempty"`
	Cycle   string               `yaml:"cycle,omitempty"`
	Visited []visitedEntry       `yaml:"visited,omitempty"`
}

type visitedEntry struct {
	ID         string       `yaml:"id"`
	Name       string       `yaml:"name"`
	TypeName   string       `yaml:"type_name"`
	Attributes []report.Row `yaml:"attributes,omitempty"`
}

func runBases(cmd *cobra.Command, args []string) error {
	env, err := setup(cmd)
	if err != nil {
		return err
	}
	defer env.log.Sync()

	target, err := resolveTarget(args[0], env.cfg)
	if err != nil {
		return err
	}

	session := env.session(args[0])
	if err := session.ClimbBases(target); err != nil {
		return fmt.Errorf("ancestor climb failed: %w", err)
	}

	edges := session.History().Edges()
	g, err := graph.FromEdges(edges)
	if err != nil {
		return fmt.Errorf("failed to build ancestor graph: %w", err)
	}
	env.log.Debugw("ancestor graph built", "objects", g.NodeCount(), "edges", g.EdgeCount())

	order, orderErr := g.ResolutionOrder()
	if orderErr != nil && !errors.Is(orderErr, graph.ErrCycleDetected) {
		return fmt.Errorf("failed to order ancestor graph: %w", orderErr)
	}
	if orderErr != nil {
		env.log.Warnw("ancestor graph is cyclic", "target", args[0])
	}

	var visited []visitedEntry
	if basesHistory {
		visited = visitedEntries(session.History(), env.cfg.Inspect.MaxOutputChars)
	}

	switch env.cfg.Output.Format {
	case "yaml":
		doc := basesDocument{
			Session: session.ID(),
			Root:    g.Root,
			Edges:   edges,
			Objects: g.AllNodes(),
			Leaves:  g.LeafNodes(),
			Order:   order,
			Visited: visited,
		}
		if orderErr != nil {
			doc.Cycle = orderErr.Error()
		}
		enc := yaml.NewEncoder(outputWriter)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case "mermaid":
		fmt.Fprint(outputWriter, g.Mermaid())
	default:
		printBasesTable(args[0], edges, g.LeafNodes(), order, orderErr)
		if basesHistory {
			fmt.Fprintln(outputWriter)
			printVisited(visited, env.cfg.Output.NameWidth)
		}
	}
	return nil
}

// visitedEntries converts the visited records of store for printing.
func visitedEntries(store *history.Store, maxChars int) []visitedEntry {
	records := store.Records()
	entries := make([]visitedEntry, 0, len(records))
	for _, rec := range records {
		entry := visitedEntry{
			ID:       rec.Key.String(),
			Name:     rec.Name,
			TypeName: rec.TypeName,
		}
		if rec.Snapshot != nil {
			for el := rec.Snapshot.Front(); el != nil; el = el.Next() {
				entry.Attributes = append(entry.Attributes, report.Row{
					Name:  el.Key,
					Value: textfmt.Truncate(el.Value, maxChars),
				})
			}
		}
		entries = append(entries, entry)
	}
	return entries
}

// printBasesTable prints the edge table and the objects without bases,
// followed by the resolution order or the cycle report when no order exists.
func printBasesTable(target string, edges []history.EdgeRecord, leaves, order []string, orderErr error) {
	printHeader("Ancestors: %s", target)
	fmt.Fprintln(outputWriter)

	printSection("Edges")
	table := tablewriter.NewWriter(outputWriter)
	table.SetHeader([]string{"#", "Object", "Bases"})
	table.SetAutoWrapText(false)
	for _, e := range edges {
		bases := strings.Join(e.Children, ", ")
		if bases == "" {
			bases = "-"
		}
		table.Append([]string{fmt.Sprintf("%d", e.Index), e.Parent, bases})
	}
	table.Render()
	fmt.Fprintln(outputWriter)

	printSection("Root Bases")
	if len(leaves) == 0 {
		fmt.Fprintln(outputWriter, "  none, every object has a base")
	} else {
		fmt.Fprintf(outputWriter, "  %s\n", strings.Join(leaves, ", "))
	}
	fmt.Fprintln(outputWriter)

	printSection("Resolution Order (object before its bases)")
	if orderErr != nil {
		for _, line := range strings.Split(orderErr.Error(), "\n") {
			fmt.Fprintf(outputWriter, "  %s\n", line)
		}
		return
	}
	for i, name := range order {
		fmt.Fprintf(outputWriter, "  [%d] %s\n", i+1, name)
	}
}

// printVisited prints every visited object with its own attributes.
func printVisited(entries []visitedEntry, nameWidth int) {
	printSection("Visited Objects")
	for i, e := range entries {
		fmt.Fprintf(outputWriter, "  [%d] %s (%s) id %s\n", i+1, e.Name, e.TypeName, e.ID)
		for _, attr := range e.Attributes {
			fmt.Fprintf(outputWriter, "      %s = %s\n", textfmt.PadRight(attr.Name, nameWidth), attr.Value)
		}
	}
}
