package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/visnet/series"
	"github.com/katalvlaran/visnet/visibility"
)

var analyzeFlags struct {
	input    string
	kind     string
	missing  bool
	output   string
	measures []string
}

// measureFns maps a report key to the graph method producing it.
// Degree comes straight from the adjacency; everything else is a
// time-directed quantity.
var measureFns = map[string]func(*visibility.Graph) ([]float64, error){
	"degree": func(g *visibility.Graph) ([]float64, error) {
		degs := g.Network().Degrees()
		out := make([]float64, len(degs))
		for i, d := range degs {
			out[i] = float64(d)
		}
		return out, nil
	},
	"retarded_degree":      (*visibility.Graph).RetardedDegree,
	"advanced_degree":      (*visibility.Graph).AdvancedDegree,
	"retarded_clustering":  (*visibility.Graph).RetardedLocalClustering,
	"advanced_clustering":  (*visibility.Graph).AdvancedLocalClustering,
	"retarded_closeness":   (*visibility.Graph).RetardedCloseness,
	"advanced_closeness":   (*visibility.Graph).AdvancedCloseness,
	"retarded_betweenness": (*visibility.Graph).RetardedBetweenness,
	"advanced_betweenness": (*visibility.Graph).AdvancedBetweenness,
	"trans_betweenness":    (*visibility.Graph).TransBetweenness,
	"corrected_degree":     (*visibility.Graph).BoundaryCorrectedDegree,
	"corrected_closeness":  (*visibility.Graph).BoundaryCorrectedCloseness,
}

// report is the serialized analysis result. Per-node values use *float64
// so that NaN (no past / no future) renders as null in both encodings.
type report struct {
	Input        string                `yaml:"input" json:"input"`
	Kind         string                `yaml:"kind" json:"kind"`
	Nodes        int                   `yaml:"nodes" json:"nodes"`
	Edges        int                   `yaml:"edges" json:"edges"`
	LinkDensity  float64               `yaml:"link_density" json:"link_density"`
	Transitivity float64               `yaml:"transitivity" json:"transitivity"`
	Measures     map[string][]*float64 `yaml:"measures" json:"measures"`
}

// analyzeCmd represents the analyze command.
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Build a visibility graph from a CSV series and report measures",
	Long: `Read a series from CSV (one value column, or time,value columns),
build its visibility graph and print the requested node measures.

Empty or "nan" cells mark missing observations; pass --missing to treat
them as infinitely high obstacles instead of rejecting the series.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalyze(cmd)
	},
}

func runAnalyze(cmd *cobra.Command) error {
	kind, err := parseKind(analyzeFlags.kind)
	if err != nil {
		return err
	}
	names, err := resolveMeasures(analyzeFlags.measures)
	if err != nil {
		return err
	}

	f, err := os.Open(analyzeFlags.input)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	s, err := series.FromCSV(f)
	if err != nil {
		return fmt.Errorf("reading series: %w", err)
	}

	opts := []visibility.Option{
		visibility.WithKind(kind),
		visibility.WithLogger(logger),
	}
	if analyzeFlags.missing {
		opts = append(opts, visibility.WithMissingValues())
	}
	g, err := visibility.Build(s, opts...)
	if err != nil {
		return err
	}
	logger.Info("graph built",
		zap.Stringer("kind", kind),
		zap.Int("nodes", g.N()),
		zap.Int("edges", g.Network().EdgeCount()))

	rep := report{
		Input:        analyzeFlags.input,
		Kind:         kind.String(),
		Nodes:        g.N(),
		Edges:        g.Network().EdgeCount(),
		LinkDensity:  g.Network().LinkDensity(),
		Transitivity: g.Network().Transitivity(),
		Measures:     make(map[string][]*float64, len(names)),
	}
	for _, name := range names {
		values, err := measureFns[name](g)
		if err != nil {
			return fmt.Errorf("computing %s: %w", name, err)
		}
		rep.Measures[name] = nullable(values)
	}

	return writeReport(cmd, rep, analyzeFlags.output)
}

func writeReport(cmd *cobra.Command, rep report, format string) error {
	switch format {
	case "yaml":
		out, err := yaml.Marshal(rep)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	default:
		return fmt.Errorf("unknown output format %q (yaml|json)", format)
	}
}

func parseKind(name string) (visibility.Kind, error) {
	switch strings.ToLower(name) {
	case "natural":
		return visibility.Natural, nil
	case "horizontal":
		return visibility.Horizontal, nil
	default:
		return 0, fmt.Errorf("unknown graph kind %q (natural|horizontal)", name)
	}
}

// resolveMeasures validates the requested names; an empty request means
// every known measure, in stable order.
func resolveMeasures(requested []string) ([]string, error) {
	if len(requested) == 0 {
		all := make([]string, 0, len(measureFns))
		for name := range measureFns {
			all = append(all, name)
		}
		sort.Strings(all)
		return all, nil
	}
	for _, name := range requested {
		if _, ok := measureFns[name]; !ok {
			return nil, fmt.Errorf("unknown measure %q", name)
		}
	}
	return requested, nil
}

// nullable maps NaN entries to nil so both encoders emit null.
func nullable(values []float64) []*float64 {
	out := make([]*float64, len(values))
	for i := range values {
		if !math.IsNaN(values[i]) {
			out[i] = &values[i]
		}
	}
	return out
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeFlags.input, "input", "i", "",
		"input CSV file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeFlags.kind, "kind", "k", "natural",
		"visibility kind: natural|horizontal")
	analyzeCmd.Flags().BoolVar(&analyzeFlags.missing, "missing", false,
		"treat NaN observations as infinitely high obstacles")
	analyzeCmd.Flags().StringVarP(&analyzeFlags.output, "output", "o", "yaml",
		"report format: yaml|json")
	analyzeCmd.Flags().StringSliceVarP(&analyzeFlags.measures, "measures", "m", nil,
		"measures to report (default: all)")
	_ = analyzeCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(analyzeCmd)
}
