package main

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/seqgraph/triegraph/alphabet"
	"github.com/seqgraph/triegraph/internal/config"
	"github.com/seqgraph/triegraph/internal/graphspec"
	"github.com/seqgraph/triegraph/internal/logging"
	"github.com/seqgraph/triegraph/internal/telemetry"
	"github.com/seqgraph/triegraph/lloc"
	"github.com/seqgraph/triegraph/pairsink"
	"github.com/seqgraph/triegraph/triegraph"
)

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the (kmer, position) index for a graph description",
		RunE:  runBuild,
	}

	cmd.Flags().String("config", "", "path to a YAML config file")
	cmd.Flags().String("graph", "", "path to a YAML graph description (required)")
	cmd.Flags().String("output", "-", `output path for newline-delimited JSON pairs, or "-" for stdout`)
	cmd.Flags().Int("k", 0, "trie depth k (required)")
	cmd.Flags().String("builder", string(config.BuilderNodeBFS), "trie builder: backtrack, posbfs, or nodebfs")
	cmd.Flags().String("logFormat", "text", "log output format: text or json")
	cmd.Flags().String("metricsAddr", "", "if set, serve Prometheus metrics on this address after the build completes")
	cmd.Flags().Int("cutEarlyThreshold", config.DefaultCutEarlyThreshold, "Position-BFS frontier cutoff; 0 disables it")
	cmd.Flags().Int("setCutoff", config.DefaultSetCutoff, "Node-BFS linear/hashed presence cutoff")
	cmd.Flags().Bool("verbose", false, "enable debug logging")

	return cmd
}

func runBuild(cmd *cobra.Command, _ []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cmd, configPath)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	logger, err := logging.New(logging.Config{Format: logging.Format(cfg.LogFormat), Verbose: verbose})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	raw, err := os.ReadFile(cfg.GraphPath)
	if err != nil {
		return fmt.Errorf("triegraph build: read graph: %w", err)
	}
	spec, err := graphspec.Parse(raw)
	if err != nil {
		return fmt.Errorf("triegraph build: %w", err)
	}
	g, alpha, err := spec.Build()
	if err != nil {
		return fmt.Errorf("triegraph build: %w", err)
	}

	opts := triegraph.Options{
		K:            cfg.K,
		AlphabetSize: alpha.Size(),
		Builder:      cfg.Builder,
	}
	opts.PositionBFS.CutEarlyThreshold = uint32(cfg.CutEarlyThreshold)
	if cfg.CutEarlyThreshold == 0 {
		// triegraph.Build replaces zero PositionBFS settings with the
		// defaults, so a disabled guard is passed as the largest threshold,
		// which a frontier cannot reach in practice.
		opts.PositionBFS.CutEarlyThreshold = math.MaxUint32
	}
	opts.NodeBFS.SetCutoff = cfg.SetCutoff

	reg := prometheus.NewRegistry()
	metrics := telemetry.New(reg, "triegraph", "build")

	logger.Infow("build starting", "graph", cfg.GraphPath, "k", cfg.K, "builder", cfg.Builder, "nodes", g.NumNodes())

	started := time.Now()
	result, buildErr := triegraph.Build(g, opts)
	metrics.ObserveBuild(string(cfg.Builder), buildErr, time.Since(started))
	if buildErr != nil {
		return fmt.Errorf("triegraph build: %w", buildErr)
	}

	metrics.PairsEmittedTotal.WithLabelValues(string(cfg.Builder)).Add(float64(len(result.Sink.Pairs)))
	metrics.NodesProcessed.Set(float64(g.NumNodes()))
	metrics.FastPathTotal.WithLabelValues("short_kmer").Add(float64(result.Stats.ShortKmer))
	metrics.FastPathTotal.WithLabelValues("short_next").Add(float64(result.Stats.ShortNext))
	metrics.FastPathTotal.WithLabelValues("fast_split").Add(float64(result.Stats.FastSplit))
	metrics.FastPathTotal.WithLabelValues("normal").Add(float64(result.Stats.Normal))

	logger.Infow("build finished",
		"run_id", result.RunID.String(),
		"pairs", len(result.Sink.Pairs),
		"starts", result.Starts,
		"duration", result.Duration.String(),
	)

	if err := writePairs(cfg.Output, result.Sink); err != nil {
		return fmt.Errorf("triegraph build: %w", err)
	}

	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		logger.Infow("serving metrics", "addr", cfg.MetricsAddr)
		return http.ListenAndServe(cfg.MetricsAddr, mux)
	}
	return nil
}

// pairDTO is the newline-delimited JSON shape written for each emitted
// pair: the kmer rendered as a string and the location as its bare
// dense integer.
type pairDTO struct {
	Kmer string `json:"kmer"`
	Loc  uint64 `json:"loc"`
}

// dtoCollector is the MappedAppender writePairs projects pairs into
// before JSON-encoding them, keeping the core builders unaware of the
// CLI's output encoding.
type dtoCollector struct {
	items []pairDTO
}

func (d *dtoCollector) Reserve(n int) {
	if have := cap(d.items) - len(d.items); have < n {
		grown := make([]pairDTO, len(d.items), len(d.items)+n)
		copy(grown, d.items)
		d.items = grown
	}
}

func (d *dtoCollector) EmplaceBack(kmer string, loc uint64) {
	d.items = append(d.items, pairDTO{Kmer: kmer, Loc: loc})
}

func writePairs(output string, sink *pairsink.Slice) error {
	collector := &dtoCollector{}
	mapped := pairsink.NewMapped[string, uint64](collector,
		func(k alphabet.Kmer) string { return k.String() },
		func(l lloc.LetterLoc) uint64 { return uint64(l) },
	)
	mapped.Reserve(len(sink.Pairs))
	for _, p := range sink.Pairs {
		mapped.EmplaceBack(p.Kmer, p.Loc)
	}

	w := os.Stdout
	if output != "" && output != "-" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}

	enc := json.NewEncoder(w)
	for _, item := range collector.items {
		if err := enc.Encode(item); err != nil {
			return fmt.Errorf("write pair: %w", err)
		}
	}
	return nil
}
