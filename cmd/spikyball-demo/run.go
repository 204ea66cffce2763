package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	spikyball "github.com/katalvlaran/spikyball"
	"github.com/katalvlaran/spikyball/backend/synthetic"
	"github.com/katalvlaran/spikyball/builder"
	"github.com/katalvlaran/spikyball/config"
	"github.com/katalvlaran/spikyball/core"
	"github.com/katalvlaran/spikyball/datamodel"
	"github.com/katalvlaran/spikyball/telemetry"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Args:  cobra.NoArgs,
	Short: "Sample a synthetic Barabasi-Albert graph and print the result",
	RunE:  runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	if cfgFile == "" {
		return fmt.Errorf("--config flag is required")
	}
	run, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	logCfg := run.LoggerConfig()
	if verbose {
		logCfg.Level = telemetry.LevelDebug
	}
	logger := telemetry.NewLogger(logCfg)

	reg := prometheus.NewRegistry()
	metrics := telemetry.NewMetrics(reg)

	fixture, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(true), core.WithWeighted()},
		[]builder.BuilderOption{builder.WithSeed(run.Synthetic.Seed)},
		builder.Preferential(run.Synthetic.Nodes, run.Synthetic.Edges),
	)
	if err != nil {
		return fmt.Errorf("building synthetic fixture: %w", err)
	}

	backend := synthetic.New(fixture, synthetic.Config{MinDegree: run.Synthetic.MinDegree})
	rng := rand.New(rand.NewSource(run.Synthetic.Seed))

	seeds := run.SeedIDs()
	if len(seeds) == 0 {
		seeds = []datamodel.NodeID{datamodel.NodeID(fixture.Vertices()[0])}
	}

	start := time.Now()
	g, _, err := spikyball.Explore(backend, seeds, run.ToDataModel(),
		spikyball.WithRand(rng),
		spikyball.WithProgress(func(depth, total int) {
			metrics.HopsTotal.Inc()
			logger.HopStarted(depth, total)
		}),
	)
	if err != nil {
		return fmt.Errorf("explore: %w", err)
	}
	elapsed := time.Since(start)

	metrics.NodesVisited.Add(float64(g.VertexCount()))
	metrics.EdgesKept.Add(float64(g.EdgeCount()))
	logger.RunFinished(g.VertexCount(), g.EdgeCount(), elapsed)

	fmt.Printf("assembled graph: %d vertices, %d edges (%s)\n", g.VertexCount(), g.EdgeCount(), elapsed)
	return nil
}
