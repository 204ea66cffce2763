// File: explore.go
// Role: the single external entry point (§6): explore(backend, seeds,
// config, progress?) -> (graph, accumulator).
package spikyball

import (
	"math/rand"

	"github.com/katalvlaran/spikyball/core"
	"github.com/katalvlaran/spikyball/datamodel"
	"github.com/katalvlaran/spikyball/graphbuild"
	"github.com/katalvlaran/spikyball/sampler"
)

// Option configures an Explore call.
type Option func(*options)

type options struct {
	rng      *rand.Rand
	progress datamodel.ProgressFunc
}

// WithRand seeds the sampler's random source for reproducible runs.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) { o.rng = rng }
}

// WithProgress registers a callback invoked at the end of each hop with
// (current_depth, total_depth).
func WithProgress(fn datamodel.ProgressFunc) Option {
	return func(o *options) { o.progress = fn }
}

// Explore runs the Spiky-Ball sampler over backend starting from seeds,
// per cfg, and assembles the resulting graph. seeds must be non-empty and
// cfg.DataCollection.ExplorationDepth must be >= 2; both violations
// surface as *datamodel.Error with Kind == KindConfigError.
func Explore(backend datamodel.Backend, seeds []datamodel.NodeID, cfg datamodel.Config, opts ...Option) (*core.Graph, datamodel.Accumulator, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	var sOpts []sampler.Option
	if o.rng != nil {
		sOpts = append(sOpts, sampler.WithRand(o.rng))
	}
	if o.progress != nil {
		sOpts = append(sOpts, sampler.WithProgress(o.progress))
	}

	res, err := sampler.Run(backend, seeds, cfg.DataCollection, sOpts...)
	if err != nil {
		return nil, nil, err
	}

	g := graphbuild.Build(backend, graphbuild.SamplerResult{
		Nodes: res.Nodes,
		Edges: res.Edges,
		Acc:   res.Acc,
	}, cfg.Graph, o.rng)

	return g, res.Acc, nil
}
