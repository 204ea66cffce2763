// Package config loads the spikyball-demo CLI's YAML run configuration into
// the sampler's native datamodel.Config, the way chaos-utils loads its
// scenario YAML into typed structs before handing them to the orchestrator.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/spikyball/datamodel"
	"github.com/katalvlaran/spikyball/telemetry"
)

// Run is the top-level shape of a spikyball-demo run file.
type Run struct {
	Seeds      []string           `yaml:"seeds"`
	DataCollection DataCollection `yaml:"data_collection"`
	Graph      Graph              `yaml:"graph"`
	Logging    Logging            `yaml:"logging"`
	Synthetic  Synthetic          `yaml:"synthetic"`
}

// DataCollection mirrors datamodel.DataCollectionConfig with yaml tags.
type DataCollection struct {
	ExplorationDepth int    `yaml:"exploration_depth"`
	RandomSubsetMode string `yaml:"random_subset_mode"`
	RandomSubsetSize int    `yaml:"random_subset_size"`
	ExpansionType    string `yaml:"expansion_type"`
	Degree           int    `yaml:"degree"`
	MaxNodesPerHop   int    `yaml:"max_nodes_per_hop"`
	NumberOfNodes    int    `yaml:"number_of_nodes"`
}

// Graph mirrors datamodel.GraphConfig with yaml tags.
type Graph struct {
	MinWeight          float64 `yaml:"min_weight"`
	MinDegree          int     `yaml:"min_degree"`
	AsUndirected       bool    `yaml:"as_undirected"`
	CommunityDetection bool    `yaml:"community_detection"`
	MinCommunitySize   int     `yaml:"min_community_size"`
}

// Logging configures the CLI's telemetry.Logger.
type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Synthetic configures the demo's Barabasi-Albert fixture graph, used when
// no live backend is wired in.
type Synthetic struct {
	Nodes     int   `yaml:"nodes"`
	Edges     int   `yaml:"edges"`
	Seed      int64 `yaml:"seed"`
	MinDegree int   `yaml:"min_degree"`
}

// Load reads and parses a YAML run file from path.
func Load(path string) (*Run, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	var r Run
	if err := yaml.Unmarshal(b, &r); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return &r, nil
}

// ToDataModel converts r into the sampler's native config type.
func (r *Run) ToDataModel() datamodel.Config {
	return datamodel.Config{
		DataCollection: datamodel.DataCollectionConfig{
			ExplorationDepth: r.DataCollection.ExplorationDepth,
			RandomSubsetMode: datamodel.SubsetMode(r.DataCollection.RandomSubsetMode),
			RandomSubsetSize: r.DataCollection.RandomSubsetSize,
			ExpansionType:    datamodel.ExpansionPolicy(r.DataCollection.ExpansionType),
			Degree:           r.DataCollection.Degree,
			MaxNodesPerHop:   r.DataCollection.MaxNodesPerHop,
			NumberOfNodes:    r.DataCollection.NumberOfNodes,
		},
		Graph: datamodel.GraphConfig{
			MinWeight:          r.Graph.MinWeight,
			MinDegree:          r.Graph.MinDegree,
			AsUndirected:       r.Graph.AsUndirected,
			CommunityDetection: r.Graph.CommunityDetection,
			MinCommunitySize:   r.Graph.MinCommunitySize,
		},
	}
}

// LoggerConfig converts r's Logging section into a telemetry.LoggerConfig.
func (r *Run) LoggerConfig() telemetry.LoggerConfig {
	return telemetry.LoggerConfig{
		Level:  telemetry.Level(r.Logging.Level),
		Format: telemetry.Format(r.Logging.Format),
	}
}

// SeedIDs converts r.Seeds into datamodel.NodeID values.
func (r *Run) SeedIDs() []datamodel.NodeID {
	out := make([]datamodel.NodeID, len(r.Seeds))
	for i, s := range r.Seeds {
		out[i] = datamodel.NodeID(s)
	}
	return out
}
