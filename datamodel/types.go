// File: types.go
// Role: core data vocabulary shared by policy, sampler, and graphbuild.
// Determinism:
//   - NodeID is an opaque comparable token; the sampler never inspects it.
//   - Row ordering within EdgeTable/NodeTable is caller-significant: both
//     driver and assembler rely on append order, never on a sort.
package datamodel

import "fmt"

// NodeID is an opaque, hashable, equality-comparable node token.
type NodeID string

// EdgeRow is one row of a per-hop edge table.
//
// DegreeSource and DegreeTarget are populated by the policy package once
// per hop, over the out-edges table only; they are zero until then.
type EdgeRow struct {
	Source       NodeID
	Target       NodeID
	Weight       float64
	DegreeSource float64
	DegreeTarget float64
	Extra        map[string]interface{}
}

// EdgeTable is an ordered sequence of edge rows.
type EdgeTable []EdgeRow

// Targets returns the target NodeIDs of t, duplicates included, in order.
func (t EdgeTable) Targets() []NodeID {
	out := make([]NodeID, len(t))
	for i, row := range t {
		out[i] = row.Target
	}
	return out
}

// NodeRow is one row of accumulated per-node metadata.
// SpikyballHop records the depth at which the node was first expanded.
type NodeRow struct {
	ID         NodeID
	SpikyballHop uint32
	Attrs      map[string]interface{}
}

// NodeTable is an ordered sequence of node rows.
type NodeTable []NodeRow

// Accumulator is the backend-owned, opaque fold of per-node metadata
// partials across the whole run. The driver calls Update once per
// processed node and never inspects the internal value.
type Accumulator interface {
	// Update folds partial into the accumulator's state and returns the
	// updated accumulator. Update is not required to be commutative or
	// associative; the driver always calls it in hop, then in-hop order.
	Update(partial Accumulator) Accumulator
}

// Backend is the lazy neighbor oracle and per-hop metadata producer that
// the driver consults once per frontier node. Implementations are the
// only components permitted to perform I/O; every call is treated as
// potentially slow, and panics must not escape (fail soft into an empty
// result instead, per the BackendTransient contract).
type Backend interface {
	// CreateNodeInfo returns a fresh, empty accumulator.
	CreateNodeInfo() Accumulator

	// GetNeighbors fetches the outgoing edges of node. edges.Source is
	// always equal to node. On a transient failure, implementations must
	// return a zero-value partial, an empty EdgeTable, and a nil error
	// rather than letting the failure escape. A non-nil error marks an
	// unrecoverable (BackendFatal) failure: the driver aborts the run
	// immediately and discards the partial result.
	GetNeighbors(node NodeID) (partial Accumulator, edges EdgeTable, err error)

	// Filter applies backend-specific pruning to edges and, optionally,
	// to the partial accumulator. Filter must be pure with respect to
	// any caller-owned state. A non-nil error has the same BackendFatal
	// effect as one from GetNeighbors.
	Filter(partial Accumulator, edges EdgeTable) (Accumulator, EdgeTable, error)

	// NeighborsWithWeights projects edges onto their unique targets with
	// a backend-chosen weight, currently used only as a presence signal.
	NeighborsWithWeights(edges EdgeTable) map[NodeID]float64

	// AddGraphAttributes decorates the assembled graph g once, at the end
	// of the run, with data drawn from nodes, edges, and the final
	// accumulator. The concrete graph type is graphbuild's; Backend stays
	// generic by accepting it as interface{} and type-asserting inside
	// the implementation that knows the concrete type.
	AddGraphAttributes(g interface{}, nodes NodeTable, edges EdgeTable, acc Accumulator) interface{}
}

// ExpansionPolicy names one of the five edge-weighting schemes of the
// probability model (§4.2 of the governing design).
type ExpansionPolicy string

// The five supported expansion policies.
const (
	PolicySpikyBall    ExpansionPolicy = "spikyball"
	PolicyHubBall      ExpansionPolicy = "hubball"
	PolicyCoreBall     ExpansionPolicy = "coreball"
	PolicyFireBall     ExpansionPolicy = "fireball"
	PolicyFireCoreBall ExpansionPolicy = "firecoreball"
)

// SubsetMode names a sizing mode for the random subset selector.
type SubsetMode string

const (
	ModeConstant SubsetMode = "constant"
	ModePercent  SubsetMode = "percent"
)

// DataCollectionConfig groups the hop-loop and probability-model
// parameters (the "data_collection" section of the external config).
type DataCollectionConfig struct {
	ExplorationDepth int             // number of hops, >= 2
	RandomSubsetMode SubsetMode      // "constant" or "percent"
	RandomSubsetSize int             // interpreted per mode
	ExpansionType    ExpansionPolicy // one of the five policies
	Degree           int             // exponent k, >= 0
	MaxNodesPerHop   int             // > 0
	NumberOfNodes    int             // global cap; 0 means unset
}

// GraphConfig groups the graph-assembly parameters (the "graph" section).
type GraphConfig struct {
	MinWeight         float64 // >= 0
	MinDegree         int     // >= 0
	AsUndirected      bool
	CommunityDetection bool
	MinCommunitySize  int
}

// Config is the top-level configuration passed to Explore.
type Config struct {
	DataCollection DataCollectionConfig
	Graph          GraphConfig
}

// ProgressFunc is invoked at the end of each hop with the depth just
// completed and the configured total depth.
type ProgressFunc func(currentDepth, totalDepth int)

// Error is the sampler's single error type, tagged by Kind so callers can
// branch with errors.Is against the three sentinel Kinds below.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("spikyball: %s: %s", e.Kind, e.Message)
}

// ErrorKind tags an Error by the taxonomy of §7: ConfigError is the only
// kind the driver itself raises; BackendFatal is propagated unchanged
// from a Backend; BackendTransient never reaches the driver by contract.
type ErrorKind string

const (
	KindConfigError      ErrorKind = "ConfigError"
	KindBackendFatal     ErrorKind = "BackendFatal"
	KindBackendTransient ErrorKind = "BackendTransient"
)

// NewConfigError builds a ConfigError-kind Error with a formatted message.
func NewConfigError(format string, args ...interface{}) *Error {
	return &Error{Kind: KindConfigError, Message: fmt.Sprintf(format, args...)}
}

// NewBackendFatal builds a BackendFatal-kind Error with a formatted
// message. Backend implementations use this to surface an unrecoverable
// failure (e.g. authentication) from GetNeighbors or Filter; the driver
// propagates it to the caller unchanged and discards the partial result.
func NewBackendFatal(format string, args ...interface{}) *Error {
	return &Error{Kind: KindBackendFatal, Message: fmt.Sprintf(format, args...)}
}
