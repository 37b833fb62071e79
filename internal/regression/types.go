// Package regression loads a pre-trained gradient-boosted regression
// pipeline from its JSON artifact and runs single-row inference.
//
// The artifact is an export of the trained pipeline: column schema,
// optional standard-scaler step, base value and the boosted trees with
// leaf values already scaled by the learning rate. The pipeline itself
// is immutable once loaded and safe for concurrent Predict calls.
package regression

// Artifact is the on-disk JSON representation of the trained pipeline.
type Artifact struct {
	Name        string   `json:"name"`
	Schema      []string `json:"schema"`
	TargetUnits string   `json:"target_units"`
	Scaler      *Scaler  `json:"scaler,omitempty"`
	BaseValue   float64  `json:"base_value"`
	Trees       []Tree   `json:"trees"`
}

// Scaler is an optional standardization step applied before the trees.
type Scaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// Tree is a single regression tree with flattened nodes.
// Node 0 is the root.
type Tree struct {
	Nodes []Node `json:"nodes"`
}

// Node is one tree node. Feature == -1 marks a leaf, in which case
// Value holds the (learning-rate-scaled) leaf output.
type Node struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Value     float64 `json:"value"`
}

// Row is a single named-column input row for prediction.
// Column names and order must match the artifact schema exactly.
type Row struct {
	Columns []string
	Values  []float64
}

// Info is artifact metadata exposed for operability.
type Info struct {
	Name        string   `json:"name"`
	Schema      []string `json:"schema"`
	TargetUnits string   `json:"target_units"`
	TreeCount   int      `json:"tree_count"`
	HasScaler   bool     `json:"has_scaler"`
}
