package regression

import (
	"encoding/json"
	"fmt"
	"os"
)

// Pipeline is a loaded, immutable regression pipeline.
type Pipeline struct {
	artifact Artifact
}

// Load reads and validates a pipeline artifact from disk.
func Load(path string) (*Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact %s: %w", path, err)
	}
	return Parse(data)
}

// Parse builds a pipeline from raw artifact JSON.
func Parse(data []byte) (*Pipeline, error) {
	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArtifact, err)
	}
	if err := validateArtifact(a); err != nil {
		return nil, err
	}
	return &Pipeline{artifact: a}, nil
}

func validateArtifact(a Artifact) error {
	if len(a.Schema) == 0 {
		return fmt.Errorf("%w: empty schema", ErrInvalidArtifact)
	}
	if len(a.Trees) == 0 {
		return fmt.Errorf("%w: no trees", ErrInvalidArtifact)
	}
	if a.Scaler != nil {
		if len(a.Scaler.Mean) != len(a.Schema) || len(a.Scaler.Scale) != len(a.Schema) {
			return fmt.Errorf("%w: scaler dimensions do not match schema", ErrInvalidArtifact)
		}
		for i, s := range a.Scaler.Scale {
			if s == 0 {
				return fmt.Errorf("%w: scaler scale[%d] is zero", ErrInvalidArtifact, i)
			}
		}
	}
	for ti, tree := range a.Trees {
		if len(tree.Nodes) == 0 {
			return fmt.Errorf("%w: tree %d has no nodes", ErrInvalidArtifact, ti)
		}
		for ni, n := range tree.Nodes {
			if n.Feature < 0 {
				continue // leaf
			}
			if n.Feature >= len(a.Schema) {
				return fmt.Errorf("%w: tree %d node %d references feature %d", ErrInvalidArtifact, ti, ni, n.Feature)
			}
			if n.Left < 0 || n.Left >= len(tree.Nodes) || n.Right < 0 || n.Right >= len(tree.Nodes) {
				return fmt.Errorf("%w: tree %d node %d has out-of-range children", ErrInvalidArtifact, ti, ni)
			}
			// children must point forward, otherwise traversal could loop
			if n.Left <= ni || n.Right <= ni {
				return fmt.Errorf("%w: tree %d node %d has non-forward children", ErrInvalidArtifact, ti, ni)
			}
		}
	}
	return nil
}

// Predict runs the pipeline on a single row and returns the predicted
// half-marathon duration in the artifact's target units (seconds).
func (p *Pipeline) Predict(row Row) (float64, error) {
	if err := p.checkSchema(row); err != nil {
		return 0, err
	}

	features := row.Values
	if p.artifact.Scaler != nil {
		scaled := make([]float64, len(features))
		for i, v := range features {
			scaled[i] = (v - p.artifact.Scaler.Mean[i]) / p.artifact.Scaler.Scale[i]
		}
		features = scaled
	}

	sum := p.artifact.BaseValue
	for _, tree := range p.artifact.Trees {
		sum += evalTree(tree, features)
	}
	return sum, nil
}

// checkSchema enforces exact column name and order match with the
// schema the artifact was fit on.
func (p *Pipeline) checkSchema(row Row) error {
	if len(row.Columns) != len(p.artifact.Schema) {
		return fmt.Errorf("%w: got %d columns, want %d", ErrSchemaMismatch, len(row.Columns), len(p.artifact.Schema))
	}
	if len(row.Values) != len(row.Columns) {
		return fmt.Errorf("%w: %d values for %d columns", ErrSchemaMismatch, len(row.Values), len(row.Columns))
	}
	for i, col := range row.Columns {
		if col != p.artifact.Schema[i] {
			return fmt.Errorf("%w: column %d is %q, want %q", ErrSchemaMismatch, i, col, p.artifact.Schema[i])
		}
	}
	return nil
}

func evalTree(tree Tree, features []float64) float64 {
	i := 0
	for {
		n := tree.Nodes[i]
		if n.Feature < 0 {
			return n.Value
		}
		if features[n.Feature] <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
}

// Info returns artifact metadata.
func (p *Pipeline) Info() Info {
	return Info{
		Name:        p.artifact.Name,
		Schema:      append([]string(nil), p.artifact.Schema...),
		TargetUnits: p.artifact.TargetUnits,
		TreeCount:   len(p.artifact.Trees),
		HasScaler:   p.artifact.Scaler != nil,
	}
}

// Schema returns the column names the pipeline was fit on, in order.
func (p *Pipeline) Schema() []string {
	return append([]string(nil), p.artifact.Schema...)
}
