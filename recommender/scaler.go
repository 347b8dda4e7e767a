package recommender

import (
	"fmt"
	"math"
)

// Scaler standardizes columns to zero mean and unit variance using statistics
// fitted on a pool. Columns with zero variance use a scale of 1, so pool
// values in those columns become 0 instead of NaN.
type Scaler struct {
	Mean  []float64
	Scale []float64
}

// FitScaler computes per-column mean and population standard deviation.
func FitScaler(matrix [][]float64) (*Scaler, error) {
	if len(matrix) == 0 {
		return nil, fmt.Errorf("%w: cannot fit scaler on an empty matrix", ErrInvalidInput)
	}

	cols := len(matrix[0])
	mean := make([]float64, cols)
	for i, row := range matrix {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidInput, i, len(row), cols)
		}
		for j, v := range row {
			mean[j] += v
		}
	}
	n := float64(len(matrix))
	for j := range mean {
		mean[j] /= n
	}

	scale := make([]float64, cols)
	for _, row := range matrix {
		for j, v := range row {
			d := v - mean[j]
			scale[j] += d * d
		}
	}
	for j := range scale {
		std := math.Sqrt(scale[j] / n)
		if std == 0 || math.IsNaN(std) || math.IsInf(std, 0) {
			std = 1
		}
		scale[j] = std
	}

	return &Scaler{Mean: mean, Scale: scale}, nil
}

// Transform returns a standardized copy of one vector.
func (s *Scaler) Transform(vector []float64) []float64 {
	out := make([]float64, len(vector))
	for j, v := range vector {
		out[j] = (v - s.Mean[j]) / s.Scale[j]
	}
	return out
}

// TransformAll returns a standardized copy of a matrix.
func (s *Scaler) TransformAll(matrix [][]float64) [][]float64 {
	out := make([][]float64, len(matrix))
	for i, row := range matrix {
		out[i] = s.Transform(row)
	}
	return out
}
