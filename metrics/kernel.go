// Package metrics はカーネル近似の品質を測定するための関数を提供する
package metrics

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/scikern/core/model"
	"github.com/YuminosukeSato/scikern/pkg/errors"
)

// GaussianKernel はガウスカーネル exp(-‖x-y‖² / (2·width²)) の真値を計算する
// 近似品質の基準値として使用する
func GaussianKernel(x, y []float64, width float64) (float64, error) {
	if width <= 0 {
		return 0, errors.NewValidationError("width", "must be positive", width)
	}
	if len(x) == 0 {
		return 0, errors.NewValueError("GaussianKernel", "empty vector")
	}
	if len(x) != len(y) {
		return 0, errors.NewDimensionError("GaussianKernel", len(x), len(y), 1)
	}

	var sumSq float64
	for i := range x {
		diff := x[i] - y[i]
		sumSq += diff * diff
	}
	return math.Exp(-sumSq / (2.0 * width * width)), nil
}

// ApproximationError は変換後の特徴ベクトル同士の内積とガウスカーネル真値の
// 平均絶対誤差を全サンプルペアにわたって計算する
//
// 変換器はTransformVectorで1行ずつ適用され、Xはn_samples × n_features
// の行列として解釈される
func ApproximationError(t model.VectorTransformer, X mat.Matrix, width float64) (float64, error) {
	r, c := X.Dims()
	if r < 2 || c == 0 {
		return 0, errors.NewValueError("ApproximationError", "need at least two non-empty samples")
	}

	rows := make([][]float64, r)
	features := make([][]float64, r)
	for i := 0; i < r; i++ {
		rows[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			rows[i][j] = X.At(i, j)
		}
		y, err := t.TransformVector(rows[i])
		if err != nil {
			return 0, err
		}
		features[i] = y
	}

	var sum float64
	var pairs int
	for i := 0; i < r; i++ {
		for j := i + 1; j < r; j++ {
			truth, err := GaussianKernel(rows[i], rows[j], width)
			if err != nil {
				return 0, err
			}
			approx := floats.Dot(features[i], features[j])
			sum += math.Abs(approx - truth)
			pairs++
		}
	}
	return sum / float64(pairs), nil
}
