package model

import "gonum.org/v1/gonum/mat"

// Transformer はデータ変換のインターフェース
// 前処理パイプラインは変換器をこのインターフェース経由でのみ扱う
type Transformer interface {
	// Fit は変換に必要なパラメータを学習する
	Fit(X mat.Matrix) error

	// Transform はデータを変換する
	Transform(X mat.Matrix) (mat.Matrix, error)

	// FitTransform はFitとTransformを同時に実行する
	FitTransform(X mat.Matrix) (mat.Matrix, error)
}

// VectorTransformer は単一サンプルのストリーミング変換をサポートする
// 変換器のインターフェース
type VectorTransformer interface {
	// TransformVector は1つの特徴ベクトルを変換する
	TransformVector(x []float64) ([]float64, error)
}
