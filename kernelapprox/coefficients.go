package kernelapprox

import (
	"github.com/YuminosukeSato/scikern/pkg/errors"
)

// CoefficientSet はRBFSamplerの乱数係数一式を保持する値型
// 2つのサンプラーが同一のCoefficientSetを持つ場合に限り、
// それぞれの変換結果の内積は相互に比較可能になる
type CoefficientSet struct {
	// Additive は位相オフセット（[0, 2π)の一様乱数、長さ OutputDim）
	Additive []float64

	// Multiplicative は射影方向（平均0・標準偏差1/カーネル幅のガウス乱数）
	// OutputDim × InputDim の行優先の連続バッファとして保持する
	Multiplicative []float64

	// OutputDim は乱数特徴空間の次元数
	OutputDim int

	// InputDim は係数生成時の入力特徴空間の次元数
	InputDim int
}

// newCoefficientSet は指定した形状のゼロ初期化済みCoefficientSetを作成する
func newCoefficientSet(outputDim, inputDim int) *CoefficientSet {
	return &CoefficientSet{
		Additive:       make([]float64, outputDim),
		Multiplicative: make([]float64, outputDim*inputDim),
		OutputDim:      outputDim,
		InputDim:       inputDim,
	}
}

// Clone は係数バッファを深くコピーした独立なCoefficientSetを返す
// 共有・参照セマンティクスはインスタンス間に一切漏れない
func (cs *CoefficientSet) Clone() *CoefficientSet {
	if cs == nil {
		return nil
	}
	clone := newCoefficientSet(cs.OutputDim, cs.InputDim)
	copy(clone.Additive, cs.Additive)
	copy(clone.Multiplicative, cs.Multiplicative)
	return clone
}

// Row は出力次元iに対応する射影方向ベクトル（長さ InputDim）を返す
// 返り値は内部バッファへのビューであり、変更してはならない
func (cs *CoefficientSet) Row(i int) []float64 {
	return cs.Multiplicative[i*cs.InputDim : (i+1)*cs.InputDim]
}

// At は射影方向テーブルの要素 (i, j) を返す
func (cs *CoefficientSet) At(i, j int) float64 {
	return cs.Multiplicative[i*cs.InputDim+j]
}

// Equal は2つのCoefficientSetが完全に一致する（形状と全要素がビット単位で
// 等しい）かどうかを判定する
func (cs *CoefficientSet) Equal(other *CoefficientSet) bool {
	if cs == nil || other == nil {
		return cs == other
	}
	if cs.OutputDim != other.OutputDim || cs.InputDim != other.InputDim {
		return false
	}
	for i, v := range cs.Additive {
		if other.Additive[i] != v {
			return false
		}
	}
	for i, v := range cs.Multiplicative {
		if other.Multiplicative[i] != v {
			return false
		}
	}
	return true
}

// validate は宣言された次元とバッファ長の整合性を検証する
func (cs *CoefficientSet) validate() error {
	if cs.OutputDim <= 0 {
		return errors.NewValidationError("output_dim", "must be positive", cs.OutputDim)
	}
	if cs.InputDim <= 0 {
		return errors.NewValidationError("input_dim", "must be positive", cs.InputDim)
	}
	if len(cs.Additive) != cs.OutputDim {
		return errors.NewValidationError("additive",
			"length must equal output_dim", len(cs.Additive))
	}
	if len(cs.Multiplicative) != cs.OutputDim*cs.InputDim {
		return errors.NewValidationError("multiplicative",
			"length must equal output_dim*input_dim", len(cs.Multiplicative))
	}
	return nil
}
