package kernelapprox

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/scikern/core/model"
	"github.com/YuminosukeSato/scikern/core/parallel"
	"github.com/YuminosukeSato/scikern/pkg/errors"
)

// parallelThreshold はTransformでサンプル単位の並列化を行う最小行数
const parallelThreshold = 64

// FeatureKind はサンプラーが受け付ける特徴量の種類を表す
type FeatureKind int

const (
	// FeatureKindDenseReal は密な実数値特徴行列
	FeatureKindDenseReal FeatureKind = iota
)

// String はFeatureKindの文字列表現を返す
func (k FeatureKind) String() string {
	switch k {
	case FeatureKindDenseReal:
		return "dense-real"
	default:
		return fmt.Sprintf("FeatureKind(%d)", int(k))
	}
}

// RBFSampler はガウス（RBF）カーネルをRandom Fourier Featuresで近似する変換器
// scikit-learnのRBFSamplerと同じ役割を持つ
//
// カーネルは exp(-‖x-y‖² / (2·kernelWidth²)) の形で定義され、
// 変換後の特徴ベクトル同士の内積が出力次元数の増加とともに
// このカーネル値へ収束する
//
// 利用方法は2通りある:
//
// (1) 乱数係数を新規に生成する場合
//
//	sampler := kernelapprox.NewRBFSampler(
//	    kernelapprox.WithKernelWidth(2.0),
//	    kernelapprox.WithOutputDim(1024),
//	)
//	features, err := sampler.FitTransform(X)
//
// (2) 既存のサンプラーと互換な特徴を別データに対して計算する場合
// （例: 訓練データとテストデータを別々に変換する場合）
//
//	cs, err := trainSampler.Coefficients()
//	err = testSampler.SetCoefficients(cs)
//	features, err := testSampler.Transform(XTest)
//
// (2)の経路でのみ2つのサンプラーの互換性が保証される
// 係数の受け渡しなしに独立へ生成した2つのサンプラーの出力を
// 混在させてはならない
type RBFSampler struct {
	model.BaseEstimator

	// ハイパーパラメータ
	kernelWidth    float64 // ガウスカーネル幅 σ
	hasKernelWidth bool    // kernelWidthが設定済みかどうか
	inputDim       int     // 入力特徴空間の次元数（0は未設定）
	outputDim      int     // 乱数特徴空間の次元数（0は未設定）
	randomState    int64   // 乱数シード（負値は時刻シード）

	// 学習パラメータ
	coeffs      *CoefficientSet // 有効な乱数係数（nilは未生成）
	curInputDim int             // coeffsに焼き込まれた入力次元数

	// 内部状態
	rng          *rand.Rand
	generatedNew bool // 直近のFit/EnsureCoefficientsで新規生成したか
}

// NewRBFSampler は新しいRBFSamplerを作成する
//
// デフォルトではカーネル幅・次元数は未設定であり、変換前に
// オプションまたはセッターで設定する必要がある
// 入力次元数はFit時にデータから自動的に読み取られる
func NewRBFSampler(options ...Option) *RBFSampler {
	s := &RBFSampler{
		randomState: -1,
	}

	for _, opt := range options {
		opt(s)
	}

	if s.rng == nil {
		if s.randomState >= 0 {
			s.rng = rand.New(rand.NewSource(s.randomState))
		} else {
			s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
	}

	return s
}

// SetKernelWidth はガウスカーネル幅 σ を設定する
// 幅は将来の係数生成にのみ影響し、生成済みの係数は無効化しない
func (s *RBFSampler) SetKernelWidth(w float64) error {
	if w <= 0 {
		return errors.NewValidationError("kernel_width", "must be positive", w)
	}
	s.kernelWidth = w
	s.hasKernelWidth = true
	return nil
}

// KernelWidth は設定済みのカーネル幅を返す
// 未設定の場合はNotConfiguredErrorを返す
func (s *RBFSampler) KernelWidth() (float64, error) {
	if !s.hasKernelWidth {
		return 0, errors.NewNotConfiguredError("RBFSampler", "kernel_width")
	}
	return s.kernelWidth, nil
}

// SetInputDim は入力特徴空間の次元数を設定する
// 有効な係数と矛盾する値を設定した場合、サンプラーは再生成が
// 必要な状態に戻る
func (s *RBFSampler) SetInputDim(d int) error {
	if d <= 0 {
		return errors.NewValidationError("input_dim", "must be positive", d)
	}
	s.inputDim = d
	if !s.IsReady() {
		s.Reset()
	}
	return nil
}

// SetOutputDim は乱数特徴空間の次元数を設定する
// 有効な係数と矛盾する値を設定した場合、サンプラーは再生成が
// 必要な状態に戻る
func (s *RBFSampler) SetOutputDim(d int) error {
	if d <= 0 {
		return errors.NewValidationError("output_dim", "must be positive", d)
	}
	s.outputDim = d
	if !s.IsReady() {
		s.Reset()
	}
	return nil
}

// InputDim は設定済みの入力次元数を返す（未設定は0）
func (s *RBFSampler) InputDim() int {
	return s.inputDim
}

// OutputDim は設定済みの出力次元数を返す（未設定は0）
func (s *RBFSampler) OutputDim() int {
	return s.outputDim
}

// CurrentInputDim は有効な係数に焼き込まれた入力次元数を返す
// 係数未生成の場合は0を返す
// SetInputDimで次元を変更しても、係数を再生成するまでこの値は変わらない
func (s *RBFSampler) CurrentInputDim() int {
	return s.curInputDim
}

// IsReady は有効な係数が現在の次元設定と整合しているかどうかを返す
// この判定が再生成要否の唯一の情報源であり、毎回遅延評価される
func (s *RBFSampler) IsReady() bool {
	return s.coeffs != nil &&
		s.curInputDim == s.inputDim &&
		s.coeffs.OutputDim == s.outputDim
}

// EnsureCoefficients は必要な場合に限り乱数係数を生成する
//
// IsReadyがtrueの場合は何もせず (false, nil) を返す
// （乱数は一切消費されず、注入済み係数との互換性が保たれる）
// IsReadyがfalseの場合は新しい係数一式を生成して (true, nil) を返す
//
// 位相は[0, 2π)の一様分布、射影方向の各成分は平均0・標準偏差1/σの
// ガウス分布からサンプリングする（幅σのガウスカーネルのフーリエ変換が
// スペクトル幅1/σのガウス分布になることに基づく）
func (s *RBFSampler) EnsureCoefficients() (bool, error) {
	s.generatedNew = false
	if s.IsReady() {
		return false, nil
	}

	if s.outputDim <= 0 {
		return false, errors.NewInvalidStateError("RBFSampler.EnsureCoefficients",
			"output dimension must be set to a positive value before generating coefficients")
	}
	if s.inputDim <= 0 {
		return false, errors.NewInvalidStateError("RBFSampler.EnsureCoefficients",
			"input dimension must be set to a positive value before generating coefficients")
	}
	width, err := s.KernelWidth()
	if err != nil {
		return false, err
	}

	coeffs := newCoefficientSet(s.outputDim, s.inputDim)
	for i := 0; i < s.outputDim; i++ {
		coeffs.Additive[i] = s.rng.Float64() * 2.0 * math.Pi
		row := coeffs.Row(i)
		for j := range row {
			row[j] = s.rng.NormFloat64() / width
		}
	}

	s.coeffs = coeffs
	s.curInputDim = s.inputDim
	s.generatedNew = true
	s.SetFitted()
	return true, nil
}

// Coefficients は有効な乱数係数の独立なコピーを返す
// 2つ目のサンプラーに同一の乱数を渡すために使用する
// IsReadyがfalseの場合はNotFittedErrorを返す
func (s *RBFSampler) Coefficients() (*CoefficientSet, error) {
	if !s.IsReady() {
		return nil, errors.NewNotFittedError("RBFSampler", "Coefficients")
	}
	return s.coeffs.Clone(), nil
}

// SetCoefficients は乱数係数を注入し、サンプラーを変換可能な状態にする
//
// 入力はコピーされ、呼び出し側のバッファと係数が共有されることはない
// 成功時には入力次元数・出力次元数も係数の宣言値で上書きされる
// これが（同一シードでの独立生成を除き）2つのサンプラーの互換性を
// 保証する唯一の経路である
func (s *RBFSampler) SetCoefficients(cs *CoefficientSet) error {
	if cs == nil {
		return errors.NewValidationError("coefficients", "must not be nil", nil)
	}
	if err := cs.validate(); err != nil {
		return err
	}

	s.coeffs = cs.Clone()
	s.inputDim = cs.InputDim
	s.outputDim = cs.OutputDim
	s.curInputDim = cs.InputDim
	s.generatedNew = false
	s.SetFitted()
	return nil
}

// TransformVector は1つの特徴ベクトルを乱数特徴空間へ変換する
//
// 各出力成分は y[i] = sqrt(2/outputDim) * cos(dot(w_i, x) + b_i) で
// 計算される。sqrt(2/outputDim)の正規化により、変換後ベクトル同士の
// 内積の期待値が出力次元数の増加とともにガウスカーネル値へ収束する
func (s *RBFSampler) TransformVector(x []float64) ([]float64, error) {
	if !s.IsReady() {
		return nil, errors.NewNotFittedError("RBFSampler", "TransformVector")
	}
	if len(x) != s.inputDim {
		return nil, errors.NewDimensionError("RBFSampler.TransformVector", s.inputDim, len(x), 1)
	}

	y := make([]float64, s.outputDim)
	s.transformInto(x, y)
	return y, nil
}

// transformInto は検証済みの入力xを変換してdstへ書き込む
// 共有状態の読み取りのみ行うため、行単位の並列呼び出しに対して安全
func (s *RBFSampler) transformInto(x, dst []float64) {
	scale := math.Sqrt(2.0 / float64(s.outputDim))
	for i := 0; i < s.outputDim; i++ {
		dst[i] = scale * math.Cos(floats.Dot(s.coeffs.Row(i), x)+s.coeffs.Additive[i])
	}
}

// Transform はn_samples × n_featuresの行列の各行を乱数特徴空間へ変換する
//
// 戻り値はn_samples × outputDimの行列
// 各行の変換は独立なため、行数が閾値を超える場合はCPUコア単位で
// 並列実行される
func (s *RBFSampler) Transform(X mat.Matrix) (m mat.Matrix, err error) {
	defer errors.Recover(&err, "RBFSampler.Transform")

	if !s.IsReady() {
		return nil, errors.NewNotFittedError("RBFSampler", "Transform")
	}

	r, c := X.Dims()
	if r == 0 || c == 0 {
		return nil, errors.NewModelError("RBFSampler.Transform", "empty data", errors.ErrEmptyData)
	}
	if c != s.inputDim {
		return nil, errors.NewDimensionError("RBFSampler.Transform", s.inputDim, c, 1)
	}

	result := mat.NewDense(r, s.outputDim, nil)

	parallel.ParallelizeWithThreshold(r, parallelThreshold, func(start, end int) {
		x := make([]float64, c)
		for i := start; i < end; i++ {
			for j := 0; j < c; j++ {
				x[j] = X.At(i, j)
			}
			// 各行は結果行列の互いに素な行へ書き込む
			s.transformInto(x, result.RawRowView(i))
		}
	})

	return result, nil
}

// Fit はデータから入力次元数を読み取り、必要な場合に限り乱数係数を生成する
//
// SetCoefficientsで注入済みの係数は、入力次元数と出力次元数が
// 注入時の値と一致する場合に限り保持される
// 新規生成が行われたかどうかはGeneratedNewCoefficientsで確認できる
// （falseであれば、以前のデータセットの変換結果と互換なままである）
func (s *RBFSampler) Fit(X mat.Matrix) error {
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return errors.NewModelError("RBFSampler.Fit", "empty data", errors.ErrEmptyData)
	}

	if err := s.SetInputDim(c); err != nil {
		return err
	}
	_, err := s.EnsureCoefficients()
	return err
}

// FitTransform は訓練データで学習し、同じデータを変換する
func (s *RBFSampler) FitTransform(X mat.Matrix) (mat.Matrix, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X)
}

// GeneratedNewCoefficients は直近のFitまたはEnsureCoefficientsで
// 新しい乱数係数が生成されたかどうかを返す
// falseであれば既存の係数が保持されており、以前に変換した
// データセットとの互換性が維持されている
func (s *RBFSampler) GeneratedNewCoefficients() bool {
	return s.generatedNew
}

// Clone はサンプラーの独立な複製を返す
// 係数バッファは深くコピーされ、乱数生成器は複製側で新規に作成される
func (s *RBFSampler) Clone() *RBFSampler {
	clone := NewRBFSampler(WithRandomState(s.randomState))
	clone.kernelWidth = s.kernelWidth
	clone.hasKernelWidth = s.hasKernelWidth
	clone.inputDim = s.inputDim
	clone.outputDim = s.outputDim
	clone.curInputDim = s.curInputDim
	clone.coeffs = s.coeffs.Clone()
	if s.IsFitted() {
		clone.SetFitted()
	}
	return clone
}

// AcceptedFeatureKind はこのサンプラーが受け付ける特徴量の種類を返す
// パイプラインが前処理器と特徴行列の適合性を確認するために使用する
func (s *RBFSampler) AcceptedFeatureKind() FeatureKind {
	return FeatureKindDenseReal
}

// Cleanup は前処理パイプラインのライフサイクル契約を満たすための後始末
// 全ての状態が値所有であり外部リソースを持たないため、何もしない
func (s *RBFSampler) Cleanup() {}

// GetParams はサンプラーのハイパーパラメータを取得する
func (s *RBFSampler) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"kernel_width": s.kernelWidth,
		"input_dim":    s.inputDim,
		"output_dim":   s.outputDim,
		"random_state": s.randomState,
	}
}

// String はサンプラーの文字列表現を返す
func (s *RBFSampler) String() string {
	if !s.IsReady() {
		return fmt.Sprintf("RBFSampler(kernel_width=%g, output_dim=%d)",
			s.kernelWidth, s.outputDim)
	}
	return fmt.Sprintf("RBFSampler(kernel_width=%g, output_dim=%d, input_dim=%d)",
		s.kernelWidth, s.outputDim, s.curInputDim)
}
