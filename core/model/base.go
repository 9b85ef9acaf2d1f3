package model

// EstimatorState は変換器・推定器の学習状態を表す
type EstimatorState int

const (
	// NotFitted は未学習（変換に必要なパラメータが未確定）の状態
	NotFitted EstimatorState = iota
	// Fitted は学習済み（変換に必要なパラメータが確定済み）の状態
	Fitted
)

// BaseEstimator は全ての変換器・推定器の基底となる構造体
type BaseEstimator struct {
	state EstimatorState
}

// IsFitted は学習済みかどうかを返す
func (e *BaseEstimator) IsFitted() bool {
	return e.state == Fitted
}

// SetFitted は学習済み状態に設定する
func (e *BaseEstimator) SetFitted() {
	e.state = Fitted
}

// Reset は初期状態にリセットする
// 学習済みパラメータを無効化する設定変更が行われた場合に呼び出す
func (e *BaseEstimator) Reset() {
	e.state = NotFitted
}
