package config

// DefaultProposalCost 提案1件あたりの消費ポイント既定値
const DefaultProposalCost = 300

// Points ポイント制度の設定
// 提案コストの唯一の出典。提案作成時に points_used へ焼き込まれる。
type Points struct {
	ProposalCost int64 `json:"proposal_cost" yaml:"proposal_cost"`
}
