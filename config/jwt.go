package config

// Jwt アクセストークン設定
type Jwt struct {
	Secret        string `json:"secret" yaml:"secret"`
	ExpireMinutes int    `json:"expire_minutes" yaml:"expire_minutes"`
}
