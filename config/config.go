package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 設定情報（プロセス起動時に一度だけ構築し、DI で各コンポーネントへ渡す）
type Config struct {
	App    *App    `json:"app" yaml:"app"`
	Server *Server `json:"server" yaml:"server"`
	MySQL  *MySQL  `json:"mysql" yaml:"mysql"`
	Redis  *Redis  `json:"redis" yaml:"redis"`
	Jwt    *Jwt    `json:"jwt" yaml:"jwt"`
	Points *Points `json:"points" yaml:"points"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

func New(filename string) *Config {

	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		panic(fmt.Sprintf("config.yaml の解析に失敗: %v", err))
	}

	if conf.Points == nil {
		conf.Points = &Points{}
	}
	if conf.Points.ProposalCost <= 0 {
		conf.Points.ProposalCost = DefaultProposalCost
	}

	return &conf
}

// Debug デバッグモード
func (c *Config) Debug() bool {
	return c.App.Debug
}
