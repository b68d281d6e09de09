package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Cfg 全局配置实例，LoadConfig 成功后即可读
var Cfg *Config

// LoadConfig 读取 ./configs/config.yaml 并填充 Cfg
// api 服务和各批处理 CLI 共用同一份配置
func LoadConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return fmt.Errorf("config file not found: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	Cfg = &cfg
	return nil
}
