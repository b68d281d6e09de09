package config

// Config 配置主体
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Mongo     MongoConfig     `mapstructure:"mongo"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Spotify   SpotifyConfig   `mapstructure:"spotify"`
	SendGrid  SendGridConfig  `mapstructure:"sendgrid"`
	Valuation ValuationConfig `mapstructure:"valuation"`
	Cron      CronConfig      `mapstructure:"cron"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// MongoConfig MongoDB配置
type MongoConfig struct {
	URL      string `mapstructure:"url"`
	Database string `mapstructure:"database"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// SpotifyConfig Spotify开放接口凭据
type SpotifyConfig struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	TokenURL     string `mapstructure:"token_url"`
	APIBaseURL   string `mapstructure:"api_base_url"`
}

// SendGridConfig 邮件投递配置
type SendGridConfig struct {
	APIKey    string `mapstructure:"api_key"`
	FromEmail string `mapstructure:"from_email"`
	BaseURL   string `mapstructure:"base_url"`
}

// ValuationConfig 金币估值策略配置
type ValuationConfig struct {
	// Policy 取值 curve / percentile / tiered
	Policy string `mapstructure:"policy"`
}

// CronConfig 定时任务开关
type CronConfig struct {
	Enable bool `mapstructure:"enable"`
}
