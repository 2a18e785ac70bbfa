package config

// Config 全局配置
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Jenkins JenkinsConfig `mapstructure:"jenkins"`
	Cache   CacheConfig   `mapstructure:"cache"`
}

// ServerConfig 服务端配置
type ServerConfig struct {
	HTTP HTTPConfig `mapstructure:"http"`
}

// HTTPConfig HTTP 服务配置
type HTTPConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Port    int  `mapstructure:"port"`
	Debug   bool `mapstructure:"debug"`
}

// JenkinsConfig Jenkins 连接配置
type JenkinsConfig struct {
	URL      string `mapstructure:"url"`
	Project  string `mapstructure:"project"`
	Username string `mapstructure:"username"`
	Token    string `mapstructure:"token"`
}

// CacheConfig 任务缓存配置
type CacheConfig struct {
	TTL int `mapstructure:"ttl"` // 秒
}
