package model

// ServerConfig CI 服务器连接配置
type ServerConfig struct {
	URL      string `json:"url"`
	Project  string `json:"project"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

// Credentials 访问凭据
type Credentials struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}

// Credentials 提取配置中的凭据
func (c *ServerConfig) Credentials() Credentials {
	return Credentials{
		Username: c.Username,
		Token:    c.Token,
	}
}
