package transport

import (
	"context"
	"net/http"

	"github.com/nrjohnstone/cctray-jenkins-transport/internal/model"
)

// ApiClient 远程任务列表 API 的统一接口
type ApiClient interface {
	// GetAllJobs 获取所有任务, 保持服务端返回顺序
	GetAllJobs(ctx context.Context) ([]*model.Job, error)

	// Login 获取授权令牌
	Login(ctx context.Context) (string, error)

	// Logout 注销远端会话, 尽力而为
	Logout(ctx context.Context) error

	// HealthCheck 健康检查
	HealthCheck(ctx context.Context) error
}

// Factory 构造绑定到指定服务器的 ApiClient
type Factory interface {
	// Create 使用注入的 HTTP 传输创建客户端
	Create(url string, credentials model.Credentials, httpClient *http.Client) (ApiClient, error)
}
