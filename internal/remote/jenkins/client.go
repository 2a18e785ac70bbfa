package jenkins

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"sync"

	"cnb.cool/zhiqiangwang/pkg/logx"
	"github.com/bndr/gojenkins"
	"github.com/nrjohnstone/cctray-jenkins-transport/internal/model"
	"github.com/nrjohnstone/cctray-jenkins-transport/internal/transport"
)

// folderClass Jenkins 文件夹类型的 Java 类名
const folderClass = "com.cloudbees.hudson.plugins.folder.Folder"

// Client Jenkins 客户端, 实现 transport.ApiClient
// 连接的建立与复位由内部互斥锁保护, 可被并发调用。
type Client struct {
	url         string
	credentials model.Credentials
	httpClient  *http.Client

	mu      sync.Mutex
	jenkins *gojenkins.Jenkins
}

// NewClient 创建 Jenkins 客户端
func NewClient(url string, credentials model.Credentials, httpClient *http.Client) *Client {
	return &Client{
		url:         url,
		credentials: credentials,
		httpClient:  httpClient,
	}
}

// connect 连接到 Jenkins 并返回连接实例, 已连接时直接复用
func (c *Client) connect(ctx context.Context) (*gojenkins.Jenkins, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.jenkins != nil {
		return c.jenkins, nil
	}

	jenkins := gojenkins.CreateJenkins(c.httpClient, c.url, c.credentials.Username, c.credentials.Token)
	if _, err := jenkins.Init(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to Jenkins: %w", err)
	}

	c.jenkins = jenkins
	return c.jenkins, nil
}

// GetAllJobs 获取所有任务
func (c *Client) GetAllJobs(ctx context.Context) ([]*model.Job, error) {
	jenkins, err := c.connect(ctx)
	if err != nil {
		return nil, err
	}

	jobs, err := jenkins.GetAllJobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all jobs: %w", err)
	}

	logx.Debug("Fetched Jenkins jobs, count %d", len(jobs))

	result := make([]*model.Job, 0, len(jobs))
	for _, job := range jobs {
		// 跳过文件夹类型
		if job.Raw.Class == folderClass {
			continue
		}

		result = append(result, convertJob(job))
	}

	return result, nil
}

// Login 验证凭据并返回授权令牌
// Jenkins 使用 Basic 认证, 令牌即编码后的凭据。
func (c *Client) Login(ctx context.Context) (string, error) {
	if _, err := c.connect(ctx); err != nil {
		return "", err
	}

	blob := base64.StdEncoding.EncodeToString([]byte(c.credentials.Username + ":" + c.credentials.Token))

	logx.Info("Jenkins login verified, url %s, username %s", c.url, c.credentials.Username)

	return "Basic " + blob, nil
}

// Logout 注销远端会话
// Jenkins 的 API token 会话无需远端注销, 这里只复位连接。
func (c *Client) Logout(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.jenkins = nil
	return nil
}

// HealthCheck 健康检查
func (c *Client) HealthCheck(ctx context.Context) error {
	jenkins, err := c.connect(ctx)
	if err != nil {
		return err
	}

	if jenkins == nil {
		return fmt.Errorf("jenkins client is nil")
	}

	logx.Debug("Health check passed, url %s", c.url)
	return nil
}

// convertJob 将 Jenkins Job 转换为统一的 Job 模型
func convertJob(job *gojenkins.Job) *model.Job {
	modelJob := &model.Job{
		Name:      job.GetName(),
		Color:     job.Raw.Color,
		URL:       job.Raw.URL,
		Buildable: job.Raw.Buildable,
	}

	// 最后构建信息
	if job.Raw.LastBuild.Number > 0 {
		modelJob.LastBuild = &model.Build{
			Number: int(job.Raw.LastBuild.Number),
			URL:    job.Raw.LastBuild.URL,
		}
	}

	return modelJob
}

// ClientFactory Jenkins 客户端工厂, 实现 transport.Factory
type ClientFactory struct{}

// Create 创建绑定到指定服务器的客户端
func (ClientFactory) Create(url string, credentials model.Credentials, httpClient *http.Client) (transport.ApiClient, error) {
	if url == "" {
		return nil, fmt.Errorf("url is required")
	}

	return NewClient(url, credentials, httpClient), nil
}

func init() {
	transport.Register("jenkins", ClientFactory{})
}
