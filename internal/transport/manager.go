package transport

import (
	"context"
	"net/http"
	"sync"
	"time"

	"cnb.cool/zhiqiangwang/pkg/logx"
	"github.com/nrjohnstone/cctray-jenkins-transport/internal/model"
)

// DefaultCacheTTL 任务缓存的默认有效期
const DefaultCacheTTL = 2 * time.Second

// jobCache 任务缓存
// jobs 与 lastUpdate 必须一起更新, 不允许只更新其中一个。
// jobs 为 nil 表示缓存从未被填充过。
type jobCache struct {
	jobs       []*model.Job
	lastUpdate time.Time
}

// ServerManager 管理单个 CI 服务器的配置、会话和任务缓存
type ServerManager struct {
	mu sync.Mutex

	config      *model.ServerConfig
	projectName string
	credentials model.Credentials

	factory    Factory
	httpClient *http.Client
	client     ApiClient

	clock Clock
	ttl   time.Duration

	cache         jobCache
	authorization string
}

// NewServerManager 创建 ServerManager
// httpClient 为 nil 时由具体的 ApiClient 实现使用默认传输。
func NewServerManager(factory Factory, clock Clock, httpClient *http.Client) *ServerManager {
	if clock == nil {
		clock = SystemClock{}
	}

	return &ServerManager{
		factory:    factory,
		httpClient: httpClient,
		clock:      clock,
		ttl:        DefaultCacheTTL,
	}
}

// SetCacheTTL 覆盖缓存有效期, 非正值被忽略
func (m *ServerManager) SetCacheTTL(ttl time.Duration) {
	if ttl <= 0 {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.ttl = ttl
}

// Initialize 绑定配置并通过工厂构造 ApiClient
// 重复调用会替换已绑定的客户端, 但不清空缓存。
func (m *ServerManager) Initialize(config *model.ServerConfig, projectName string, credentials model.Credentials) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	client, err := m.factory.Create(config.URL, credentials, m.httpClient)
	if err != nil {
		return err
	}

	cfg := *config
	m.config = &cfg
	m.projectName = projectName
	m.credentials = credentials
	m.client = client

	logx.Info("Server manager initialized, url %s, project %s", config.URL, projectName)

	return nil
}

// SetConfiguration 更新服务器配置, 不重建客户端也不触发刷新
func (m *ServerManager) SetConfiguration(config *model.ServerConfig) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cfg := *config
	m.config = &cfg
}

// Configuration 返回当前配置的副本
func (m *ServerManager) Configuration() *model.ServerConfig {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.config == nil {
		return nil
	}

	cfg := *m.config
	return &cfg
}

// AuthorizationInformation 返回当前授权令牌, 未登录时为空字符串
func (m *ServerManager) AuthorizationInformation() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.authorization
}

// Login 通过远程 API 获取授权令牌
// 失败时返回 AuthenticationError, 授权状态保持不变。
func (m *ServerManager) Login(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client == nil {
		return ErrNotInitialized
	}

	token, err := m.client.Login(ctx)
	if err != nil {
		return &AuthenticationError{URL: m.serverURL(), Err: err}
	}

	m.authorization = token

	logx.Info("Login succeeded, url %s", m.serverURL())

	return nil
}

// Logout 清空本地授权状态, 总是成功
// 远端注销失败只记录日志, 不阻塞本地清理。
func (m *ServerManager) Logout(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client != nil {
		if err := m.client.Logout(ctx); err != nil {
			logx.Warn("Remote logout failed, url %s, error %v", m.serverURL(), err)
		}
	}

	m.authorization = ""
}

// GetProjectList 返回任务集合, 缓存过期时先刷新
// 新鲜度判定: now - lastUpdate >= ttl 视为过期。
func (m *ServerManager) GetProjectList(ctx context.Context) ([]*model.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client == nil {
		return nil, ErrNotInitialized
	}

	// 每次调用只取一次时钟, 避免判定与写入之间的时间漂移
	now := m.clock.Now()
	if now.Sub(m.cache.lastUpdate) >= m.ttl {
		if err := m.refreshLocked(ctx, now); err != nil {
			return nil, err
		}
	}

	// 返回副本, 调用方的改动不影响缓存
	jobs := make([]*model.Job, len(m.cache.jobs))
	copy(jobs, m.cache.jobs)

	return jobs, nil
}

// GetCruiseServerSnapshot 构建全量状态快照
// 与 GetProjectList 不同, 只要缓存被填充过就直接读取, 不做 TTL 判定;
// 仅在缓存从未填充时强制刷新一次。
func (m *ServerManager) GetCruiseServerSnapshot(ctx context.Context) (*model.CruiseServerSnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client == nil {
		return nil, ErrNotInitialized
	}

	if m.cache.jobs == nil {
		if err := m.refreshLocked(ctx, m.clock.Now()); err != nil {
			return nil, err
		}
	}

	return model.SnapshotFromJobs(m.cache.jobs), nil
}

// SetAllJobs 直接覆盖缓存中的任务集合, 不更新 lastUpdate
func (m *ServerManager) SetAllJobs(jobs []*model.Job) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cache.jobs = jobs
}

// HealthCheck 健康检查
func (m *ServerManager) HealthCheck(ctx context.Context) error {
	m.mu.Lock()
	client := m.client
	m.mu.Unlock()

	if client == nil {
		return ErrNotInitialized
	}

	return client.HealthCheck(ctx)
}

// refreshLocked 从远程 API 刷新缓存, 调用方必须已持有锁
// 失败时缓存保持原状, jobs 与 lastUpdate 只在成功后一起替换。
func (m *ServerManager) refreshLocked(ctx context.Context, now time.Time) error {
	jobs, err := m.client.GetAllJobs(ctx)
	if err != nil {
		return &TransportError{Op: "get all jobs", URL: m.serverURL(), Err: err}
	}

	if jobs == nil {
		jobs = []*model.Job{}
	}

	m.cache.jobs = jobs
	m.cache.lastUpdate = now

	logx.Debug("Job cache refreshed, url %s, count %d", m.serverURL(), len(jobs))

	return nil
}

// serverURL 返回当前配置的服务器地址, 调用方必须已持有锁
func (m *ServerManager) serverURL() string {
	if m.config == nil {
		return ""
	}
	return m.config.URL
}
