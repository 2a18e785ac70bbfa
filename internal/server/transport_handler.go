package server

import (
	"context"
	"encoding/xml"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nrjohnstone/cctray-jenkins-transport/internal/model"
	"github.com/nrjohnstone/cctray-jenkins-transport/internal/transport"
)

// Manager 任务缓存与会话管理接口, 由 transport.ServerManager 实现
type Manager interface {
	Login(ctx context.Context) error
	Logout(ctx context.Context)
	GetProjectList(ctx context.Context) ([]*model.Job, error)
	GetCruiseServerSnapshot(ctx context.Context) (*model.CruiseServerSnapshot, error)
	AuthorizationInformation() string
	Configuration() *model.ServerConfig
	HealthCheck(ctx context.Context) error
}

// handleProjectList 获取任务列表
func (s *HTTPGinServer) handleProjectList(c *gin.Context) {
	jobs, err := s.manager.GetProjectList(c.Request.Context())
	if err != nil {
		s.error(c, statusFromError(err), err.Error())
		return
	}

	s.success(c, model.JobList{Items: jobs})
}

// handleSnapshot 获取全量状态快照
func (s *HTTPGinServer) handleSnapshot(c *gin.Context) {
	snapshot, err := s.manager.GetCruiseServerSnapshot(c.Request.Context())
	if err != nil {
		s.error(c, statusFromError(err), err.Error())
		return
	}

	s.success(c, snapshot)
}

// handleLogin 登录并返回授权信息
func (s *HTTPGinServer) handleLogin(c *gin.Context) {
	if err := s.manager.Login(c.Request.Context()); err != nil {
		s.error(c, statusFromError(err), err.Error())
		return
	}

	s.success(c, gin.H{
		"authorization": s.manager.AuthorizationInformation(),
	})
}

// handleLogout 注销, 总是成功
func (s *HTTPGinServer) handleLogout(c *gin.Context) {
	s.manager.Logout(c.Request.Context())

	s.success(c, gin.H{
		"authorization": "",
	})
}

// cctrayProjects CCTray 订阅源的 XML 结构
type cctrayProjects struct {
	XMLName  xml.Name        `xml:"Projects"`
	Projects []cctrayProject `xml:"Project"`
}

// cctrayProject CCTray 订阅源中的单个项目
type cctrayProject struct {
	Name            string `xml:"name,attr"`
	Activity        string `xml:"activity,attr"`
	LastBuildStatus string `xml:"lastBuildStatus,attr"`
	WebURL          string `xml:"webUrl,attr"`
}

// handleCCTrayXML 以 CCTray 标准格式输出快照
func (s *HTTPGinServer) handleCCTrayXML(c *gin.Context) {
	snapshot, err := s.manager.GetCruiseServerSnapshot(c.Request.Context())
	if err != nil {
		s.error(c, statusFromError(err), err.Error())
		return
	}

	feed := cctrayProjects{
		Projects: make([]cctrayProject, 0, len(snapshot.ProjectStatuses)),
	}

	for _, status := range snapshot.ProjectStatuses {
		feed.Projects = append(feed.Projects, cctrayProject{
			Name:            status.Name,
			Activity:        string(status.Activity),
			LastBuildStatus: string(status.Status),
			WebURL:          status.WebURL,
		})
	}

	c.XML(http.StatusOK, feed)
}

// statusFromError 将核心错误映射为 HTTP 状态码
func statusFromError(err error) int {
	var authErr *transport.AuthenticationError
	var transportErr *transport.TransportError

	switch {
	case errors.Is(err, transport.ErrNotInitialized):
		return http.StatusServiceUnavailable
	case errors.As(err, &authErr):
		return http.StatusUnauthorized
	case errors.As(err, &transportErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
