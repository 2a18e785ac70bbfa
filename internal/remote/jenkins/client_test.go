package jenkins

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/bndr/gojenkins"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nrjohnstone/cctray-jenkins-transport/internal/model"
	"github.com/nrjohnstone/cctray-jenkins-transport/internal/transport"
)

func TestConvertJob(t *testing.T) {
	job := &gojenkins.Job{
		Raw: &gojenkins.JobResponse{
			Name:      "build-api",
			Color:     "blue_anime",
			URL:       "http://jenkins.local/job/build-api/",
			Buildable: true,
			LastBuild: gojenkins.JobBuild{
				Number: 42,
				URL:    "http://jenkins.local/job/build-api/42/",
			},
		},
	}

	got := convertJob(job)

	assert.Equal(t, "build-api", got.Name)
	assert.Equal(t, "blue_anime", got.Color)
	assert.Equal(t, "http://jenkins.local/job/build-api/", got.URL)
	assert.True(t, got.Buildable)
	require.NotNil(t, got.LastBuild)
	assert.Equal(t, 42, got.LastBuild.Number)
	assert.Equal(t, "http://jenkins.local/job/build-api/42/", got.LastBuild.URL)
}

func TestConvertJobWithoutBuilds(t *testing.T) {
	job := &gojenkins.Job{
		Raw: &gojenkins.JobResponse{
			Name:  "new-job",
			Color: "notbuilt",
		},
	}

	got := convertJob(job)

	assert.Equal(t, "new-job", got.Name)
	assert.Nil(t, got.LastBuild)
}

// newJenkinsStub 返回一个返回空任务列表的 Jenkins 接口桩
func newJenkinsStub(t *testing.T) *httptest.Server {
	t.Helper()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"jobs":[]}`))
	}))
	t.Cleanup(ts.Close)

	return ts
}

func TestClientConcurrentAccess(t *testing.T) {
	ts := newJenkinsStub(t)
	client := NewClient(ts.URL, model.Credentials{Username: "admin", Token: "secret"}, ts.Client())

	ctx := context.Background()

	// 健康检查、任务拉取和连接复位并发执行, 不允许出现连接状态的竞争
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(3)

		go func() {
			defer wg.Done()
			assert.NoError(t, client.HealthCheck(ctx))
		}()

		go func() {
			defer wg.Done()
			_, err := client.GetAllJobs(ctx)
			assert.NoError(t, err)
		}()

		go func() {
			defer wg.Done()
			assert.NoError(t, client.Logout(ctx))
		}()
	}
	wg.Wait()

	// 复位后再次使用会重新建立连接
	jobs, err := client.GetAllJobs(ctx)
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestFactoryRegistered(t *testing.T) {
	factory, err := transport.GetFactory("jenkins")
	require.NoError(t, err)
	assert.NotNil(t, factory)
}

func TestFactoryCreate(t *testing.T) {
	credentials := model.Credentials{Username: "admin", Token: "secret"}

	client, err := ClientFactory{}.Create("http://jenkins.local", credentials, nil)
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestFactoryCreateRequiresURL(t *testing.T) {
	_, err := ClientFactory{}.Create("", model.Credentials{}, nil)
	assert.Error(t, err)
}
