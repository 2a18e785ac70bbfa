package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusFromColor(t *testing.T) {
	tests := []struct {
		color string
		want  BuildStatus
	}{
		{"blue", StatusSuccess},
		{"green", StatusSuccess},
		{"red", StatusFailure},
		{"yellow", StatusUnstable},
		{"grey", StatusNotBuilt},
		{"notbuilt", StatusNotBuilt},
		{"disabled", StatusDisabled},
		{"aborted", StatusAborted},
		{"purple", StatusUnknown},
		{"", StatusUnknown},
		// _anime 后缀表示正在构建, 状态取构建前的颜色
		{"blue_anime", StatusSuccess},
		{"red_anime", StatusFailure},
	}

	for _, tt := range tests {
		t.Run(tt.color, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFromColor(tt.color))
		})
	}
}

func TestActivityFromColor(t *testing.T) {
	assert.Equal(t, ActivitySleeping, ActivityFromColor("blue"))
	assert.Equal(t, ActivityBuilding, ActivityFromColor("blue_anime"))
	assert.Equal(t, ActivityBuilding, ActivityFromColor("red_anime"))
	assert.Equal(t, ActivitySleeping, ActivityFromColor(""))
}

func TestSnapshotFromJobs(t *testing.T) {
	jobs := []*Job{
		{Name: "api", Color: "blue", URL: "http://jenkins.local/job/api/"},
		{Name: "web", Color: "red", URL: "http://jenkins.local/job/web/"},
		{Name: "worker", Color: "yellow_anime", URL: "http://jenkins.local/job/worker/"},
	}

	snapshot := SnapshotFromJobs(jobs)

	assert.Equal(t, 3, snapshot.Total)
	assert.Equal(t, 1, snapshot.Failed)
	assert.Equal(t, 1, snapshot.Building)

	// 保持任务集合的原始顺序
	assert.Equal(t, "api", snapshot.ProjectStatuses[0].Name)
	assert.Equal(t, StatusSuccess, snapshot.ProjectStatuses[0].Status)
	assert.Equal(t, "web", snapshot.ProjectStatuses[1].Name)
	assert.Equal(t, StatusFailure, snapshot.ProjectStatuses[1].Status)
	assert.Equal(t, "worker", snapshot.ProjectStatuses[2].Name)
	assert.Equal(t, ActivityBuilding, snapshot.ProjectStatuses[2].Activity)
	assert.Equal(t, "http://jenkins.local/job/worker/", snapshot.ProjectStatuses[2].WebURL)
}

func TestSnapshotFromJobsEmpty(t *testing.T) {
	snapshot := SnapshotFromJobs(nil)

	assert.Equal(t, 0, snapshot.Total)
	assert.NotNil(t, snapshot.ProjectStatuses)
	assert.Empty(t, snapshot.ProjectStatuses)
}
