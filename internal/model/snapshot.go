package model

import "strings"

// BuildStatus 构建状态
type BuildStatus string

const (
	StatusSuccess  BuildStatus = "Success"
	StatusFailure  BuildStatus = "Failure"
	StatusUnstable BuildStatus = "Unstable"
	StatusNotBuilt BuildStatus = "NotBuilt"
	StatusDisabled BuildStatus = "Disabled"
	StatusAborted  BuildStatus = "Aborted"
	StatusUnknown  BuildStatus = "Unknown"
)

// Activity 项目活动状态
type Activity string

const (
	ActivitySleeping Activity = "Sleeping"
	ActivityBuilding Activity = "Building"
)

// ProjectStatus 单个项目的状态视图
type ProjectStatus struct {
	Name     string      `json:"name"`
	Status   BuildStatus `json:"status"`
	Activity Activity    `json:"activity"`
	WebURL   string      `json:"web_url"`
}

// CruiseServerSnapshot 全量项目状态快照, 供仪表盘消费
type CruiseServerSnapshot struct {
	ProjectStatuses []*ProjectStatus `json:"project_statuses"`
	Total           int              `json:"total"`
	Failed          int              `json:"failed"`
	Building        int              `json:"building"`
}

// StatusFromColor 将 Jenkins 颜色状态转换为构建状态
func StatusFromColor(color string) BuildStatus {
	// 移除 _anime 后缀 (表示正在构建)
	color = strings.TrimSuffix(color, "_anime")

	switch color {
	case "blue", "green":
		return StatusSuccess
	case "red":
		return StatusFailure
	case "yellow":
		return StatusUnstable
	case "grey", "notbuilt":
		return StatusNotBuilt
	case "disabled":
		return StatusDisabled
	case "aborted":
		return StatusAborted
	default:
		return StatusUnknown
	}
}

// ActivityFromColor 根据颜色后缀判断项目是否正在构建
func ActivityFromColor(color string) Activity {
	if strings.HasSuffix(color, "_anime") {
		return ActivityBuilding
	}
	return ActivitySleeping
}

// ProjectStatusFromJob 将任务转换为项目状态视图
func ProjectStatusFromJob(job *Job) *ProjectStatus {
	return &ProjectStatus{
		Name:     job.Name,
		Status:   StatusFromColor(job.Color),
		Activity: ActivityFromColor(job.Color),
		WebURL:   job.URL,
	}
}

// SnapshotFromJobs 从任务集合构建全量快照
func SnapshotFromJobs(jobs []*Job) *CruiseServerSnapshot {
	snapshot := &CruiseServerSnapshot{
		ProjectStatuses: make([]*ProjectStatus, 0, len(jobs)),
	}

	for _, job := range jobs {
		status := ProjectStatusFromJob(job)
		snapshot.ProjectStatuses = append(snapshot.ProjectStatuses, status)

		if status.Status == StatusFailure {
			snapshot.Failed++
		}
		if status.Activity == ActivityBuilding {
			snapshot.Building++
		}
	}

	snapshot.Total = len(snapshot.ProjectStatuses)
	return snapshot
}
