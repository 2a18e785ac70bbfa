package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"cnb.cool/zhiqiangwang/pkg/logx"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/nrjohnstone/cctray-jenkins-transport/internal/model"
)

var jobsOutputType string

// jobsCmd 任务命令组
var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "查询 Jenkins Job",
	Long:  `查询 Jenkins Job 信息。`,
}

// jobsListCmd 列出所有 Job
var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "列出所有 Job",
	Long:  `列出 Jenkins 中的所有 Job, 结果来自带时效缓存的任务集合。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		manager, err := newServerManager()
		if err != nil {
			return err
		}

		jobs, err := manager.GetProjectList(ctx)
		if err != nil {
			return fmt.Errorf("failed to get project list: %w", err)
		}

		// 输出结果
		if jobsOutputType == "json" {
			data, _ := json.MarshalIndent(jobs, "", "  ")
			fmt.Println(string(data))
		} else {
			// 使用 lipgloss/table 表格输出
			rows := [][]string{}

			for _, job := range jobs {
				buildable := "✓"
				if !job.Buildable {
					buildable = "✗"
				}

				lastBuild := "-"
				if job.LastBuild != nil {
					lastBuild = fmt.Sprintf("#%d", job.LastBuild.Number)
				}

				rows = append(rows, []string{
					job.Name,
					string(model.StatusFromColor(job.Color)),
					string(model.ActivityFromColor(job.Color)),
					lastBuild,
					buildable,
				})
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
				Headers("Name", "Status", "Activity", "Last Build", "Buildable").
				Rows(rows...)

			fmt.Println(t)
			fmt.Println()
			logx.Info("Query completed, count %d", len(jobs))
		}

		return nil
	},
}

// jobsGetCmd 获取单个 Job
var jobsGetCmd = &cobra.Command{
	Use:   "get <job-name>",
	Short: "获取 Job 详情",
	Long:  `从缓存的任务集合中获取指定 Job 的详细信息。`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jobName := args[0]
		ctx := context.Background()

		manager, err := newServerManager()
		if err != nil {
			return err
		}

		jobs, err := manager.GetProjectList(ctx)
		if err != nil {
			return fmt.Errorf("failed to get project list: %w", err)
		}

		for _, job := range jobs {
			if job.Name == jobName {
				data, _ := json.MarshalIndent(job, "", "  ")
				fmt.Println(string(data))
				return nil
			}
		}

		return fmt.Errorf("job '%s' not found", jobName)
	},
}

func init() {
	jobsListCmd.Flags().StringVarP(&jobsOutputType, "output", "o", "table", "输出格式 (table/json)")

	jobsCmd.AddCommand(jobsListCmd)
	jobsCmd.AddCommand(jobsGetCmd)
	queryCmd.AddCommand(jobsCmd)
}
