package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"cnb.cool/zhiqiangwang/pkg/logx"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var snapshotOutputType string

// snapshotCmd 输出全量状态快照
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "输出全量状态快照",
	Long:  `构建并输出所有 Job 的聚合状态快照。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		manager, err := newServerManager()
		if err != nil {
			return err
		}

		snapshot, err := manager.GetCruiseServerSnapshot(ctx)
		if err != nil {
			return fmt.Errorf("failed to get snapshot: %w", err)
		}

		// 输出结果
		if snapshotOutputType == "json" {
			data, _ := json.MarshalIndent(snapshot, "", "  ")
			fmt.Println(string(data))
		} else {
			rows := [][]string{}
			for _, status := range snapshot.ProjectStatuses {
				rows = append(rows, []string{
					status.Name,
					string(status.Status),
					string(status.Activity),
				})
			}

			t := table.New().
				Border(lipgloss.NormalBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
				Headers("Name", "Status", "Activity").
				Rows(rows...)

			fmt.Println(t)
			fmt.Println()
			logx.Info("Snapshot completed, total %d, failed %d, building %d",
				snapshot.Total, snapshot.Failed, snapshot.Building)
		}

		return nil
	},
}

func init() {
	snapshotCmd.Flags().StringVarP(&snapshotOutputType, "output", "o", "table", "输出格式 (table/json)")

	rootCmd.AddCommand(snapshotCmd)
}
