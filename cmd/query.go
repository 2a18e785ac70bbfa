package cmd

import (
	"github.com/spf13/cobra"
)

// queryCmd 查询命令组
var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "查询 Jenkins 任务信息",
	Long:  `通过带时效缓存的传输层查询 Jenkins 的任务信息。`,
}

func init() {
	rootCmd.AddCommand(queryCmd)
}
