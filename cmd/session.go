package cmd

import (
	"context"
	"fmt"

	"cnb.cool/zhiqiangwang/pkg/logx"
	"github.com/spf13/cobra"
)

// loginCmd 验证凭据并获取授权令牌
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "验证 Jenkins 凭据",
	Long:  `使用配置中的凭据登录 Jenkins, 成功后输出授权信息。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		manager, err := newServerManager()
		if err != nil {
			return err
		}

		if err := manager.Login(ctx); err != nil {
			return err
		}

		fmt.Println(manager.AuthorizationInformation())
		logx.Info("Login completed, url %s", cfg.Jenkins.URL)

		return nil
	},
}

// logoutCmd 清空本地授权状态
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "清空本地授权状态",
	Long:  `清空本地授权状态, 总是成功。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		manager, err := newServerManager()
		if err != nil {
			return err
		}

		manager.Logout(ctx)
		logx.Info("Logout completed, url %s", cfg.Jenkins.URL)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
}
