package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nrjohnstone/cctray-jenkins-transport/internal/config"
	"github.com/nrjohnstone/cctray-jenkins-transport/internal/model"
	"github.com/nrjohnstone/cctray-jenkins-transport/internal/transport"

	// 注册 Jenkins 客户端工厂
	_ "github.com/nrjohnstone/cctray-jenkins-transport/internal/remote/jenkins"
)

var (
	cfgFile string
	cfg     *config.Config
)

// rootCmd 根命令
var rootCmd = &cobra.Command{
	Use:   "cctray-jenkins-transport",
	Short: "Jenkins 任务状态的 CCTray 透传服务",
	Long:  `轮询 Jenkins 远程 API, 以带时效缓存的方式向仪表盘提供任务列表与全量状态快照。`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return nil
	},
}

// Execute 执行根命令
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "配置文件路径")
}

// newServerManager 根据配置创建并初始化 ServerManager
func newServerManager() (*transport.ServerManager, error) {
	factory, err := transport.GetFactory("jenkins")
	if err != nil {
		return nil, fmt.Errorf("failed to get jenkins factory: %w", err)
	}

	manager := transport.NewServerManager(factory, transport.SystemClock{}, nil)

	if cfg.Cache.TTL > 0 {
		manager.SetCacheTTL(time.Duration(cfg.Cache.TTL) * time.Second)
	}

	serverConfig := &model.ServerConfig{
		URL:      cfg.Jenkins.URL,
		Project:  cfg.Jenkins.Project,
		Username: cfg.Jenkins.Username,
		Token:    cfg.Jenkins.Token,
	}

	if err := manager.Initialize(serverConfig, cfg.Jenkins.Project, serverConfig.Credentials()); err != nil {
		return nil, fmt.Errorf("failed to initialize server manager: %w", err)
	}

	return manager, nil
}
