package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/Moustapha-Cheikh07/Mission/internal/config"
)

func newConfigCommand(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "配置文件相关命令",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "生成带默认值的配置文件",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ".migrate.yaml"
			if len(args) == 1 {
				path = args[0]
			} else if root.cfgFile != "" {
				path = root.cfgFile
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite", path)
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}

			if err := config.SaveConfig(config.NewDefaultConfig(), path); err != nil {
				return fmt.Errorf("保存配置失败: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "配置已写入 %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "覆盖已存在的文件")

	cmd.AddCommand(initCmd)
	return cmd
}
