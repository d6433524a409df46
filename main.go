// astroshooter 竖屏街机射击游戏
//
// Usage:
//
//	astroshooter              - 开始游戏
//	astroshooter scores       - 查看对局记录（桌面端）
//
// Global flags:
//
//	--verbose        - 输出调试日志
//	--seed <value>   - 随机数种子（0 = 随机）
//	--tuning <path>  - 调优文件路径（默认使用嵌入的 data/tuning.yaml）
//	--db <path>      - 对局记录数据库路径（默认 ~/.astroshooter/runs.db，空字符串关闭记录）
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/gonewx/astroshooter/pkg/app"
	"github.com/gonewx/astroshooter/pkg/config"
	"github.com/gonewx/astroshooter/pkg/embedded"
)

var (
	// Global flags
	flagVerbose bool
	flagSeed    uint64
	flagTuning  string
	flagDBPath  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "astroshooter",
	Short: "Astro Shooter - 躲避陨石，自动射击",
	Long: `Astro Shooter 是一个竖屏街机射击游戏。

飞船自动射击并跟随指针移动，击毁陨石得分，存活越久射速越快。
按 M 切换静音，F11 切换全屏。`,
	SilenceUsage: true,
	RunE:         runGame,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random)")
	rootCmd.PersistentFlags().StringVar(&flagTuning, "tuning", "", "Path to a tuning YAML file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaultDBPath, "Path to the run history database")
}

func runGame(cmd *cobra.Command, args []string) error {
	// 初始化嵌入资源（必须在加载调优参数之前）
	embedded.Init(dataFS)

	app.SetupLogging(flagVerbose)
	recorder, closeRecorder := openRecorder(flagDBPath)
	defer closeRecorder()

	gameApp, err := app.NewApp(app.Config{
		Verbose:    flagVerbose,
		Seed:       flagSeed,
		TuningPath: flagTuning,
		Recorder:   recorder,
	})
	if err != nil {
		return fmt.Errorf("游戏初始化失败: %w", err)
	}
	defer gameApp.Shutdown()

	ebiten.SetWindowSize(config.DefaultWindowWidth, config.DefaultWindowHeight)
	ebiten.SetWindowTitle("Astro Shooter")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	log.WithPrefix("Main").Debug("starting game loop", "seed", flagSeed)
	return ebiten.RunGame(gameApp)
}
