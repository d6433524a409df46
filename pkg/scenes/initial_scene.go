package scenes

import (
	"fmt"
	"image/color"
	"math"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/astroshooter/pkg/config"
	"github.com/gonewx/astroshooter/pkg/game"
	"github.com/gonewx/astroshooter/pkg/gameplay"
	"github.com/gonewx/astroshooter/pkg/utils"
)

const (
	// 开始界面布局（相对屏幕高度）
	logoCenterY     = 0.4
	highScoreLabelY = 0.7
	promptLabelY    = 0.8

	// 开始图片最多占屏幕宽度 80%、高度 60%
	logoMaxWidth  = 0.8
	logoMaxHeight = 0.6

	highScoreFontSize = 36
	promptFontSize    = 48

	promptText = "Toque para começar"
)

var (
	// GoldColor 最高分文字颜色
	GoldColor = color.RGBA{R: 0xFF, G: 0xD7, B: 0x00, A: 0xFF}
)

// InitialScene 标题界面
// 显示开始图片和最高分，指针按下后进入游戏场景
type InitialScene struct {
	sceneManager *game.SceneManager

	logo           *ebiten.Image
	highScoreLabel *utils.Label
	promptLabel    *utils.Label

	width, height int
	started       bool

	logger *log.Logger
}

// NewInitialScene 创建标题界面
func NewInitialScene(deps Deps, sm *game.SceneManager) (*InitialScene, error) {
	logo, err := deps.Resources.LoadImage(config.AssetStartImage)
	if err != nil {
		return nil, fmt.Errorf("failed to load start image: %w", err)
	}

	highScore := 0
	if deps.HighScore != nil {
		highScore = deps.HighScore.Load()
	}

	s := &InitialScene{
		sceneManager:   sm,
		logo:           logo,
		highScoreLabel: utils.NewLabel(gameplay.HighScoreText(highScore), 0, 0, highScoreFontSize, GoldColor),
		promptLabel:    utils.NewLabel(promptText, 0, 0, promptFontSize, color.White),
		logger:         log.WithPrefix("InitialScene"),
	}
	s.layout()
	return s, nil
}

// LogoLayout 计算开始图片的缩放比例和中心位置
// 保持宽高比缩放到屏幕宽度 80%、高度 60% 以内，中心位于 40% 高度处
func LogoLayout(imgW, imgH, screenW, screenH int) (scale, cx, cy float64) {
	cx = float64(screenW) / 2
	cy = float64(screenH) * logoCenterY
	if imgW <= 0 || imgH <= 0 {
		return 0, cx, cy
	}
	scale = math.Min(
		float64(screenW)*logoMaxWidth/float64(imgW),
		float64(screenH)*logoMaxHeight/float64(imgH),
	)
	return scale, cx, cy
}

// layout 按当前屏幕尺寸摆放文字
func (s *InitialScene) layout() {
	w, h := s.sceneManager.Size()
	if w == s.width && h == s.height {
		return
	}
	s.width, s.height = w, h

	s.highScoreLabel.X = float64(w) / 2
	s.highScoreLabel.Y = float64(h) * highScoreLabelY
	s.promptLabel.X = float64(w) / 2
	s.promptLabel.Y = float64(h) * promptLabelY
	s.promptLabel.MaxWidth = float64(w) * 0.9
}

// Update 等待指针按下
func (s *InitialScene) Update(deltaTime float64) {
	s.layout()
	pressed, _, _ := utils.IsJustTouchedOrClicked()
	s.handlePress(pressed)
}

// handlePress 点击或触摸时切换到游戏场景（只切换一次）
func (s *InitialScene) handlePress(pressed bool) {
	if s.started || !pressed {
		return
	}

	s.started = true
	if err := s.sceneManager.Start(config.SceneGame); err != nil {
		s.logger.Error("failed to start game", "err", err)
		s.started = false
	}
}

// Draw 绘制黑色背景、开始图片和文字
func (s *InitialScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	b := s.logo.Bounds()
	scale, cx, cy := LogoLayout(b.Dx(), b.Dy(), s.width, s.height)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx, cy)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(s.logo, op)

	s.highScoreLabel.Draw(screen)
	s.promptLabel.Draw(screen)
}
