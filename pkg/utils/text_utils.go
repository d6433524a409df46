package utils

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// baseFontSize basicfont 7x13 的字号
const baseFontSize = 13.0

// defaultFace 位图字体，覆盖 ASCII 和 Latin-1（包括 "ç"）
var defaultFace = text.NewGoXFace(basicfont.Face7x13)

// Label 屏幕文字
// 位置为锚点坐标，OriginX/OriginY 与精灵的原点含义相同（0.5 表示居中）
type Label struct {
	Text    string
	X, Y    float64
	Size    float64 // 字号（像素）
	Color   color.Color
	OriginX float64
	OriginY float64

	// Bold 通过 1 像素偏移重绘加粗
	Bold bool
	// Background 非 nil 时在文字后绘制背景框
	Background color.Color
	PaddingX   float64
	PaddingY   float64
	// MaxWidth 非零时缩小字号使文字不超过该宽度
	MaxWidth float64

	Visible bool
}

// NewLabel 创建居中对齐的文字
func NewLabel(str string, x, y, size float64, clr color.Color) *Label {
	return &Label{
		Text:    str,
		X:       x,
		Y:       y,
		Size:    size,
		Color:   clr,
		OriginX: 0.5,
		OriginY: 0.5,
		Visible: true,
	}
}

// SetText 更新文字内容
func (l *Label) SetText(str string) {
	l.Text = str
}

// scale 返回位图字体的缩放倍数
func (l *Label) scale() float64 {
	s := l.Size / baseFontSize
	if s <= 0 {
		s = 1
	}
	if l.MaxWidth > 0 {
		w, _ := text.Measure(l.Text, defaultFace, 0)
		if w*s > l.MaxWidth && w > 0 {
			s = l.MaxWidth / w
		}
	}
	return s
}

// Measure 返回文字绘制后的尺寸（不含内边距）
func (l *Label) Measure() (float64, float64) {
	if l.Text == "" {
		return 0, 0
	}
	s := l.scale()
	w, h := text.Measure(l.Text, defaultFace, 0)
	return w * s, h * s
}

// Draw 绘制文字
func (l *Label) Draw(dst *ebiten.Image) {
	if !l.Visible || l.Text == "" {
		return
	}

	s := l.scale()
	w, h := l.Measure()
	clr := l.Color
	if clr == nil {
		clr = color.White
	}

	left := l.X - w*l.OriginX
	top := l.Y - h*l.OriginY

	if l.Background != nil {
		vector.DrawFilledRect(dst,
			float32(left-l.PaddingX), float32(top-l.PaddingY),
			float32(w+2*l.PaddingX), float32(h+2*l.PaddingY),
			l.Background, false)
	}

	offsets := []float64{0}
	if l.Bold {
		offsets = append(offsets, s/2)
	}
	for _, dx := range offsets {
		op := &text.DrawOptions{}
		op.GeoM.Scale(s, s)
		op.GeoM.Translate(left+dx, top)
		op.ColorScale.ScaleWithColor(clr)
		text.Draw(dst, l.Text, defaultFace, op)
	}
}
