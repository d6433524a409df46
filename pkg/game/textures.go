package game

import (
	"image"
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/gonewx/astroshooter/pkg/config"
)

// 纹理尺寸
const (
	shipSize         = 48
	asteroidSize     = 48
	bulletWidth      = 6
	bulletHeight     = 16
	shuttleWidth     = 96
	shuttleHeight    = 128
	startImageWidth  = 320
	startImageHeight = 220
	backgroundWidth  = config.DefaultWindowWidth
	backgroundHeight = config.DefaultWindowHeight
	backgroundStars  = 160
)

var (
	colorHull     = color.RGBA{R: 200, G: 210, B: 225, A: 255}
	colorHullDark = color.RGBA{R: 90, G: 100, B: 120, A: 255}
	colorCockpit  = color.RGBA{R: 80, G: 180, B: 255, A: 255}
	colorFlame    = color.RGBA{R: 255, G: 150, B: 40, A: 255}
	colorRock     = color.RGBA{R: 130, G: 115, B: 100, A: 255}
	colorCrater   = color.RGBA{R: 95, G: 82, B: 70, A: 255}
	colorBullet   = color.RGBA{R: 255, G: 230, B: 80, A: 255}
	colorSpace    = color.RGBA{R: 6, G: 8, B: 24, A: 255}
	colorGold     = color.RGBA{R: 255, G: 215, B: 0, A: 255}
)

// whitePixel 作为 DrawTriangles 的纹理源
var whitePixel = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

// point 多边形顶点
type point struct{ x, y float32 }

// fillPolygon 以第一个顶点为扇心填充多边形
// 仅适用于从第一个顶点可见全部边的形状（凸多边形或箭头形）
func fillPolygon(dst *ebiten.Image, pts []point, clr color.RGBA) {
	if len(pts) < 3 {
		return
	}

	r := float32(clr.R) / 255
	g := float32(clr.G) / 255
	b := float32(clr.B) / 255
	a := float32(clr.A) / 255

	vs := make([]ebiten.Vertex, len(pts))
	for i, p := range pts {
		vs[i] = ebiten.Vertex{
			DstX: p.x, DstY: p.y,
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		}
	}

	is := make([]uint16, 0, (len(pts)-2)*3)
	for i := 1; i < len(pts)-1; i++ {
		is = append(is, 0, uint16(i), uint16(i+1))
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vs, is, whitePixel, op)
}

// drawShip 在 (ox, oy) 处绘制宽 w 高 h 的飞船
func drawShip(dst *ebiten.Image, ox, oy, w, h float32) {
	// 尾焰
	vector.DrawFilledRect(dst, ox+w*0.42, oy+h*0.78, w*0.16, h*0.2, colorFlame, true)

	fillPolygon(dst, []point{
		{ox + w*0.5, oy},
		{ox + w, oy + h*0.9},
		{ox + w*0.5, oy + h*0.75},
		{ox, oy + h*0.9},
	}, colorHull)

	// 机翼阴影
	fillPolygon(dst, []point{
		{ox + w*0.5, oy + h*0.45},
		{ox + w*0.85, oy + h*0.85},
		{ox + w*0.5, oy + h*0.75},
		{ox + w*0.15, oy + h*0.85},
	}, colorHullDark)

	vector.DrawFilledCircle(dst, ox+w*0.5, oy+h*0.4, w*0.1, colorCockpit, true)
}

// newShipImage 玩家飞船
func newShipImage() *ebiten.Image {
	img := ebiten.NewImage(shipSize, shipSize)
	drawShip(img, 4, 2, shipSize-8, shipSize-4)
	return img
}

// newShuttleImage 开始界面使用的大号飞船
func newShuttleImage() *ebiten.Image {
	img := ebiten.NewImage(shuttleWidth, shuttleHeight)
	drawShip(img, 0, 0, shuttleWidth, shuttleHeight)
	return img
}

// newAsteroidImage 不规则陨石，seed 固定以保证每次生成结果一致
func newAsteroidImage(seed uint64) *ebiten.Image {
	img := ebiten.NewImage(asteroidSize, asteroidSize)
	rng := rand.New(rand.NewPCG(seed, seed+1))

	const sides = 11
	c := float32(asteroidSize) / 2
	pts := []point{{c, c}}
	for i := 0; i <= sides; i++ {
		angle := 2 * math.Pi * float64(i%sides) / sides
		radius := float64(c) * (0.72 + 0.22*rng.Float64())
		pts = append(pts, point{
			x: c + float32(radius*math.Cos(angle)),
			y: c + float32(radius*math.Sin(angle)),
		})
	}
	fillPolygon(img, pts, colorRock)

	for i := 0; i < 4; i++ {
		x := c + float32(rng.Float64()*20-10)
		y := c + float32(rng.Float64()*20-10)
		vector.DrawFilledCircle(img, x, y, float32(2+rng.Float64()*4), colorCrater, true)
	}
	return img
}

// newBulletImage 子弹
func newBulletImage() *ebiten.Image {
	img := ebiten.NewImage(bulletWidth, bulletHeight)
	vector.DrawFilledRect(img, 0, 0, bulletWidth, bulletHeight, colorBullet, false)
	vector.DrawFilledRect(img, 2, 2, bulletWidth-4, bulletHeight-4, color.White, false)
	return img
}

// newExplosionSheet 水平排列的爆炸精灵表
// 每帧火球扩大并逐渐透明，内核逐渐收缩
func newExplosionSheet() *ebiten.Image {
	const (
		fw = config.ExplosionFrameWidth
		fh = config.ExplosionFrameHeight
		n  = config.ExplosionFrameCount
	)
	img := ebiten.NewImage(fw*n, fh)

	for i := 0; i < n; i++ {
		p := float32(i) / float32(n-1)
		cx := float32(i*fw) + fw/2
		cy := float32(fh) / 2
		fade := uint8(255 * (1 - p))

		outer := color.RGBA{R: fade, G: uint8(float32(fade) * 0.35), B: 0, A: fade}
		vector.DrawFilledCircle(img, cx, cy, 6+24*p, outer, true)

		core := 14 * (1 - p)
		if core > 1 {
			inner := color.RGBA{R: fade, G: fade, B: uint8(float32(fade) * 0.5), A: fade}
			vector.DrawFilledCircle(img, cx, cy, core, inner, true)
		}

		// 冲击波
		if p > 0.25 {
			ring := color.RGBA{R: fade / 2, G: fade / 2, B: fade / 2, A: fade / 2}
			vector.StrokeCircle(img, cx, cy, 8+28*p, 2, ring, true)
		}
	}
	return img
}

// newBackgroundImage 星空背景，场景中拉伸到屏幕尺寸
func newBackgroundImage(seed uint64) *ebiten.Image {
	img := ebiten.NewImage(backgroundWidth, backgroundHeight)
	img.Fill(colorSpace)

	rng := rand.New(rand.NewPCG(seed, seed^0xa5a5))
	for i := 0; i < backgroundStars; i++ {
		x := float32(rng.Float64() * backgroundWidth)
		y := float32(rng.Float64() * backgroundHeight)
		b := uint8(120 + rng.IntN(136))
		vector.DrawFilledCircle(img, x, y, float32(0.5+rng.Float64()*1.2), color.RGBA{R: b, G: b, B: b, A: 255}, true)
	}
	return img
}

// newStartImage 开始界面标志：标题 + 飞船
func newStartImage(shuttle *ebiten.Image) *ebiten.Image {
	img := ebiten.NewImage(startImageWidth, startImageHeight)
	vector.StrokeRect(img, 2, 2, startImageWidth-4, startImageHeight-4, 3, colorGold, false)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(startImageWidth-shuttleWidth)/2, 16)
	img.DrawImage(shuttle, op)

	face := text.NewGoXFace(basicfont.Face7x13)
	const title = "ASTRO SHOOTER"
	const scale = 2.5
	w, _ := text.Measure(title, face, 0)

	top := &text.DrawOptions{}
	top.GeoM.Scale(scale, scale)
	top.GeoM.Translate((startImageWidth-w*scale)/2, startImageHeight-52)
	top.ColorScale.ScaleWithColor(colorGold)
	text.Draw(img, title, face, top)
	return img
}
