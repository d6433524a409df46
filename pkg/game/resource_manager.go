package game

import (
	"bytes"
	"fmt"
	"image"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	synth "github.com/gonewx/astroshooter/internal/audio"
	"github.com/gonewx/astroshooter/pkg/config"
)

// DefaultSampleRate 音频采样率
const DefaultSampleRate = 48000

// 合成音效参数
const (
	musicBPM = 128

	shipExplosionSeconds     = 1.2
	shipExplosionCutoff      = 400
	asteroidExplosionSeconds = 0.5
	asteroidExplosionCutoff  = 1400
)

// 纹理随机种子，固定以保证每次生成的外观一致
const (
	asteroidSeed   = 7
	backgroundSeed = 42
)

// ResourceManager is responsible for centralized management of game resources.
// It generates and caches the textures, animation frames and PCM data used by
// the scenes, so every asset is created once and reused across restarts.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. It is only used from the game loop.
//
// Usage:
//
//	audioContext := audio.NewContext(DefaultSampleRate)
//	rm := NewResourceManager(audioContext)
//	if err := rm.LoadAll(); err != nil {
//	    return err
//	}
//	ship, _ := rm.LoadImage(config.AssetShip)
type ResourceManager struct {
	imageCache map[config.AssetKey]*ebiten.Image   // 纹理：资源键 -> 图片
	animCache  map[string][]*ebiten.Image          // 动画帧：动画键 -> 帧序列
	soundCache map[config.AssetKey][]byte          // PCM 数据：资源键 -> 16-bit 立体声
	generators map[config.AssetKey]func() *ebiten.Image

	audioContext *audio.Context // 可为 nil（无声模式，测试中使用）
	logger       *log.Logger
}

// NewResourceManager creates and initializes a new ResourceManager instance.
// audioContext may be nil, in which case sounds are generated but cannot be played.
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	rm := &ResourceManager{
		imageCache:   make(map[config.AssetKey]*ebiten.Image),
		animCache:    make(map[string][]*ebiten.Image),
		soundCache:   make(map[config.AssetKey][]byte),
		audioContext: audioContext,
		logger:       log.WithPrefix("ResourceManager"),
	}

	rm.generators = map[config.AssetKey]func() *ebiten.Image{
		config.AssetShip:       newShipImage,
		config.AssetShuttle:    newShuttleImage,
		config.AssetAsteroid:   func() *ebiten.Image { return newAsteroidImage(asteroidSeed) },
		config.AssetBullet:     newBulletImage,
		config.AssetExplosion:  newExplosionSheet,
		config.AssetBackground: func() *ebiten.Image { return newBackgroundImage(backgroundSeed) },
		config.AssetStartImage: func() *ebiten.Image {
			return newStartImage(rm.mustImage(config.AssetShuttle))
		},
	}
	return rm
}

// SampleRate 返回生成 PCM 使用的采样率
func (rm *ResourceManager) SampleRate() int {
	if rm.audioContext != nil {
		return rm.audioContext.SampleRate()
	}
	return DefaultSampleRate
}

// LoadAll 生成全部纹理、动画和音频数据（预加载阶段调用）
func (rm *ResourceManager) LoadAll() error {
	for _, key := range config.ImageKeys() {
		if _, err := rm.LoadImage(key); err != nil {
			return err
		}
	}

	if _, err := rm.LoadAnimation(config.AnimExplode); err != nil {
		return err
	}

	for _, key := range append(config.SoundKeys(), config.AssetBackgroundMusic) {
		if _, err := rm.LoadSound(key); err != nil {
			return err
		}
	}

	rm.logger.Debug("resources loaded",
		"images", len(rm.imageCache),
		"animations", len(rm.animCache),
		"sounds", len(rm.soundCache))
	return nil
}

// LoadImage 生成并缓存纹理，已缓存时直接返回
func (rm *ResourceManager) LoadImage(key config.AssetKey) (*ebiten.Image, error) {
	if img, ok := rm.imageCache[key]; ok {
		return img, nil
	}

	gen, ok := rm.generators[key]
	if !ok {
		return nil, fmt.Errorf("unknown image resource: %s", key)
	}

	img := gen()
	rm.imageCache[key] = img
	return img, nil
}

// mustImage 供生成器之间互相引用，键均为内置键
func (rm *ResourceManager) mustImage(key config.AssetKey) *ebiten.Image {
	img, err := rm.LoadImage(key)
	if err != nil {
		panic(err)
	}
	return img
}

// LoadAnimation 将精灵表切分为动画帧
func (rm *ResourceManager) LoadAnimation(anim string) ([]*ebiten.Image, error) {
	if frames, ok := rm.animCache[anim]; ok {
		return frames, nil
	}

	if anim != config.AnimExplode {
		return nil, fmt.Errorf("unknown animation: %s", anim)
	}

	sheet, err := rm.LoadImage(config.AssetExplosion)
	if err != nil {
		return nil, err
	}

	frames := SliceFrames(sheet, config.ExplosionFrameWidth, config.ExplosionFrameHeight, config.ExplosionFrameCount)
	rm.animCache[anim] = frames
	return frames, nil
}

// SliceFrames 按行优先顺序从精灵表中切出 count 帧
func SliceFrames(sheet *ebiten.Image, frameWidth, frameHeight, count int) []*ebiten.Image {
	b := sheet.Bounds()
	cols := b.Dx() / frameWidth
	if cols == 0 {
		return nil
	}

	frames := make([]*ebiten.Image, 0, count)
	for i := 0; i < count; i++ {
		x := b.Min.X + (i%cols)*frameWidth
		y := b.Min.Y + (i/cols)*frameHeight
		if y+frameHeight > b.Max.Y {
			break
		}
		frames = append(frames, sheet.SubImage(image.Rect(x, y, x+frameWidth, y+frameHeight)).(*ebiten.Image))
	}
	return frames
}

// LoadSound 合成并缓存 PCM 数据
func (rm *ResourceManager) LoadSound(key config.AssetKey) ([]byte, error) {
	if data, ok := rm.soundCache[key]; ok {
		return data, nil
	}

	sr := rm.SampleRate()
	var data []byte
	switch key {
	case config.AssetFireSound:
		data = synth.Laser(sr)
	case config.AssetShipExplosionSound:
		data = synth.Explosion(sr, shipExplosionSeconds, shipExplosionCutoff, 1)
	case config.AssetAsteroidExplosionSound:
		data = synth.Explosion(sr, asteroidExplosionSeconds, asteroidExplosionCutoff, 2)
	case config.AssetBackgroundMusic:
		data = synth.MusicLoop(sr, musicBPM)
	default:
		return nil, fmt.Errorf("unknown sound resource: %s", key)
	}

	rm.soundCache[key] = data
	return data, nil
}

// NewSoundPlayer 为单次音效创建播放器
// 每次调用返回新的播放器，允许同一音效重叠播放
func (rm *ResourceManager) NewSoundPlayer(key config.AssetKey) (*audio.Player, error) {
	if rm.audioContext == nil {
		return nil, fmt.Errorf("audio context not available")
	}

	data, err := rm.LoadSound(key)
	if err != nil {
		return nil, err
	}
	return rm.audioContext.NewPlayerFromBytes(data), nil
}

// NewLoopPlayer 为背景音乐创建无限循环播放器
func (rm *ResourceManager) NewLoopPlayer(key config.AssetKey) (*audio.Player, error) {
	if rm.audioContext == nil {
		return nil, fmt.Errorf("audio context not available")
	}

	data, err := rm.LoadSound(key)
	if err != nil {
		return nil, err
	}

	loop := audio.NewInfiniteLoop(bytes.NewReader(data), int64(len(data)))
	player, err := rm.audioContext.NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("failed to create loop player for %s: %w", key, err)
	}
	return player, nil
}
