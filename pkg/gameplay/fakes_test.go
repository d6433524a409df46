package gameplay

import (
	"github.com/gonewx/astroshooter/pkg/config"
	"github.com/gonewx/astroshooter/pkg/ecs"
)

type spawn struct {
	x, y, vy float64
}

// fakeWorld 记录更新循环和事件处理产生的全部效果
type fakeWorld struct {
	playerAlive  bool
	playerX      float64
	playerY      float64
	playerHeight float64
	vx, vy       float64
	width        float64

	bullets   []spawn
	enemies   []spawn
	sounds    []config.AssetKey
	scoreText string

	destroyed     []ecs.EntityID
	explosions    []spawn
	cleared       int
	musicPlaying  bool
	gameOverShown bool
	physicsPaused bool
	restarts      int

	// calls 记录效果调用顺序
	calls []string
}

func newFakeWorld() *fakeWorld {
	return &fakeWorld{
		playerAlive:  true,
		playerX:      240,
		playerY:      400,
		playerHeight: 48,
		width:        480,
		musicPlaying: true,
	}
}

func (w *fakeWorld) Player() (float64, float64, float64, bool) {
	return w.playerX, w.playerY, w.playerHeight, w.playerAlive
}

func (w *fakeWorld) SetPlayerVelocity(vx, vy float64) { w.vx, w.vy = vx, vy }

func (w *fakeWorld) SpawnBullet(x, y, vy float64) {
	w.bullets = append(w.bullets, spawn{x, y, vy})
}

func (w *fakeWorld) SpawnEnemy(x, y, vy float64) {
	w.enemies = append(w.enemies, spawn{x, y, vy})
}

func (w *fakeWorld) PlaySound(key config.AssetKey) {
	w.sounds = append(w.sounds, key)
	w.calls = append(w.calls, "sound:"+string(key))
}

func (w *fakeWorld) SetScoreText(text string) { w.scoreText = text }

func (w *fakeWorld) Width() float64 { return w.width }

func (w *fakeWorld) DestroyEntity(id ecs.EntityID) {
	w.destroyed = append(w.destroyed, id)
	if id == 1 {
		w.playerAlive = false
	}
}

func (w *fakeWorld) SpawnExplosion(x, y float64) {
	w.explosions = append(w.explosions, spawn{x: x, y: y})
}

func (w *fakeWorld) ClearProjectiles() {
	w.cleared++
	w.calls = append(w.calls, "clear")
}

func (w *fakeWorld) StopMusic() {
	w.musicPlaying = false
	w.calls = append(w.calls, "stopMusic")
}

func (w *fakeWorld) ResumeMusic() {
	w.musicPlaying = true
	w.calls = append(w.calls, "resumeMusic")
}

func (w *fakeWorld) ShowGameOver() {
	w.gameOverShown = true
	w.calls = append(w.calls, "gameOver")
}

func (w *fakeWorld) PausePhysics() {
	w.physicsPaused = true
	w.calls = append(w.calls, "pause")
}

func (w *fakeWorld) ResumePhysics() {
	w.physicsPaused = false
	w.calls = append(w.calls, "resume")
}

func (w *fakeWorld) Restart() {
	w.restarts++
	w.calls = append(w.calls, "restart")
}

// fixedRandom 依次返回预设值并记录调用参数
type fixedRandom struct {
	values []int
	calls  [][2]int
}

func (r *fixedRandom) Between(min, max int) int {
	r.calls = append(r.calls, [2]int{min, max})
	if len(r.values) == 0 {
		return min
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v
}

// memoryHighScore 与 game.HighScore 相同的写入规则
type memoryHighScore struct {
	value     int
	hasValue  bool
	submitted []int
	err       error
}

func (m *memoryHighScore) Submit(score int) (bool, error) {
	m.submitted = append(m.submitted, score)
	if m.err != nil {
		return false, m.err
	}
	if m.hasValue && score <= m.value {
		return false, nil
	}
	m.value = score
	m.hasValue = true
	return true, nil
}
