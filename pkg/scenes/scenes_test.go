package scenes

import (
	"time"

	"github.com/gonewx/astroshooter/pkg/config"
	"github.com/gonewx/astroshooter/pkg/game"
	"github.com/gonewx/astroshooter/pkg/gameplay"
)

// fakeHighScore 内存中的最高分
type fakeHighScore struct {
	value     int
	submitted []int
}

func (f *fakeHighScore) Load() int { return f.value }

func (f *fakeHighScore) Submit(score int) (bool, error) {
	f.submitted = append(f.submitted, score)
	if score <= f.value {
		return false, nil
	}
	f.value = score
	return true, nil
}

type recordedRun struct {
	score    int
	duration time.Duration
}

type fakeRecorder struct {
	runs []recordedRun
}

func (f *fakeRecorder) Record(score int, duration time.Duration) error {
	f.runs = append(f.runs, recordedRun{score, duration})
	return nil
}

// fakeAudio 记录音频调用
type fakeAudio struct {
	sounds  []config.AssetKey
	music   []config.AssetKey
	playing bool
}

func (f *fakeAudio) PlaySound(key config.AssetKey) bool {
	f.sounds = append(f.sounds, key)
	return true
}

func (f *fakeAudio) PlayMusic(key config.AssetKey) bool {
	f.music = append(f.music, key)
	f.playing = true
	return true
}

func (f *fakeAudio) StopMusic()   { f.playing = false }
func (f *fakeAudio) ResumeMusic() { f.playing = true }

// newTestDeps 创建测试用的场景依赖和场景管理器
func newTestDeps() (Deps, *game.SceneManager, *fakeHighScore, *fakeAudio, *fakeRecorder) {
	hs := &fakeHighScore{value: 50}
	audio := &fakeAudio{}
	recorder := &fakeRecorder{}
	deps := Deps{
		Resources: game.NewResourceManager(nil),
		HighScore: hs,
		Tuning:    config.DefaultTuning(),
		Random:    gameplay.NewRandom(1),
		Audio:     audio,
		Recorder:  recorder,
	}
	sm := game.NewSceneManager(config.DefaultWindowWidth, config.DefaultWindowHeight)
	Register(sm, deps)
	return deps, sm, hs, audio, recorder
}
