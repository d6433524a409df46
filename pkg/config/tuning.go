package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/gonewx/astroshooter/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// DefaultTuningPath 嵌入的默认调优文件路径
const DefaultTuningPath = "data/tuning.yaml"

// FireRateTuning 自动射击间隔配置（毫秒）
type FireRateTuning struct {
	Initial        float64 `yaml:"initial"`        // 初始射击间隔
	Decrease       float64 `yaml:"decrease"`       // 每次衰减量
	MinLimit       float64 `yaml:"minLimit"`       // 射击间隔下限
	UpdateInterval float64 `yaml:"updateInterval"` // 衰减周期
}

// PlayerTuning 飞船配置
type PlayerTuning struct {
	Speed    float64 `yaml:"speed"`    // 追踪速度（像素/秒）
	Deadband float64 `yaml:"deadband"` // 静止死区（像素）
}

// EnemyTuning 陨石配置
type EnemyTuning struct {
	SpawnInterval float64 `yaml:"spawnInterval"` // 生成间隔（毫秒）
	SpawnMargin   int     `yaml:"spawnMargin"`   // 生成位置距屏幕边缘的距离
	SpawnY        float64 `yaml:"spawnY"`        // 生成Y坐标
	SpeedMin      int     `yaml:"speedMin"`      // 下落速度下限
	SpeedMax      int     `yaml:"speedMax"`      // 下落速度上限
}

// ScoreTuning 计分配置
type ScoreTuning struct {
	EnemyKill         int     `yaml:"enemyKill"`         // 击毁陨石得分
	TimeBonus         int     `yaml:"timeBonus"`         // 存活奖励分数
	TimeBonusInterval float64 `yaml:"timeBonusInterval"` // 存活奖励周期（毫秒）
}

// SoundTuning 各声道音量（0.0 ~ 1.0）
type SoundTuning struct {
	BGMVolume               float64 `yaml:"bgmVolume"`
	FireVolume              float64 `yaml:"fireVolume"`
	AsteroidExplosionVolume float64 `yaml:"asteroidExplosionVolume"`
	ShipExplosionVolume     float64 `yaml:"shipExplosionVolume"`
}

// Tuning 一局游戏的全部调优参数
// 默认值即为硬编码常量，YAML 文件只用于覆盖
type Tuning struct {
	FireRate     FireRateTuning `yaml:"fireRate"`
	Player       PlayerTuning   `yaml:"player"`
	BulletSpeed  float64        `yaml:"bulletSpeed"`
	Enemy        EnemyTuning    `yaml:"enemy"`
	Score        ScoreTuning    `yaml:"score"`
	Sound        SoundTuning    `yaml:"sound"`
	RestartDelay float64        `yaml:"restartDelay"` // 游戏结束到重开的延迟（毫秒）

	// PointerHoldPauses 按住指针暂停，松开恢复
	PointerHoldPauses bool `yaml:"pointerHoldPauses"`
}

// DefaultTuning 返回与常量表一致的默认调优参数
func DefaultTuning() Tuning {
	return Tuning{
		FireRate: FireRateTuning{
			Initial:        FireRateInitial,
			Decrease:       FireRateDecrease,
			MinLimit:       FireRateMinLimit,
			UpdateInterval: FireRateUpdateInterval,
		},
		Player: PlayerTuning{
			Speed:    PlayerSpeed,
			Deadband: PlayerDeadband,
		},
		BulletSpeed: BulletSpeed,
		Enemy: EnemyTuning{
			SpawnInterval: EnemySpawnInterval,
			SpawnMargin:   EnemySpawnMargin,
			SpawnY:        EnemySpawnY,
			SpeedMin:      EnemySpeedMin,
			SpeedMax:      EnemySpeedMax,
		},
		Score: ScoreTuning{
			EnemyKill:         EnemyKillScore,
			TimeBonus:         TimeBonusScore,
			TimeBonusInterval: TimeBonusInterval,
		},
		Sound: SoundTuning{
			BGMVolume:               BGMVolume,
			FireVolume:              FireVolume,
			AsteroidExplosionVolume: AsteroidExplosionVolume,
			ShipExplosionVolume:     ShipExplosionVolume,
		},
		RestartDelay: RestartDelay,
	}
}

// LoadTuning 加载调优参数
//
// 查找顺序：path（非空时必须存在）→ 嵌入的 data/tuning.yaml → 默认值。
// YAML 中缺省的字段保留默认值。
func LoadTuning(path string) (Tuning, error) {
	tuning := DefaultTuning()

	var data []byte
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return tuning, fmt.Errorf("failed to read tuning file %s: %w", path, err)
		}
		data = raw
	} else if embedded.IsInitialized() && embedded.Exists(DefaultTuningPath) {
		raw, err := embedded.ReadFile(DefaultTuningPath)
		if err == nil {
			data = raw
			path = DefaultTuningPath
		}
	}

	if len(data) == 0 {
		return tuning, nil
	}

	if err := yaml.Unmarshal(data, &tuning); err != nil {
		return DefaultTuning(), fmt.Errorf("failed to parse tuning YAML from %s: %w", path, err)
	}

	if err := tuning.Validate(); err != nil {
		return DefaultTuning(), fmt.Errorf("invalid tuning in %s: %w", path, err)
	}

	return tuning, nil
}

// ErrInvalidTuning 调优参数不合法
var ErrInvalidTuning = errors.New("invalid tuning")

// Validate 检查调优参数的一致性
func (t Tuning) Validate() error {
	switch {
	case t.FireRate.MinLimit <= 0:
		return fmt.Errorf("%w: fireRate.minLimit must be positive, got %v", ErrInvalidTuning, t.FireRate.MinLimit)
	case t.FireRate.Initial < t.FireRate.MinLimit:
		return fmt.Errorf("%w: fireRate.initial (%v) below minLimit (%v)", ErrInvalidTuning, t.FireRate.Initial, t.FireRate.MinLimit)
	case t.FireRate.Decrease < 0:
		return fmt.Errorf("%w: fireRate.decrease cannot be negative, got %v", ErrInvalidTuning, t.FireRate.Decrease)
	case t.FireRate.UpdateInterval <= 0:
		return fmt.Errorf("%w: fireRate.updateInterval must be positive, got %v", ErrInvalidTuning, t.FireRate.UpdateInterval)
	case t.Player.Speed <= 0:
		return fmt.Errorf("%w: player.speed must be positive, got %v", ErrInvalidTuning, t.Player.Speed)
	case t.Player.Deadband < 0:
		return fmt.Errorf("%w: player.deadband cannot be negative, got %v", ErrInvalidTuning, t.Player.Deadband)
	case t.BulletSpeed <= 0:
		return fmt.Errorf("%w: bulletSpeed must be positive, got %v", ErrInvalidTuning, t.BulletSpeed)
	case t.Enemy.SpawnInterval <= 0:
		return fmt.Errorf("%w: enemy.spawnInterval must be positive, got %v", ErrInvalidTuning, t.Enemy.SpawnInterval)
	case t.Enemy.SpawnMargin < 0:
		return fmt.Errorf("%w: enemy.spawnMargin cannot be negative, got %d", ErrInvalidTuning, t.Enemy.SpawnMargin)
	case t.Enemy.SpeedMin <= 0 || t.Enemy.SpeedMax < t.Enemy.SpeedMin:
		return fmt.Errorf("%w: enemy speed range [%d, %d] is not ordered", ErrInvalidTuning, t.Enemy.SpeedMin, t.Enemy.SpeedMax)
	case t.Score.EnemyKill < 0 || t.Score.TimeBonus < 0:
		return fmt.Errorf("%w: score rewards cannot be negative", ErrInvalidTuning)
	case t.Score.TimeBonusInterval <= 0:
		return fmt.Errorf("%w: score.timeBonusInterval must be positive, got %v", ErrInvalidTuning, t.Score.TimeBonusInterval)
	case t.RestartDelay < 0:
		return fmt.Errorf("%w: restartDelay cannot be negative, got %v", ErrInvalidTuning, t.RestartDelay)
	}

	for name, v := range map[string]float64{
		"bgmVolume":               t.Sound.BGMVolume,
		"fireVolume":              t.Sound.FireVolume,
		"asteroidExplosionVolume": t.Sound.AsteroidExplosionVolume,
		"shipExplosionVolume":     t.Sound.ShipExplosionVolume,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: sound.%s must be within [0, 1], got %v", ErrInvalidTuning, name, v)
		}
	}

	return nil
}

// ClampFireRate 将射击间隔限制在下限之上
func (t Tuning) ClampFireRate(rate float64) float64 {
	if rate < t.FireRate.MinLimit {
		return t.FireRate.MinLimit
	}
	return rate
}
