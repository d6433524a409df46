package config

// 游戏调优常量
// 所有时间单位为毫秒，速度单位为像素/秒
const (
	// FireRateInitial 每局开始时的自动射击间隔
	FireRateInitial = 800.0
	// FireRateDecrease 每次衰减减少的射击间隔
	FireRateDecrease = 10.0
	// FireRateMinLimit 射击间隔下限
	FireRateMinLimit = 200.0
	// FireRateUpdateInterval 射击间隔衰减周期
	FireRateUpdateInterval = 10000.0

	// PlayerSpeed 飞船追踪指针的固定速度
	PlayerSpeed = 300.0
	// PlayerDeadband 到目标距离小于等于该值时飞船静止，避免抖动
	PlayerDeadband = 5.0

	// BulletSpeed 子弹向上飞行的速度（取正值，方向在生成时决定）
	BulletSpeed = 400.0

	// EnemySpawnInterval 陨石生成间隔
	EnemySpawnInterval = 1000.0
	// EnemySpawnMargin 陨石生成位置距离屏幕左右边缘的最小距离
	EnemySpawnMargin = 50
	// EnemySpawnY 陨石生成的Y坐标（屏幕上方，不可见区域）
	EnemySpawnY = -20.0
	// EnemySpeedMin 陨石下落速度下限
	EnemySpeedMin = 150
	// EnemySpeedMax 陨石下落速度上限
	EnemySpeedMax = 250

	// EnemyKillScore 击毁一颗陨石获得的分数
	EnemyKillScore = 10
	// TimeBonusInterval 存活奖励周期
	TimeBonusInterval = 10000.0
	// TimeBonusScore 每个存活周期奖励的分数
	TimeBonusScore = 100

	// RestartDelay 游戏结束到重新开始的延迟
	RestartDelay = 8000.0
)

// 音量配置（0.0 ~ 1.0）
const (
	BGMVolume               = 1.0
	FireVolume              = 0.4
	AsteroidExplosionVolume = 0.9
	ShipExplosionVolume     = 0.6
)

// 爆炸精灵表配置
const (
	ExplosionFrameWidth  = 64
	ExplosionFrameHeight = 64
	ExplosionFrameCount  = 16
	ExplosionFrameRate   = 30.0
)

// 窗口默认尺寸（桌面端），浏览器端跟随画布大小
const (
	DefaultWindowWidth  = 480
	DefaultWindowHeight = 800
)

// HighScoreStorageKey 最高分在持久化存储中的键名
const HighScoreStorageKey = "highScore"
