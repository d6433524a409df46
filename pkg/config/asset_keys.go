package config

// AssetKey 资源键，用于在代码和具体资源之间解耦
type AssetKey string

// 图片资源
const (
	AssetStartImage AssetKey = "startImageSprite"
	AssetShip       AssetKey = "ship"
	AssetAsteroid   AssetKey = "asteroid"
	AssetBullet     AssetKey = "bullet"
	AssetExplosion  AssetKey = "explosion"
	AssetShuttle    AssetKey = "shuttle"
	AssetBackground AssetKey = "background"
)

// 音效资源
const (
	AssetFireSound              AssetKey = "fireSound"
	AssetShipExplosionSound     AssetKey = "shipExplosionSound"
	AssetAsteroidExplosionSound AssetKey = "asteroidExplosionSound"
)

// 音乐资源
const (
	AssetBackgroundMusic AssetKey = "backgroundMusic"
)

// AnimExplode 爆炸动画键
const AnimExplode = "explode"

// ImageKeys 返回所有图片资源键
func ImageKeys() []AssetKey {
	return []AssetKey{
		AssetStartImage,
		AssetShip,
		AssetAsteroid,
		AssetBullet,
		AssetExplosion,
		AssetShuttle,
		AssetBackground,
	}
}

// SoundKeys 返回所有单次播放的音效键
func SoundKeys() []AssetKey {
	return []AssetKey{
		AssetFireSound,
		AssetShipExplosionSound,
		AssetAsteroidExplosionSound,
	}
}
