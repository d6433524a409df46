package gameplay

import "math/rand/v2"

// Random 随机数来源
type Random interface {
	// Between 返回 [min, max] 闭区间内的整数
	Between(min, max int) int
}

// SeededRandom 基于 PCG 的可复现随机数
type SeededRandom struct {
	rng *rand.Rand
}

// NewRandom 创建随机数来源，seed 为 0 时使用随机种子
func NewRandom(seed uint64) *SeededRandom {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &SeededRandom{rng: rand.New(rand.NewPCG(seed, seed^0x5deece66d))}
}

// Between 实现 Random
// min > max 时交换两者
func (r *SeededRandom) Between(min, max int) int {
	if min > max {
		min, max = max, min
	}
	return min + r.rng.IntN(max-min+1)
}
