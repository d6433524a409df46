// Package gameplay 实现一局游戏的规则
//
// 包括每帧的更新循环（存活奖励、射速衰减、自动射击、追踪移动、陨石生成）、
// 碰撞事件处理（击毁陨石、飞船被撞、游戏结束与延迟重开）以及轮询式延迟调用。
//
// 本包不依赖渲染和输入：场景通过 World 与 Effects 接口提供引擎能力，
// 时间由调用方以毫秒传入，因此全部规则都可以在测试中用假实现驱动。
package gameplay
