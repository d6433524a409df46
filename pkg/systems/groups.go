package systems

import (
	"github.com/gonewx/astroshooter/pkg/components"
	"github.com/gonewx/astroshooter/pkg/ecs"
)

// EntitiesInGroup 返回分组中尚未被删除的实体（按 ID 排序）
func EntitiesInGroup(em *ecs.EntityManager, group components.Group) []ecs.EntityID {
	var result []ecs.EntityID
	for _, id := range ecs.GetEntitiesWith1[*components.GroupComponent](em) {
		if em.IsMarkedForDestroy(id) {
			continue
		}
		g, _ := ecs.GetComponent[*components.GroupComponent](em, id)
		if g.Group == group {
			result = append(result, id)
		}
	}
	return result
}

// CountGroup 返回分组中存活的实体数量
func CountGroup(em *ecs.EntityManager, group components.Group) int {
	return len(EntitiesInGroup(em, group))
}

// ClearGroup 删除分组中的所有实体，返回删除的数量
func ClearGroup(em *ecs.EntityManager, group components.Group) int {
	ids := EntitiesInGroup(em, group)
	for _, id := range ids {
		em.DestroyEntity(id)
	}
	return len(ids)
}
