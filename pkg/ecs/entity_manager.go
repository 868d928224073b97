package ecs

import (
	"reflect"
	"slices"
)

// EntityID 实体标识
// 在一局内单调递增、从不复用，所以过期 ID 不会误指向新实体，无需代数（generation）
type EntityID uint64

// componentSet 单个实体持有的组件，按组件的动态类型索引
type componentSet map[reflect.Type]interface{}

// has 判断组件集合是否包含全部给定类型
func (cs componentSet) has(types []reflect.Type) bool {
	for _, ct := range types {
		if _, ok := cs[ct]; !ok {
			return false
		}
	}
	return true
}

// EntityManager 实体与组件的存储
//
// 销毁分两步：DestroyEntity 只把实体判死（记入 condemned），
// 实体和它的组件保留到帧末屏障 RemoveMarkedEntities 才真正删除。
// 同一帧内其他系统通过 IsCondemned 看到同一份判死结果，
// 所以一架敌机不会被两束激光重复结算。
type EntityManager struct {
	nextID   uint64
	entities map[EntityID]componentSet

	// 判死顺序（去重后）与集合
	pending   []EntityID
	condemned map[EntityID]struct{}
}

// NewEntityManager 创建空的实体存储，第一个实体 ID 为 1（0 表示无效）
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:    1,
		entities:  make(map[EntityID]componentSet),
		pending:   make([]EntityID, 0, 16),
		condemned: make(map[EntityID]struct{}),
	}
}

// CreateEntity 创建一个没有任何组件的实体
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.entities[id] = make(componentSet)
	return id
}

// DestroyEntity 判死实体，删除推迟到帧末屏障
// 同一帧内重复判死只记一次；不存在的实体直接忽略
func (em *EntityManager) DestroyEntity(id EntityID) {
	if !em.EntityExists(id) || em.IsCondemned(id) {
		return
	}
	em.condemned[id] = struct{}{}
	em.pending = append(em.pending, id)
}

// IsCondemned 实体是否已在本帧被判死
func (em *EntityManager) IsCondemned(id EntityID) bool {
	_, ok := em.condemned[id]
	return ok
}

// CondemnedCount 本帧已判死、等待屏障删除的实体数
func (em *EntityManager) CondemnedCount() int {
	return len(em.pending)
}

// EntityExists 实体是否仍在存储中（判死但未到屏障的实体也算存在）
func (em *EntityManager) EntityExists(id EntityID) bool {
	_, ok := em.entities[id]
	return ok
}

// EntityCount 存储中的实体数
func (em *EntityManager) EntityCount() int {
	return len(em.entities)
}

// AddComponent 挂载组件，同类型组件会被替换
// 已判死的实体被冻结，不再接受修改
func (em *EntityManager) AddComponent(id EntityID, component interface{}) {
	if em.IsCondemned(id) {
		return
	}
	if cs, ok := em.entities[id]; ok {
		cs[reflect.TypeOf(component)] = component
	}
}

// RemoveComponent 卸下指定类型的组件
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	if em.IsCondemned(id) {
		return
	}
	if cs, ok := em.entities[id]; ok {
		delete(cs, componentType)
	}
}

// GetComponent 读取指定类型的组件
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (interface{}, bool) {
	cs, ok := em.entities[id]
	if !ok {
		return nil, false
	}
	comp, ok := cs[componentType]
	return comp, ok
}

// HasComponent 实体是否持有指定类型的组件
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	_, ok := em.GetComponent(id, componentType)
	return ok
}

// RemoveMarkedEntities 帧末屏障：删除本帧所有判死的实体并清空判死集合
// 每帧在全部系统之后调用且只调用一次
//
// 返回:
//   - int: 实际删除的实体数
func (em *EntityManager) RemoveMarkedEntities() int {
	removed := 0
	for _, id := range em.pending {
		if _, ok := em.entities[id]; ok {
			delete(em.entities, id)
			removed++
		}
	}
	em.pending = em.pending[:0]
	clear(em.condemned)
	return removed
}

// GetEntitiesWith 返回同时持有全部给定组件类型的实体
//
// 结果是调用时刻的快照，按 ID 升序（即创建顺序）排列，之后新建的实体不会出现在其中。
// 快照可能包含本帧已判死的实体，调用方用 IsCondemned 或 FilterLive 过滤。
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0, len(em.entities))
	for id, cs := range em.entities {
		if cs.has(componentTypes) {
			result = append(result, id)
		}
	}
	slices.Sort(result)
	return result
}
