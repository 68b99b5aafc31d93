package entity

import "errors"

var (
	// ErrCapacityExceeded 工单产能不足，无法开工新工程。
	ErrCapacityExceeded = errors.New("work order capacity exceeded")
	// ErrTrainingExceeded 训练产能不足，无法开始新招募。
	ErrTrainingExceeded = errors.New("recruitment capacity exceeded")
	// ErrInsufficientResources 资源不足。
	ErrInsufficientResources = errors.New("insufficient resources")
	// ErrPrerequisiteMissing 招募前置工程未完成。
	ErrPrerequisiteMissing = errors.New("required project not completed")
	// ErrNotFound 按 id 找不到目标（模板、实例、队长、部队等）。
	ErrNotFound = errors.New("not found")
	// ErrUnknownResource 不认识的资源类型。
	ErrUnknownResource = errors.New("unknown resource type")
	// ErrUnknownPhase 不在固定阶段列表内。
	ErrUnknownPhase = errors.New("unknown phase")
)
