package app

import (
	"errors"

	"Stronghold/internal/campaign/entity"
	"Stronghold/modules/kit/errx"
)

// Code 表示应用层错误码（通常更贴近“业务语义/对外协议”）。
type Code = errx.Code

const (
	CodeCapacityExceeded    Code = "CAMPAIGN_CAPACITY_EXCEEDED"
	CodeTrainingExceeded    Code = "CAMPAIGN_TRAINING_EXCEEDED"
	CodeInsufficientRes     Code = "CAMPAIGN_INSUFFICIENT_RESOURCES"
	CodePrerequisiteMissing Code = "CAMPAIGN_PREREQUISITE_MISSING"
	CodeTargetNotFound      Code = "CAMPAIGN_TARGET_NOT_FOUND"
	CodeInvalidParam        Code = errx.CodeReqParamError
	// CodeInternalServer 复用 kit 的统一系统码（跨服务一致，便于告警/排障）。
	CodeInternalServer Code = errx.CodeInternal
)

// Error 复用通用错误模型：对外语义(code/msg)、上下文(data)、溯源链(cause)、系统错误一次栈(stack)。
type Error = errx.Error

func NewError(code Code, msg string) *Error {
	return errx.NewBiz(code, msg)
}

// Wrap 创建系统类错误并挂载 cause（系统错误会在第一次 wrap/转换处捕获一次栈）。
func Wrap(code Code, msg string, cause error) *Error {
	return errx.NewSys(code, msg).WithCause(cause)
}

var (
	ErrCapacityExceeded    = errx.NewBiz(CodeCapacityExceeded, "工单产能不足")
	ErrTrainingExceeded    = errx.NewBiz(CodeTrainingExceeded, "训练位不足")
	ErrInsufficientRes     = errx.NewBiz(CodeInsufficientRes, "资源不足")
	ErrPrerequisiteMissing = errx.NewBiz(CodePrerequisiteMissing, "前置工程未完成")
	ErrTargetNotFound      = errx.NewBiz(CodeTargetNotFound, "目标不存在")
	ErrInternalServer      = errx.ErrInternal
)

// mapEntityErr 把领域哨兵错误翻成带业务码的应用层错误。
// 未识别的错误一律按系统错误处理。
func mapEntityErr(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, entity.ErrCapacityExceeded):
		return ErrCapacityExceeded.WithReason(ReasonCapacityExceeded)
	case errors.Is(err, entity.ErrTrainingExceeded):
		return ErrTrainingExceeded.WithReason(ReasonTrainingExceeded)
	case errors.Is(err, entity.ErrInsufficientResources):
		return ErrInsufficientRes.WithReason(ReasonInsufficientRes)
	case errors.Is(err, entity.ErrPrerequisiteMissing):
		return ErrPrerequisiteMissing.WithReason(ReasonPrerequisiteMissing)
	case errors.Is(err, entity.ErrNotFound):
		return ErrTargetNotFound.WithReason(ReasonTargetNotFound)
	case errors.Is(err, entity.ErrUnknownResource), errors.Is(err, entity.ErrUnknownPhase):
		return errx.NewBiz(CodeInvalidParam, err.Error())
	default:
		return Wrap(CodeInternalServer, "战役操作失败", err)
	}
}
