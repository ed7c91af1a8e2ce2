// Package apperr はドメイン層の型付きエラーを定義する。
// HTTP への変換は境界層（pkg/context.Wrap）だけが行い、コアは HTTP を知らない。
package apperr

import "fmt"

// NotFoundError リソースが存在しない、または要求者の所有物でない
type NotFoundError struct {
	Resource string
	ID       uint64
}

func NewNotFound(resource string, id uint64) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

func (e *NotFoundError) Error() string {
	if e.ID > 0 {
		return fmt.Sprintf("%s (ID: %d) が見つかりません", e.Resource, e.ID)
	}
	return fmt.Sprintf("%sが見つかりません", e.Resource)
}

// InvalidStateError 不正なステータス遷移
type InvalidStateError struct {
	Current string
	Next    string
}

func NewInvalidState(current, next string) *InvalidStateError {
	return &InvalidStateError{Current: current, Next: next}
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("ステータス %s から %s への遷移はできません", e.Current, e.Next)
}

// InsufficientPointsError ポイント不足。必要量と残高を保持する。
type InsufficientPointsError struct {
	Required  int64
	Available int64
}

func NewInsufficientPoints(required, available int64) *InsufficientPointsError {
	return &InsufficientPointsError{Required: required, Available: available}
}

func (e *InsufficientPointsError) Error() string {
	return fmt.Sprintf("ポイントが不足しています。必要: %dpt, 残高: %dpt", e.Required, e.Available)
}

// ConflictError 並行更新の競合。呼び出し側のリトライのみ許容される。
type ConflictError struct {
	Detail string
}

func NewConflict(detail string) *ConflictError {
	if detail == "" {
		detail = "リソースが競合しています。再試行してください"
	}
	return &ConflictError{Detail: detail}
}

func (e *ConflictError) Error() string {
	return e.Detail
}

// ValidationError 入力値が不正（非正の金額など）
type ValidationError struct {
	Detail string
}

func NewValidation(detail string) *ValidationError {
	if detail == "" {
		detail = "入力データが無効です"
	}
	return &ValidationError{Detail: detail}
}

func (e *ValidationError) Error() string {
	return e.Detail
}

// UnauthorizedError 認証エラー
type UnauthorizedError struct {
	Detail string
}

func NewUnauthorized(detail string) *UnauthorizedError {
	if detail == "" {
		detail = "認証情報が無効です"
	}
	return &UnauthorizedError{Detail: detail}
}

func (e *UnauthorizedError) Error() string {
	return e.Detail
}

// PermissionDeniedError 権限エラー
type PermissionDeniedError struct {
	Detail string
}

func NewPermissionDenied(detail string) *PermissionDeniedError {
	if detail == "" {
		detail = "この操作を行う権限がありません"
	}
	return &PermissionDeniedError{Detail: detail}
}

func (e *PermissionDeniedError) Error() string {
	return e.Detail
}
