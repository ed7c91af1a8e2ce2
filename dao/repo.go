package dao

import (
	"context"

	"gorm.io/gorm"
)

// Repo 各 DAO が埋め込む共通リポジトリ
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

func (r Repo[T]) Model(ctx context.Context) *gorm.DB {
	var m T
	return r.Db.WithContext(ctx).Model(&m)
}

func (r Repo[T]) Create(ctx context.Context, data *T) error {
	return r.Db.WithContext(ctx).Create(data).Error
}

func (r Repo[T]) FindById(ctx context.Context, id uint64) (*T, error) {
	var item T
	err := r.Db.WithContext(ctx).First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r Repo[T]) FindByWhere(ctx context.Context, where string, args ...any) (*T, error) {
	var item T
	err := r.Db.WithContext(ctx).Where(where, args...).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r Repo[T]) IsExist(ctx context.Context, where string, args ...any) (bool, error) {
	var count int64
	err := r.Model(ctx).Where(where, args...).Limit(1).Count(&count).Error
	return count > 0, err
}

func (r Repo[T]) FindCount(ctx context.Context, where string, args ...any) (int64, error) {
	var count int64
	err := r.Model(ctx).Where(where, args...).Count(&count).Error
	return count, err
}

func (r Repo[T]) UpdateById(ctx context.Context, id uint64, data map[string]any) error {
	return r.Model(ctx).Where("id = ?", id).Updates(data).Error
}
