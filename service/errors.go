package service

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound 统一表示"不存在或无权访问"，避免泄露资源是否存在
	ErrNotFound = errors.New("not found")
	// ErrUserExists 用户名或邮箱已被占用
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidCredential 登录失败，对未知邮箱和密码错误给同一个答案
	ErrInvalidCredential = errors.New("invalid email or password")
	// ErrAlreadySynced 文章已同步到微信，不允许重复同步
	ErrAlreadySynced = errors.New("article already synced to WeChat")
)

// DailyLimitError 当日生成额度用尽
type DailyLimitError struct {
	Limit int
}

func (e *DailyLimitError) Error() string {
	return fmt.Sprintf("Daily article limit reached (%d articles per day)", e.Limit)
}

// UpstreamError 标记外部服务（生成/发布）失败；对外只给通用提示，
// 详细错误已经落在对应的审计日志行里。
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
