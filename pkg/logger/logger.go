package logger

import (
    "sync"

    "go.uber.org/zap"
)

var (
    mu  sync.RWMutex
    log = zap.NewNop()
)

// Init 初始化全局 logger；debug 模式输出开发格式
func Init(debug bool) error {
    var (
        l   *zap.Logger
        err error
    )
    if debug {
        l, err = zap.NewDevelopment()
    } else {
        l, err = zap.NewProduction()
    }
    if err != nil {
        return err
    }
    mu.Lock()
    log = l
    mu.Unlock()
    return nil
}

// L 返回当前全局 logger
func L() *zap.Logger {
    mu.RLock()
    defer mu.RUnlock()
    return log
}

func Info(msg string, fields ...zap.Field)  { L().Info(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { L().Warn(msg, fields...) }
func Error(msg string, fields ...zap.Field) { L().Error(msg, fields...) }

// Sync 刷新缓冲日志，进程退出前调用
func Sync() { _ = L().Sync() }
