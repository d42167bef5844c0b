package dxf

import (
	"log/slog"
)

type options struct {
	logger *slog.Logger
	source string
}

// Option 解码选项
type Option func(*options)

// WithLogger 记录被容忍的情况（跳过的实体、段、重复名称等），默认丢弃
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithSource 设置错误信息中的数据源名称，Open 默认使用文件名
func WithSource(name string) Option {
	return func(o *options) {
		o.source = name
	}
}

func newOptions(opts []Option) options {
	o := options{source: "<stream>"}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	return o
}
