package salad

import (
	"fruit-salad/config"
	"fruit-salad/logger"

	"github.com/sirupsen/logrus"
)

type Options struct {
	Mode  string
	Color bool
	// Echo 输入不是终端时把读到的内容写回输出, 方便阅读管道下的记录
	Echo bool
	Log  *logrus.Entry
}

type Option func(o *Options)

func defaultOptions() *Options {
	return &Options{
		Mode: config.ModeLinked,
		Log:  logger.WithFields(logrus.Fields{}),
	}
}

// AsDeque 只允许在两端添加和删除
func AsDeque() Option {
	return func(o *Options) {
		o.Mode = config.ModeDeque
	}
}

func WithMode(mode string) Option {
	return func(o *Options) {
		o.Mode = mode
	}
}

func WithColor(enable bool) Option {
	return func(o *Options) {
		o.Color = enable
	}
}

func WithEcho(enable bool) Option {
	return func(o *Options) {
		o.Echo = enable
	}
}

func WithLogger(entry *logrus.Entry) Option {
	return func(o *Options) {
		o.Log = entry
	}
}
