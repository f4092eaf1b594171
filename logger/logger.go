package logger

import (
	"io"
	"os"
	"path"
	"time"

	"github.com/lestrrat-go/file-rotatelogs"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
)

var logger = logrus.New()

type Configuration struct {
	Level         logrus.Level
	TimeFormat    string
	LogPath       string
	EnableFileLog bool
	// Output 控制台输出, 默认 stderr. 不能和菜单共用 stdout
	Output io.Writer
}

func Configure(config *Configuration) error {
	logger.SetLevel(config.Level)

	// 用于控制台输出的格式
	consoleFormatter := &logrus.TextFormatter{
		TimestampFormat: config.TimeFormat,
		FullTimestamp:   true, // 必须设置为 true 以打印时间戳
	}
	logger.SetFormatter(consoleFormatter)

	logger.ReplaceHooks(make(logrus.LevelHooks))
	if config.EnableFileLog {
		writerMap := lfshook.WriterMap{}
		for _, level := range []logrus.Level{logrus.DebugLevel, logrus.InfoLevel, logrus.WarnLevel, logrus.ErrorLevel} {
			writer, err := setupWriter(config.LogPath, level.String())
			if err != nil {
				return err
			}
			writerMap[level] = writer
		}
		// 用于文件输出的格式
		fileFormatter := &logrus.TextFormatter{
			TimestampFormat: config.TimeFormat,
			FullTimestamp:   true,
			DisableColors:   true, // 文件中需要禁用颜色代码
		}
		logger.AddHook(lfshook.NewHook(writerMap, fileFormatter))
	}

	output := config.Output
	if output == nil {
		output = os.Stderr
	}
	logger.SetOutput(output)
	return nil
}

func setupWriter(logPath string, level string) (*rotatelogs.RotateLogs, error) {
	logFullPath := path.Join(logPath, level)
	return rotatelogs.New(
		logFullPath+".%Y%m%d.log",
		rotatelogs.WithMaxAge(7*24*time.Hour),
		rotatelogs.WithRotationTime(24*time.Hour),
	)
}

// WithFields 带上固定字段, 比如 run_id 和 mode
func WithFields(fields logrus.Fields) *logrus.Entry {
	return logger.WithFields(fields)
}

func InfoF(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

func DebugF(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

func ErrorF(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}

func IsEnabledDebug() bool {
	return logger.IsLevelEnabled(logrus.DebugLevel)
}
