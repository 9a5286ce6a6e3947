package logger

import (
	"fmt"

	"github.com/fatih/color"
)

type LogLevel string

const (
	LevelInfo    LogLevel = "INFO"
	LevelSuccess LogLevel = "SUCCESS"
	LevelWarning LogLevel = "WARNING"
	LevelError   LogLevel = "ERROR"
	LevelDebug   LogLevel = "DEBUG"
)

var colorMap = map[LogLevel]func(a ...interface{}) string{
	LevelInfo:    color.New(color.FgBlue).SprintFunc(),
	LevelSuccess: color.New(color.FgGreen).SprintFunc(),
	LevelWarning: color.New(color.FgYellow).SprintFunc(),
	LevelError:   color.New(color.FgRed).SprintFunc(),
	LevelDebug:   color.New(color.FgCyan).SprintFunc(),
}

func logMessage(level LogLevel, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)

	colorFunc, ok := colorMap[level]
	if !ok {
		colorFunc = color.New(color.FgWhite).SprintFunc()
	}
	fmt.Println(colorFunc(fmt.Sprintf("[%s] ", level)) + message)
}

func Infof(format string, args ...interface{}) {
	logMessage(LevelInfo, format, args...)
}

func Successf(format string, args ...interface{}) {
	logMessage(LevelSuccess, format, args...)
}

func Warnf(format string, args ...interface{}) {
	logMessage(LevelWarning, format, args...)
}

func Errorf(format string, args ...interface{}) {
	logMessage(LevelError, format, args...)
}

func Debugf(format string, args ...interface{}) {
	logMessage(LevelDebug, format, args...)
}
