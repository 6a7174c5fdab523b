package logger

import (
	"fmt"
	"strings"
)

// Success logs a success message with a checkmark.
func Success(args ...interface{}) {
	Info("✅ " + fmt.Sprint(args...))
}

// Successf logs a formatted success message.
func Successf(format string, args ...interface{}) {
	Success(fmt.Sprintf(format, args...))
}

// Progress logs a progress message.
func Progress(args ...interface{}) {
	Info("🔄 " + fmt.Sprint(args...))
}

// LogSection creates a visual section separator.
func LogSection(title string) {
	line := strings.Repeat("=", 50)
	if defaultLogger.noColor {
		fmt.Println(line)
		fmt.Println(title)
		fmt.Println(line)
		return
	}
	fmt.Println(colorCyan + line + colorReset)
	fmt.Println(colorCyan + colorBold + title + colorReset)
	fmt.Println(colorCyan + line + colorReset)
}

// LogKeyValue logs a key-value pair with nice formatting.
func LogKeyValue(key string, value interface{}) {
	if defaultLogger.noColor {
		fmt.Printf("%s: %v\n", key, value)
		return
	}
	fmt.Printf("%s%s:%s %v\n", colorCyan, key, colorReset, value)
}
