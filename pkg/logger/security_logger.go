package logger

import (
	"crypto/sha256"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var (
	urlPattern    = regexp.MustCompile(`https?://[^\s]+`)
	secretPattern = regexp.MustCompile(`(?i)(key|token|secret|bearer)[=:\s]\s*[a-zA-Z0-9._\-]+`)
)

// SecurityLogger masks API endpoints and credentials before they reach the log.
type SecurityLogger struct {
	*Logger
}

func NewSecurityLogger(l *Logger) *SecurityLogger {
	return &SecurityLogger{Logger: l}
}

// GetSecurityLogger wraps the current global logger.
func GetSecurityLogger() *SecurityLogger {
	return NewSecurityLogger(GetLogger())
}

// MaskAPIEndpoint keeps scheme and host of an API base URL and replaces the rest with a hash.
func (sl *SecurityLogger) MaskAPIEndpoint(apiURL string) string {
	if apiURL == "" {
		return ""
	}

	parsed, err := url.Parse(apiURL)
	if err != nil || parsed.Host == "" {
		return "api-endpoint#" + sl.GenerateHash(apiURL)[:8]
	}

	return fmt.Sprintf("%s://%s/api#%s", parsed.Scheme, parsed.Host, sl.GenerateHash(apiURL)[:8])
}

// MaskSecret reduces a credential to a short fingerprint.
func (sl *SecurityLogger) MaskSecret(secret string) string {
	if secret == "" {
		return ""
	}
	return "secret#" + sl.GenerateHash(secret)[:8]
}

// MaskSensitiveData returns a copy of data with url and key-like fields masked.
func (sl *SecurityLogger) MaskSensitiveData(data map[string]interface{}) map[string]interface{} {
	masked := make(map[string]interface{}, len(data))

	for key, value := range data {
		lower := strings.ToLower(key)
		str, isString := value.(string)

		switch {
		case !isString:
			masked[key] = value
		case strings.Contains(lower, "url"):
			masked[key] = sl.MaskAPIEndpoint(str)
		case strings.Contains(lower, "key"), strings.Contains(lower, "token"), strings.Contains(lower, "secret"):
			masked[key] = sl.MaskSecret(str)
		default:
			masked[key] = value
		}
	}

	return masked
}

// MaskLogMessage strips URLs and inline credentials from free text.
func (sl *SecurityLogger) MaskLogMessage(message string) string {
	masked := urlPattern.ReplaceAllStringFunc(message, sl.MaskAPIEndpoint)
	return secretPattern.ReplaceAllString(masked, "${1}=***")
}

func (sl *SecurityLogger) GenerateHash(data string) string {
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash[:8])
}

// SafeInfo logs info with automatic sensitive data masking
func (sl *SecurityLogger) SafeInfo(msg string, fields map[string]interface{}) {
	sl.Logger.WithFields(sl.MaskSensitiveData(fields)).Info(sl.MaskLogMessage(msg))
}

func (sl *SecurityLogger) SafeWarn(msg string, fields map[string]interface{}) {
	sl.Logger.WithFields(sl.MaskSensitiveData(fields)).Warn(sl.MaskLogMessage(msg))
}

// SafeError logs error with automatic sensitive data masking
func (sl *SecurityLogger) SafeError(msg string, err error, fields map[string]interface{}) {
	masked := sl.MaskSensitiveData(fields)
	if err != nil {
		masked["error"] = sl.MaskLogMessage(err.Error())
	}
	sl.Logger.WithFields(masked).Error(sl.MaskLogMessage(msg))
}
