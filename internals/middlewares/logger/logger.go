package logger

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

const accessFormat = "[${time}] ${ip} - ${locals:reqid} - ${method} ${path} - ${status} - ${latency}\n"

// LoggerMiddleware writes one access line per request, stamped in timeZone
// ("Local", "UTC" or an IANA name).
func LoggerMiddleware(timeZone string) fiber.Handler {
	if timeZone == "" {
		timeZone = "Local"
	}
	return logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   timeZone,
		Format:     accessFormat,
	})
}
