package messagestream

import (
	log_internal "github.com/GLCRealm/cyber-lane-reservations/internal/pkg/log"

	"github.com/ThreeDotsLabs/watermill"
	"go.uber.org/zap"
)

type zapLoggerAdapter struct {
	logger *zap.Logger
	fields watermill.LogFields
}

func NewZapLoggerAdapter() watermill.LoggerAdapter {
	return &zapLoggerAdapter{logger: log_internal.GetOtelLogger().Logger}
}

func (z *zapLoggerAdapter) Error(msg string, err error, fields watermill.LogFields) {
	z.logger.Error(msg, append(z.zapFields(fields), zap.Error(err))...)
}

func (z *zapLoggerAdapter) Info(msg string, fields watermill.LogFields) {
	z.logger.Info(msg, z.zapFields(fields)...)
}

func (z *zapLoggerAdapter) Debug(msg string, fields watermill.LogFields) {
	z.logger.Debug(msg, z.zapFields(fields)...)
}

func (z *zapLoggerAdapter) Trace(msg string, fields watermill.LogFields) {
	z.logger.Debug(msg, z.zapFields(fields)...)
}

func (z *zapLoggerAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &zapLoggerAdapter{logger: z.logger, fields: z.fields.Add(fields)}
}

func (z *zapLoggerAdapter) zapFields(fields watermill.LogFields) []zap.Field {
	all := z.fields.Add(fields)
	out := make([]zap.Field, 0, len(all))
	for k, v := range all {
		out = append(out, zap.Any(k, v))
	}
	return out
}
