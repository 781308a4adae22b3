package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

// Console colors (gruvbox-ish, warm and muted).
const (
	colorReset  = "\x1b[0m"
	colorBold   = "\x1b[1m"
	colorTime   = "\x1b[38;5;108m" // muted cyan-green
	colorFg     = "\x1b[38;5;223m" // soft cream
	colorNumber = "\x1b[38;5;175m" // muted purple
	colorWarn   = "\x1b[38;5;214m"
	colorWarnBg = "\x1b[48;5;58m"
	colorErr    = "\x1b[38;5;167m"
	colorErrBg  = "\x1b[48;5;88m"
)

// minimalEncoder is a calm, compact console encoder.
// Format: "13:04:35  Parse complete  512 individuals, 203 families"
type minimalEncoder struct {
	zapcore.Encoder // base encoder for field serialization
}

func newMinimalEncoder() *minimalEncoder {
	return &minimalEncoder{
		Encoder: zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
	}
}

func (enc *minimalEncoder) Clone() zapcore.Encoder {
	return &minimalEncoder{Encoder: enc.Encoder.Clone()}
}

func (enc *minimalEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	final := buffer.NewPool().Get()

	final.AppendString(colorTime)
	final.AppendString(ent.Time.Format("15:04:05"))
	final.AppendString(colorReset)

	// Level marker only for WARN and above; INFO stays quiet.
	if lvl := levelColorString(ent.Level); lvl != "" {
		final.AppendString("  ")
		final.AppendString(lvl)
	}

	final.AppendString("  ")
	final.AppendString(colorFg)
	final.AppendString(ent.Message)
	final.AppendString(colorReset)

	if s := formatFields(fields); s != "" {
		final.AppendString("  ")
		final.AppendString(s)
	}

	final.AppendString("\n")
	return final, nil
}

func levelColorString(level zapcore.Level) string {
	switch level {
	case zapcore.WarnLevel:
		return colorBold + colorWarnBg + colorWarn + "WARN" + colorReset
	case zapcore.ErrorLevel:
		return colorBold + colorErrBg + colorErr + "ERROR" + colorReset
	case zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		return colorBold + colorErrBg + colorErr + level.CapitalString() + colorReset
	default:
		return ""
	}
}

// formatFields renders structured fields as compact "key=value" pairs with
// numbers highlighted.
func formatFields(fields []zapcore.Field) string {
	var pairs []string
	for _, field := range fields {
		val := fieldValue(field)
		if val == "" {
			continue
		}
		if isNumericField(field) {
			val = colorNumber + val + colorReset
		}
		pairs = append(pairs, colorFg+field.Key+"="+colorReset+val)
	}
	return strings.Join(pairs, " ")
}

func fieldValue(field zapcore.Field) string {
	switch {
	case field.Type == zapcore.StringType:
		return field.String
	case isNumericField(field):
		return fmt.Sprintf("%d", field.Integer)
	case field.Interface != nil:
		return fmt.Sprintf("%v", field.Interface)
	default:
		return ""
	}
}

func isNumericField(field zapcore.Field) bool {
	switch field.Type {
	case zapcore.Int64Type, zapcore.Int32Type, zapcore.Int16Type, zapcore.Int8Type,
		zapcore.Uint64Type, zapcore.Uint32Type, zapcore.Uint16Type, zapcore.Uint8Type:
		return true
	}
	return false
}
