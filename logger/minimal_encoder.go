package logger

import (
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

// Color palette (warm, muted, easy on eyes)
const (
	colorReset = "\x1b[0m"
	colorBold  = "\x1b[1m"

	colorFg       = "\x1b[38;5;223m" // Soft cream
	colorAqua     = "\x1b[38;5;108m" // Muted cyan-green
	colorOrange   = "\x1b[38;5;208m" // Warm orange
	colorYellow   = "\x1b[38;5;214m" // Soft yellow
	colorGreen    = "\x1b[38;5;142m" // Muted green
	colorBlue     = "\x1b[38;5;109m" // Soft blue
	colorPurple   = "\x1b[38;5;175m" // Muted purple
	colorRed      = "\x1b[38;5;167m" // Warm red
	colorRedBg    = "\x1b[48;5;88m"  // Dark red background
	colorYellowBg = "\x1b[48;5;58m"  // Dark yellow background
)

// minimalEncoder implements a calm, compact console encoder.
// Format: "13:04:35  r.codec  Imported regions  count=12 document=forest.json"
type minimalEncoder struct {
	zapcore.Encoder // Embed a base encoder for field serialization
	buf             *buffer.Buffer
}

func newMinimalEncoder() *minimalEncoder {
	// Create a base JSON encoder for field serialization (internal use only)
	baseEncoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())

	return &minimalEncoder{
		Encoder: baseEncoder,
		buf:     buffer.NewPool().Get(),
	}
}

func (enc *minimalEncoder) Clone() zapcore.Encoder {
	return &minimalEncoder{
		Encoder: enc.Encoder.Clone(),
		buf:     buffer.NewPool().Get(),
	}
}

func (enc *minimalEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	final := buffer.NewPool().Get()

	// Time
	final.AppendString(colorAqua)
	final.AppendString(ent.Time.Format("15:04:05"))
	final.AppendString(colorReset)

	// Level: only show for WARN/ERROR with bold + background
	if ent.Level != zapcore.InfoLevel && ent.Level != zapcore.DebugLevel {
		final.AppendString("  ")
		final.AppendString(levelColorString(ent.Level))
	}

	// Component name (abbreviated) for visual grouping
	if ent.LoggerName != "" {
		final.AppendString("  ")
		final.AppendString(componentColor(ent.LoggerName))
		final.AppendString(abbreviateName(ent.LoggerName))
		final.AppendString(colorReset)
	}

	// Message
	final.AppendString("  ")
	final.AppendString(colorFg)
	final.AppendString(ent.Message)
	final.AppendString(colorReset)

	// Fields: every field is rendered, none silently dropped
	if len(fields) > 0 {
		final.AppendString("  ")
		final.AppendString(renderFields(fields))
	}

	final.AppendString("\n")
	return final, nil
}

// levelColorString returns bold + colored + background for WARN/ERROR
func levelColorString(level zapcore.Level) string {
	switch level {
	case zapcore.WarnLevel:
		return colorBold + colorYellowBg + colorYellow + "WARN" + colorReset
	case zapcore.ErrorLevel:
		return colorBold + colorRedBg + colorRed + "ERROR" + colorReset
	case zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		return colorBold + colorRedBg + colorRed + level.CapitalString() + colorReset
	default:
		return ""
	}
}

// componentColor picks a stable color per component name
func componentColor(name string) string {
	hash := 0
	for _, c := range name {
		hash += int(c)
	}
	if hash%2 == 0 {
		return colorOrange
	}
	return colorYellow
}

// abbreviateName shortens component names: realm.codec -> r.codec
func abbreviateName(name string) string {
	parts := strings.Split(name, ".")
	if len(parts) > 1 {
		return string(parts[0][0]) + "." + strings.Join(parts[1:], ".")
	}
	return name
}

// idFieldKeys are keys whose values read as identifiers and get the ID color
var idFieldKeys = map[string]bool{
	FieldRegionID:  true,
	FieldScope:     true,
	FieldDocument:  true,
	FieldFile:      true,
	FieldPath:      true,
	FieldNamespace: true,
	FieldTag:       true,
}

// renderFields renders every structured field as key=value.
// Values are colored by kind: identifiers blue, numbers purple, errors red.
func renderFields(fields []zapcore.Field) string {
	var parts []string
	for _, field := range fields {
		if field.Type == zapcore.SkipType {
			continue
		}
		value, numeric := fieldValue(field)
		color := colorFg
		switch {
		case field.Type == zapcore.ErrorType || field.Key == FieldError:
			color = colorRed
		case idFieldKeys[field.Key]:
			color = colorBlue
		case numeric:
			color = colorPurple
		}
		parts = append(parts, colorFg+field.Key+"="+colorReset+color+value+colorReset)
	}
	return strings.Join(parts, " ")
}

// fieldValue extracts a display string from a zap field and reports
// whether the value is numeric.
func fieldValue(field zapcore.Field) (string, bool) {
	switch field.Type {
	case zapcore.StringType:
		return field.String, false
	case zapcore.BoolType:
		return fmt.Sprintf("%t", field.Integer == 1), false
	case zapcore.Int64Type, zapcore.Int32Type, zapcore.Int16Type, zapcore.Int8Type,
		zapcore.Uint64Type, zapcore.Uint32Type, zapcore.Uint16Type, zapcore.Uint8Type:
		return fmt.Sprintf("%d", field.Integer), true
	case zapcore.Float64Type:
		return fmt.Sprintf("%g", math.Float64frombits(uint64(field.Integer))), true
	case zapcore.Float32Type:
		return fmt.Sprintf("%g", math.Float32frombits(uint32(field.Integer))), true
	case zapcore.DurationType:
		return time.Duration(field.Integer).String(), true
	case zapcore.TimeType:
		return time.Unix(0, field.Integer).UTC().Format(time.RFC3339), false
	case zapcore.TimeFullType:
		if t, ok := field.Interface.(time.Time); ok {
			return t.Format(time.RFC3339), false
		}
	case zapcore.ErrorType:
		if err, ok := field.Interface.(error); ok {
			return err.Error(), false
		}
	case zapcore.ByteStringType:
		if b, ok := field.Interface.([]byte); ok {
			return string(b), false
		}
	}
	if field.Interface != nil {
		return fmt.Sprintf("%v", field.Interface), false
	}
	if field.String != "" {
		return field.String, false
	}
	return fmt.Sprintf("%d", field.Integer), false
}
