package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// Wire types, low three bits of each tag byte.
const (
	wireVarint  = 0 // ints, bools, colors
	wireFixed64 = 1 // float64 bits, little-endian
	wireBytes   = 2 // length-prefixed strings
)

// ErrTruncated indicates the buffer ended mid-field.
var ErrTruncated = errors.New("wire: truncated record")

// Marshal encodes r. Zero-valued fields are omitted (implicit defaults).
func Marshal(r Record) []byte {
	var buf []byte

	buf = appendVarintField(buf, tagSchemaVersion, uint64(r.SchemaVersion))
	buf = appendFloatField(buf, tagFallSpeed, r.FallSpeed)
	buf = appendVarintField(buf, tagColumnCount, uint64(r.ColumnCount))
	buf = appendFloatField(buf, tagLineSpacing, r.LineSpacing)
	buf = appendFloatField(buf, tagActivePercentage, r.ActivePercentage)
	buf = appendFloatField(buf, tagSpeedVariance, r.SpeedVariance)
	buf = appendFloatField(buf, tagGlowIntensity, r.GlowIntensity)
	buf = appendFloatField(buf, tagJitterAmount, r.JitterAmount)
	buf = appendFloatField(buf, tagFlickerAmount, r.FlickerAmount)
	buf = appendFloatField(buf, tagMutationRate, r.MutationRate)
	buf = appendVarintField(buf, tagGrainDensity, uint64(r.GrainDensity))
	buf = appendFloatField(buf, tagGrainOpacity, r.GrainOpacity)
	buf = appendVarintField(buf, tagTargetFPS, uint64(r.TargetFPS))
	buf = appendVarintField(buf, tagBackgroundColor, r.BackgroundColor)
	buf = appendVarintField(buf, tagHeadColor, r.HeadColor)
	buf = appendVarintField(buf, tagBrightTrailColor, r.BrightTrailColor)
	buf = appendVarintField(buf, tagTrailColor, r.TrailColor)
	buf = appendVarintField(buf, tagDimColor, r.DimColor)
	buf = appendVarintField(buf, tagUIAccent, r.UIAccent)
	buf = appendVarintField(buf, tagUIOverlayBg, r.UIOverlayBg)
	buf = appendVarintField(buf, tagUISelectionBg, r.UISelectionBg)
	buf = appendBoolField(buf, tagAdvancedColorsEnabled, r.AdvancedColorsEnabled)
	buf = appendBoolField(buf, tagLinkUIAndRainColors, r.LinkUIAndRainColors)
	buf = appendVarintField(buf, tagFontSize, uint64(r.FontSize))
	buf = appendStringField(buf, tagSymbolSetID, r.SymbolSetID)
	buf = appendStringField(buf, tagSymbolSetsJSON, r.SymbolSetsJSON)
	buf = appendStringField(buf, tagActiveCustomSetID, r.ActiveCustomSetID)
	buf = appendVarintField(buf, tagMaxTrailLength, uint64(r.MaxTrailLength))
	buf = appendVarintField(buf, tagMaxBrightTrailLength, uint64(r.MaxBrightTrailLength))
	buf = appendStringField(buf, tagThemePresetID, r.ThemePresetID)
	buf = appendFloatField(buf, tagColumnStartDelay, r.ColumnStartDelay)
	buf = appendFloatField(buf, tagColumnRestartDelay, r.ColumnRestartDelay)
	buf = appendBoolField(buf, tagAlwaysShowHints, r.AlwaysShowHints)

	return buf
}

// Unmarshal decodes data into a Record. Unknown tags are skipped. A decode
// error means the bytes are corrupt; callers are expected to fall back to
// defaults rather than surface it to the user.
func Unmarshal(data []byte) (Record, error) {
	var r Record
	for len(data) > 0 {
		key, n := binary.Uvarint(data)
		if n <= 0 {
			return r, ErrTruncated
		}
		data = data[n:]

		tag := key >> 3
		wt := key & 0x7

		switch wt {
		case wireVarint:
			v, n := binary.Uvarint(data)
			if n <= 0 {
				return r, ErrTruncated
			}
			data = data[n:]
			r.setVarint(tag, v)
		case wireFixed64:
			if len(data) < 8 {
				return r, ErrTruncated
			}
			bits := binary.LittleEndian.Uint64(data)
			data = data[8:]
			r.setFloat(tag, math.Float64frombits(bits))
		case wireBytes:
			size, n := binary.Uvarint(data)
			if n <= 0 {
				return r, ErrTruncated
			}
			data = data[n:]
			if uint64(len(data)) < size {
				return r, ErrTruncated
			}
			r.setString(tag, string(data[:size]))
			data = data[size:]
		default:
			return r, fmt.Errorf("wire: unknown wire type %d", wt)
		}
	}
	return r, nil
}

func (r *Record) setVarint(tag, v uint64) {
	switch tag {
	case tagSchemaVersion:
		r.SchemaVersion = int64(v)
	case tagColumnCount:
		r.ColumnCount = int64(v)
	case tagGrainDensity:
		r.GrainDensity = int64(v)
	case tagTargetFPS:
		r.TargetFPS = int64(v)
	case tagBackgroundColor:
		r.BackgroundColor = v
	case tagHeadColor:
		r.HeadColor = v
	case tagBrightTrailColor:
		r.BrightTrailColor = v
	case tagTrailColor:
		r.TrailColor = v
	case tagDimColor:
		r.DimColor = v
	case tagUIAccent:
		r.UIAccent = v
	case tagUIOverlayBg:
		r.UIOverlayBg = v
	case tagUISelectionBg:
		r.UISelectionBg = v
	case tagAdvancedColorsEnabled:
		r.AdvancedColorsEnabled = v != 0
	case tagLinkUIAndRainColors:
		r.LinkUIAndRainColors = v != 0
	case tagFontSize:
		r.FontSize = int64(v)
	case tagMaxTrailLength:
		r.MaxTrailLength = int64(v)
	case tagMaxBrightTrailLength:
		r.MaxBrightTrailLength = int64(v)
	case tagAlwaysShowHints:
		r.AlwaysShowHints = v != 0
	}
}

func (r *Record) setFloat(tag uint64, v float64) {
	switch tag {
	case tagFallSpeed:
		r.FallSpeed = v
	case tagLineSpacing:
		r.LineSpacing = v
	case tagActivePercentage:
		r.ActivePercentage = v
	case tagSpeedVariance:
		r.SpeedVariance = v
	case tagGlowIntensity:
		r.GlowIntensity = v
	case tagJitterAmount:
		r.JitterAmount = v
	case tagFlickerAmount:
		r.FlickerAmount = v
	case tagMutationRate:
		r.MutationRate = v
	case tagGrainOpacity:
		r.GrainOpacity = v
	case tagColumnStartDelay:
		r.ColumnStartDelay = v
	case tagColumnRestartDelay:
		r.ColumnRestartDelay = v
	}
}

func (r *Record) setString(tag uint64, v string) {
	switch tag {
	case tagSymbolSetID:
		r.SymbolSetID = v
	case tagSymbolSetsJSON:
		r.SymbolSetsJSON = v
	case tagActiveCustomSetID:
		r.ActiveCustomSetID = v
	case tagThemePresetID:
		r.ThemePresetID = v
	}
}

func appendVarintField(buf []byte, tag int, v uint64) []byte {
	if v == 0 {
		return buf
	}
	buf = binary.AppendUvarint(buf, uint64(tag)<<3|wireVarint)
	return binary.AppendUvarint(buf, v)
}

func appendFloatField(buf []byte, tag int, v float64) []byte {
	if v == 0 {
		return buf
	}
	buf = binary.AppendUvarint(buf, uint64(tag)<<3|wireFixed64)
	return binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
}

func appendBoolField(buf []byte, tag int, v bool) []byte {
	if !v {
		return buf
	}
	buf = binary.AppendUvarint(buf, uint64(tag)<<3|wireVarint)
	return binary.AppendUvarint(buf, 1)
}

func appendStringField(buf []byte, tag int, v string) []byte {
	if v == "" {
		return buf
	}
	buf = binary.AppendUvarint(buf, uint64(tag)<<3|wireBytes)
	buf = binary.AppendUvarint(buf, uint64(len(v)))
	return append(buf, v...)
}
