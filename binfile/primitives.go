package binfile

import (
	"fmt"
	"math"
	"strconv"

	"github.com/mogaika/bindump/utils"
)

// primitive reads a fixed width scalar and formats it for display.
type primitive struct {
	tag  string
	read func(bs *utils.BufStack) (string, error)
}

var primitives = map[Action]primitive{
	ACTION_INT:        {"", readInt},
	ACTION_FLOAT:      {"float", readFloat},
	ACTION_Q20_12:     {"Q20.12", readQ20_12},
	ACTION_BYTE:       {"byte", readByte},
	ACTION_USHORT:     {"ushort", readUShort},
	ACTION_Q4_4:       {"Q4.4", readQ4_4},
	ACTION_Q8_8:       {"Q8.8", readShortFixed(0x100)},
	ACTION_Q4_12:      {"Q4.12", readShortFixed(0x1000)},
	ACTION_Q11_5:      {"Q11.5", readShortFixed(0x20)},
	ACTION_BYTEN:      {"ByteN", readByteN},
	ACTION_UNKNOWN_11: {"UNKNOWN_11", readRawShort},
	ACTION_UNKNOWN_13: {"UNKNOWN_13", readRawShort},
}

// FormatFloat renders like C printf "%f" with six digits,
// including its spelling of infinities and NaN.
func FormatFloat(v float32) string {
	f := float64(v)
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'f', 6, 64)
}

func readInt(bs *utils.BufStack) (string, error) {
	v, err := bs.ReadLU32()
	if err != nil {
		return "", err
	}
	return strconv.Itoa(int(int32(v))), nil
}

func readFloat(bs *utils.BufStack) (string, error) {
	v, err := bs.ReadLF()
	if err != nil {
		return "", err
	}
	return FormatFloat(v), nil
}

func readQ20_12(bs *utils.BufStack) (string, error) {
	v, err := bs.ReadLU32()
	if err != nil {
		return "", err
	}
	return FormatFloat(float32(int32(v)) / 0x1000), nil
}

func readByte(bs *utils.BufStack) (string, error) {
	v, err := bs.ReadByte()
	if err != nil {
		return "", err
	}
	return strconv.Itoa(int(v)), nil
}

func readUShort(bs *utils.BufStack) (string, error) {
	v, err := bs.ReadLU16()
	if err != nil {
		return "", err
	}
	return strconv.Itoa(int(v)), nil
}

func readQ4_4(bs *utils.BufStack) (string, error) {
	v, err := bs.ReadByte()
	if err != nil {
		return "", err
	}
	return FormatFloat(float32(v) / 16), nil
}

func readShortFixed(divisor float32) func(bs *utils.BufStack) (string, error) {
	return func(bs *utils.BufStack) (string, error) {
		v, err := bs.ReadLU16()
		if err != nil {
			return "", err
		}
		return FormatFloat(float32(int16(v)) / divisor), nil
	}
}

func readByteN(bs *utils.BufStack) (string, error) {
	v, err := bs.ReadByte()
	if err != nil {
		return "", err
	}
	return FormatFloat(float32(int8(v)) / 0x7f), nil
}

// readRawShort is for 16-bit fields whose layout is still unknown. They
// are shown as hex and never converted.
func readRawShort(bs *utils.BufStack) (string, error) {
	v, err := bs.ReadLU16()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("0x%04x", v), nil
}
