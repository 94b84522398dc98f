package main

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/shogo82148/printf"
)

var errArgCount = errors.New("wrong number of arguments")

// parseArgs converts the textual arguments into the kinds format consumes.
func parseArgs(format string, ss []string) ([]printf.Arg, error) {
	kinds := printf.Kinds(format)
	if len(kinds) != len(ss) {
		return nil, fmt.Errorf("%w: format wants %d, got %d", errArgCount, len(kinds), len(ss))
	}
	args := make([]printf.Arg, len(ss))
	for i, s := range ss {
		a, err := parseArg(kinds[i], s)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		args[i] = a
	}
	return args, nil
}

func parseArg(kind printf.Kind, s string) (printf.Arg, error) {
	switch kind {
	case printf.KindString:
		return printf.String(s), nil
	case printf.KindChar:
		r, size := utf8.DecodeRuneInString(s)
		if size == 0 || size != len(s) || r == utf8.RuneError {
			return printf.Arg{}, fmt.Errorf("%q is not a single character", s)
		}
		return printf.Char(r), nil
	case printf.KindInt32:
		v, err := strconv.ParseInt(s, 0, 32)
		if err != nil {
			return printf.Arg{}, err
		}
		return printf.Int32(int32(v)), nil
	case printf.KindInt64:
		v, err := strconv.ParseInt(s, 0, 64)
		if err != nil {
			return printf.Arg{}, err
		}
		return printf.Int64(v), nil
	case printf.KindUint32:
		v, err := strconv.ParseUint(s, 0, 32)
		if err != nil {
			return printf.Arg{}, err
		}
		return printf.Uint32(uint32(v)), nil
	case printf.KindUint64:
		v, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return printf.Arg{}, err
		}
		return printf.Uint64(v), nil
	case printf.KindFloat32:
		v, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return printf.Arg{}, err
		}
		return printf.Float32(float32(v)), nil
	case printf.KindFloat64:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return printf.Arg{}, err
		}
		return printf.Float64(v), nil
	}
	return printf.Arg{}, fmt.Errorf("unsupported kind %s", kind)
}
