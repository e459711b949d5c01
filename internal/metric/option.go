package metric

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	flag "github.com/spf13/pflag"
)

// Kind selects how an option's raw value is parsed.
type Kind int

const (
	// KindString passes the raw value through unchanged.
	KindString Kind = iota
	// KindInt parses a base-10 integer.
	KindInt
	// KindFloat parses a decimal number.
	KindFloat
	// KindPattern compiles the value as a regular expression.
	KindPattern
	// KindStringList parses a comma-separated list of strings.
	KindStringList
)

// Option declares one configurable metric parameter: a canonical flag
// name, an optional one-letter short flag, a help string, a value kind,
// and an optional default applied when the caller omits the option.
// Defaults are given in raw (string-typed) form for KindPattern and in
// native form otherwise.
type Option struct {
	Name     string
	Short    string
	Help     string
	Kind     Kind
	Default  any
	Required bool
}

// Resolve parses raw option values against a declared schema, applying
// defaults and reporting unknown or missing-required options. The
// resulting Values map is what Columns and Process consume.
func Resolve(options []Option, raw map[string]string) (Values, error) {
	byName := make(map[string]Option, len(options))
	for _, opt := range options {
		byName[opt.Name] = opt
	}
	for name := range raw {
		if _, ok := byName[name]; !ok {
			return nil, fmt.Errorf("unknown option %q (available: %s)",
				name, strings.Join(optionNames(options), ", "))
		}
	}

	vals := make(Values, len(options))
	for _, opt := range options {
		rawValue, provided := raw[opt.Name]
		if !provided {
			if opt.Required {
				return nil, fmt.Errorf("option %q is required", opt.Name)
			}
			if opt.Default == nil {
				continue
			}
			parsed, err := applyDefault(opt)
			if err != nil {
				return nil, err
			}
			vals[opt.Name] = parsed
			continue
		}

		parsed, err := parseValue(opt, rawValue)
		if err != nil {
			return nil, err
		}
		vals[opt.Name] = parsed
	}
	return vals, nil
}

// BindFlags registers every option on a pflag flag set so CLI parsing
// and the declarative schema stay in sync.
func BindFlags(fs *flag.FlagSet, options []Option) {
	for _, opt := range options {
		switch opt.Kind {
		case KindInt:
			def, _ := opt.Default.(int)
			fs.IntP(opt.Name, opt.Short, def, opt.Help)
		case KindFloat:
			def, _ := opt.Default.(float64)
			fs.Float64P(opt.Name, opt.Short, def, opt.Help)
		case KindStringList:
			def, _ := opt.Default.([]string)
			fs.StringSliceP(opt.Name, opt.Short, def, opt.Help)
		default:
			def, _ := opt.Default.(string)
			fs.StringP(opt.Name, opt.Short, def, opt.Help)
		}
	}
}

// FromFlags reads parsed flag values back into a Values map, compiling
// pattern options and enforcing required ones.
func FromFlags(fs *flag.FlagSet, options []Option) (Values, error) {
	vals := make(Values, len(options))
	for _, opt := range options {
		if opt.Required && !fs.Changed(opt.Name) && opt.Default == nil {
			return nil, fmt.Errorf("option %q is required", opt.Name)
		}

		switch opt.Kind {
		case KindInt:
			n, err := fs.GetInt(opt.Name)
			if err != nil {
				return nil, err
			}
			vals[opt.Name] = n
		case KindFloat:
			f, err := fs.GetFloat64(opt.Name)
			if err != nil {
				return nil, err
			}
			vals[opt.Name] = f
		case KindStringList:
			list, err := fs.GetStringSlice(opt.Name)
			if err != nil {
				return nil, err
			}
			if len(list) > 0 || opt.Default != nil {
				vals[opt.Name] = list
			}
		case KindPattern:
			s, err := fs.GetString(opt.Name)
			if err != nil {
				return nil, err
			}
			re, err := compilePattern(opt.Name, s)
			if err != nil {
				return nil, err
			}
			vals[opt.Name] = re
		default:
			s, err := fs.GetString(opt.Name)
			if err != nil {
				return nil, err
			}
			vals[opt.Name] = s
		}
	}
	return vals, nil
}

func applyDefault(opt Option) (any, error) {
	if opt.Kind == KindPattern {
		src, ok := opt.Default.(string)
		if !ok {
			return nil, fmt.Errorf("option %q: pattern default must be a string", opt.Name)
		}
		return compilePattern(opt.Name, src)
	}
	return opt.Default, nil
}

func parseValue(opt Option, raw string) (any, error) {
	switch opt.Kind {
	case KindInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("option %q: %q is not an integer", opt.Name, raw)
		}
		return n, nil
	case KindFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("option %q: %q is not a number", opt.Name, raw)
		}
		return f, nil
	case KindPattern:
		return compilePattern(opt.Name, raw)
	case KindStringList:
		parts := strings.Split(raw, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				out = append(out, p)
			}
		}
		return out, nil
	default:
		return raw, nil
	}
}

func compilePattern(name, src string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("option %q: invalid pattern %q: %w", name, src, err)
	}
	return re, nil
}

func optionNames(options []Option) []string {
	names := make([]string, 0, len(options))
	for _, opt := range options {
		names = append(names, opt.Name)
	}
	return names
}
