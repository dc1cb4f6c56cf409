package flowbox

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrBadColor reports a color value that is not parseable hex RGB.
var ErrBadColor = errors.New("flowbox: bad color")

// ParseColor parses a "#rrggbb" hex string into a Color.
func ParseColor(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q: %v", ErrBadColor, s, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// MapResolver resolves placeholders from a fixed name-to-operation table.
func MapResolver(args map[string]Op) Resolver {
	return func(arg []byte) (Op, bool) {
		op, ok := args[string(arg)]
		return op, ok
	}
}

// ChainResolvers tries each resolver in order; the first match wins. Nil
// resolvers are skipped.
func ChainResolvers(resolvers ...Resolver) Resolver {
	return func(arg []byte) (Op, bool) {
		for _, resolve := range resolvers {
			if resolve == nil {
				continue
			}
			if op, ok := resolve(arg); ok {
				return op, true
			}
		}
		return Op{}, false
	}
}

// DirectiveResolver resolves inline style directives:
//
//	{#rrggbb}     switch the text color
//	{font:name}   switch to a named font
//
// Color values are parsed as hex RGB. Unknown directives, bad colors, and
// unknown font names are dropped, per the translator contract.
func DirectiveResolver(fonts map[string]Font) Resolver {
	return func(arg []byte) (Op, bool) {
		s := string(arg)
		switch {
		case strings.HasPrefix(s, "#"):
			c, err := ParseColor(s)
			if err != nil {
				return Op{}, false
			}
			return SetColorOp(c), true
		case strings.HasPrefix(s, "font:"):
			f, ok := fonts[strings.TrimPrefix(s, "font:")]
			if !ok || f == nil {
				return Op{}, false
			}
			return SetFontOp(f), true
		}
		return Op{}, false
	}
}
