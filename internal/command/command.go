// Package command converts the host tool's compact textual commands to
// and from structured values. A bookmark command is a comma-separated
// list of sub-tokens mixing position commands (q_..., dpos_...), control
// tokens (spin<deg>, stop, next, -> ...) and at most one easing token.
package command

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/ivlev/campath/internal/easing"
	"github.com/ivlev/campath/internal/mathutil"
)

// Kind discriminates the token grammars. Unrecognized input is a value,
// not an error: callers decide whether to fall back or reject.
type Kind int

const (
	KindUnrecognized Kind = iota
	KindPosition
	KindControl
	KindEasing
)

// Token is the discriminated result of ParseToken. Exactly one of the
// payload fields is set for the matching Kind.
type Token struct {
	Kind     Kind
	Raw      string
	Position *Position
	Control  *Control
	Easing   *Easing
}

// Easing is a parsed easing token: curve, direction and, for the drift
// family, its two integer axis parameters.
type Easing struct {
	CurveID   string
	Direction easing.Direction
	Params    *easing.Params
}

// Rotation holds Euler angles in degrees.
type Rotation struct {
	Pitch float64
	Yaw   float64
	Roll  float64
}

// Position is a parsed q_ or dpos_ command. Rotation is present when the
// command carried explicit angles or, for dpos_, when it was derived via
// the look-at rule.
type Position struct {
	Pos      mathutil.Vec3
	FOV      float64
	Rotation *Rotation
}

// Control is a parsed control token. Degrees is set for spin only.
type Control struct {
	Name    string
	Degrees float64
}

// DefaultHeadPosition is the fixed look-at target used when a dpos_
// command has no explicit rotation: straight ahead at head height.
var DefaultHeadPosition = mathutil.Vec3{X: 0, Y: 1.7, Z: 0}

var driftPattern = regexp.MustCompile(`^ease_(\d+)_(\d+)$`)

// directionPrefixes is ordered so InOut/IO match before the shorter
// In/I and Out/O prefixes; a partial match would otherwise swallow the
// wrong characters ("InOutQuad" must not parse as In + "OutQuad").
var directionPrefixes = []struct {
	prefix string
	dir    easing.Direction
}{
	{"InOut", easing.EaseBoth},
	{"IO", easing.EaseBoth},
	{"In", easing.EaseIn},
	{"I", easing.EaseIn},
	{"Out", easing.EaseOut},
	{"O", easing.EaseOut},
}

// ParseCommand parses an easing token: {In|Out|InOut|I|O|IO}<CurveName>
// or the drift literal ease_<x>_<y>. Any other shape, including
// truncated or empty tokens, reports ok=false.
func ParseCommand(reg *easing.Registry, token string) (Easing, bool) {
	if token == "" {
		return Easing{}, false
	}
	if m := driftPattern.FindStringSubmatch(token); m != nil {
		x, errX := strconv.Atoi(m[1])
		y, errY := strconv.Atoi(m[2])
		if errX != nil || errY != nil {
			return Easing{}, false
		}
		if _, ok := reg.Lookup(easing.Drift); !ok {
			return Easing{}, false
		}
		return Easing{
			CurveID:   easing.Drift,
			Direction: easing.EaseIn,
			Params:    &easing.Params{X: float64(x), Y: float64(y)},
		}, true
	}
	for _, p := range directionPrefixes {
		rest, found := strings.CutPrefix(token, p.prefix)
		if !found || rest == "" {
			continue
		}
		curve, ok := reg.LookupHost(rest)
		if !ok {
			continue
		}
		return Easing{CurveID: curve.ID, Direction: p.dir}, true
	}
	return Easing{}, false
}

// ParseEasingToken is the lenient form used on imported documents, which
// carry tokens like easeInOutQuad: one leading "ease" is stripped before
// retrying the strict grammar. The bare easeLinear/linear literals are
// not easing tokens here; the importer treats them as "disable easing".
func ParseEasingToken(reg *easing.Registry, token string) (Easing, bool) {
	if e, ok := ParseCommand(reg, token); ok {
		return e, true
	}
	if rest, found := strings.CutPrefix(token, "ease"); found {
		return ParseCommand(reg, rest)
	}
	return Easing{}, false
}

// FormatCommand renders the short-form token for a curve and direction.
// It reports ok=false when the curve is unknown or not host-compatible,
// or when drift parameters are required but missing. FormatCommand and
// ParseCommand are mutual inverses over the host-compatible catalog.
func FormatCommand(reg *easing.Registry, curveID string, dir easing.Direction, params *easing.Params) (string, bool) {
	curve, ok := reg.Lookup(curveID)
	if !ok || !curve.HostCompatible {
		return "", false
	}
	if curve.Parametric {
		if params == nil {
			return "", false
		}
		return "ease_" + strconv.Itoa(int(params.X)) + "_" + strconv.Itoa(int(params.Y)), true
	}
	var prefix string
	switch dir {
	case easing.EaseOut:
		prefix = "O"
	case easing.EaseBoth:
		prefix = "IO"
	default:
		prefix = "I"
	}
	return prefix + curve.HostName, true
}

// ExtractEasingToken scans a full bookmark command from the end and
// returns the first sub-token that parses as an easing token, along with
// its verbatim text. Position and control sub-tokens are skipped.
func ExtractEasingToken(reg *easing.Registry, fullCommand string) (Easing, string, bool) {
	parts := strings.Split(fullCommand, ",")
	for i := len(parts) - 1; i >= 0; i-- {
		sub := strings.TrimSpace(parts[i])
		if e, ok := ParseEasingToken(reg, sub); ok {
			return e, sub, true
		}
	}
	return Easing{}, "", false
}

// ParseToken classifies one sub-token into the discriminated Token
// result, trying each grammar in fixed priority order.
func ParseToken(reg *easing.Registry, token string) Token {
	raw := strings.TrimSpace(token)
	if pos, ok := ParsePositionCommand(raw); ok {
		p := pos
		return Token{Kind: KindPosition, Raw: raw, Position: &p}
	}
	if ctl, ok := parseControl(raw); ok {
		c := ctl
		return Token{Kind: KindControl, Raw: raw, Control: &c}
	}
	if e, ok := ParseEasingToken(reg, raw); ok {
		es := e
		return Token{Kind: KindEasing, Raw: raw, Easing: &es}
	}
	return Token{Kind: KindUnrecognized, Raw: raw}
}

func parseControl(token string) (Control, bool) {
	switch {
	case token == "stop" || token == "next":
		return Control{Name: token}, true
	case strings.HasPrefix(token, "-> "):
		return Control{Name: "->"}, true
	case strings.HasPrefix(token, "spin"):
		deg, err := strconv.ParseFloat(token[len("spin"):], 64)
		if err != nil {
			return Control{}, false
		}
		return Control{Name: "spin", Degrees: deg}, true
	}
	return Control{}, false
}

// ParsePositionCommand recognizes the two position grammars:
// q_X_Y_Z[_RX_RY_RZ_FOV[...]] with explicit rotation, and dpos_X_Y_Z_FOV
// where the rotation is derived by looking at DefaultHeadPosition.
// Control-only and easing-only tokens report ok=false.
func ParsePositionCommand(cmd string) (Position, bool) {
	parts := strings.Split(cmd, "_")
	switch parts[0] {
	case "q":
		if len(parts) < 4 {
			return Position{}, false
		}
		pos, ok := parseVec(parts[1:4])
		if !ok {
			return Position{}, false
		}
		result := Position{Pos: pos}
		if len(parts) >= 8 {
			rot, ok := parseVec(parts[4:7])
			if !ok {
				return Position{}, false
			}
			fov, err := strconv.ParseFloat(parts[7], 64)
			if err != nil {
				return Position{}, false
			}
			result.Rotation = &Rotation{Pitch: rot.X, Yaw: rot.Y, Roll: rot.Z}
			result.FOV = fov
		}
		return result, true
	case "dpos":
		if len(parts) < 5 {
			return Position{}, false
		}
		pos, ok := parseVec(parts[1:4])
		if !ok {
			return Position{}, false
		}
		fov, err := strconv.ParseFloat(parts[4], 64)
		if err != nil {
			return Position{}, false
		}
		rot := CalculateLookAt(pos, DefaultHeadPosition)
		return Position{Pos: pos, FOV: fov, Rotation: &rot}, true
	}
	return Position{}, false
}

func parseVec(fields []string) (mathutil.Vec3, bool) {
	vals := make([]float64, 3)
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return mathutil.Vec3{}, false
		}
		vals[i] = v
	}
	return mathutil.Vec3{X: vals[0], Y: vals[1], Z: vals[2]}, true
}

// CalculateLookAt derives the rotation that points a camera at position
// toward target: yaw = atan2(dx,dz), pitch = -atan2(dy, horizontal
// distance), both in degrees; roll is always 0.
func CalculateLookAt(position, target mathutil.Vec3) Rotation {
	d := target.Sub(position)
	yaw := math.Atan2(d.X, d.Z) * 180 / math.Pi
	pitch := -math.Atan2(d.Y, math.Sqrt(d.X*d.X+d.Z*d.Z)) * 180 / math.Pi
	return Rotation{Pitch: pitch, Yaw: yaw}
}
