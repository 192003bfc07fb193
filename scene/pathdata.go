package scene

import (
	"fmt"
	"strconv"

	"github.com/gogpu/vcanvas"
)

// ParsePath parses SVG-style path data. Supported commands are M, L, H, V,
// Q, C and Z; lowercase forms are relative to the current point. Extra
// coordinate pairs after M are treated as L.
func ParsePath(data string) (vcanvas.BezPath, error) {
	s := pathScanner{src: data}
	var (
		p        vcanvas.BezPath
		cur, beg vcanvas.Point
		cmd      byte
	)
	for {
		s.skipSpace()
		if s.done() {
			break
		}
		if c := s.src[s.pos]; isCommand(c) {
			cmd = c
			s.pos++
		} else if cmd == 0 {
			return nil, s.errorf("expected a command")
		}

		rel := cmd >= 'a'
		pt := func() (vcanvas.Point, error) {
			x, err := s.number()
			if err != nil {
				return vcanvas.Point{}, err
			}
			y, err := s.number()
			if err != nil {
				return vcanvas.Point{}, err
			}
			if rel {
				return vcanvas.Pt(cur.X+x, cur.Y+y), nil
			}
			return vcanvas.Pt(x, y), nil
		}

		switch cmd | 0x20 {
		case 'm':
			q, err := pt()
			if err != nil {
				return nil, err
			}
			p.MoveTo(q)
			cur, beg = q, q
			cmd = 'L' | (cmd & 0x20)
		case 'l':
			q, err := pt()
			if err != nil {
				return nil, err
			}
			p.LineTo(q)
			cur = q
		case 'h', 'v':
			v, err := s.number()
			if err != nil {
				return nil, err
			}
			q := cur
			switch {
			case cmd == 'H':
				q.X = v
			case cmd == 'h':
				q.X += v
			case cmd == 'V':
				q.Y = v
			default:
				q.Y += v
			}
			p.LineTo(q)
			cur = q
		case 'q':
			p1, err := pt()
			if err != nil {
				return nil, err
			}
			p2, err := pt()
			if err != nil {
				return nil, err
			}
			p.QuadTo(p1, p2)
			cur = p2
		case 'c':
			p1, err := pt()
			if err != nil {
				return nil, err
			}
			p2, err := pt()
			if err != nil {
				return nil, err
			}
			p3, err := pt()
			if err != nil {
				return nil, err
			}
			p.CurveTo(p1, p2, p3)
			cur = p3
		case 'z':
			p.ClosePath()
			cur = beg
			cmd = 0
		}
	}
	if len(p) > 0 {
		if _, ok := p[0].(vcanvas.MoveTo); !ok {
			return nil, fmt.Errorf("%w: must start with M", ErrPathData)
		}
	}
	return p, nil
}

func isCommand(c byte) bool {
	switch c | 0x20 {
	case 'm', 'l', 'h', 'v', 'q', 'c', 'z':
		return true
	}
	return false
}

type pathScanner struct {
	src string
	pos int
}

func (s *pathScanner) done() bool { return s.pos >= len(s.src) }

func (s *pathScanner) skipSpace() {
	for !s.done() {
		switch s.src[s.pos] {
		case ' ', '\t', '\n', '\r', ',':
			s.pos++
		default:
			return
		}
	}
}

// number scans a decimal number with optional sign and exponent.
func (s *pathScanner) number() (float64, error) {
	s.skipSpace()
	start := s.pos
	if !s.done() && (s.src[s.pos] == '+' || s.src[s.pos] == '-') {
		s.pos++
	}
	digits, dot := false, false
scan:
	for !s.done() {
		c := s.src[s.pos]
		switch {
		case '0' <= c && c <= '9':
			digits = true
		case c == '.' && !dot:
			dot = true
		case (c == 'e' || c == 'E') && digits:
			s.pos++
			if !s.done() && (s.src[s.pos] == '+' || s.src[s.pos] == '-') {
				s.pos++
			}
			continue
		default:
			break scan
		}
		s.pos++
	}
	if !digits {
		return 0, s.errorf("expected a number")
	}
	v, err := strconv.ParseFloat(s.src[start:s.pos], 64)
	if err != nil {
		return 0, s.errorf("bad number %q", s.src[start:s.pos])
	}
	return v, nil
}

func (s *pathScanner) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: offset %d: %s", ErrPathData, s.pos, fmt.Sprintf(format, args...))
}
