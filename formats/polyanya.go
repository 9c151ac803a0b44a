package formats

import (
	"bufio"
	"io"
	"strconv"

	"github.com/katalvlaran/polynav/geom"
	"github.com/katalvlaran/polynav/navmesh"
)

// ParsePolyanyaMesh reads the Polyanya project's line-oriented ASCII mesh
// format ("mesh" header, version 2 or 3, vertex lines each carrying their
// own polygon fan, polygon lines each carrying their own neighbor list)
// and returns the equivalent navmesh.Mesh. The vertex lines' fans are
// taken as authoritative; the polygon lines' neighbor lists are
// structurally redundant with them (both encode the same adjacency) and
// are used only to count each polygon's neighbors, which sets its
// OneWay hint (at most one neighbor); they are not checked against the
// fans.
//
// Accepts whitespace-separated tokens regardless of how they're wrapped
// across lines, since the reference format itself is whitespace-delimited
// rather than strictly one-record-per-line.
func ParsePolyanyaMesh(r io.Reader) (*navmesh.Mesh, error) {
	toks := newTokenizer(r)

	header, err := toks.next()
	if err != nil {
		return nil, err
	}
	if header != "mesh" {
		return nil, malformed(0, "expected header %q, got %q", "mesh", header)
	}
	version, err := toks.nextInt()
	if err != nil {
		return nil, err
	}
	if version != 2 && version != 3 {
		return nil, malformed(0, "unsupported mesh version %d", version)
	}

	nv, err := toks.nextInt()
	if err != nil {
		return nil, err
	}
	np, err := toks.nextInt()
	if err != nil {
		return nil, err
	}

	vertices := make([]navmesh.Vertex, nv)
	for i := 0; i < nv; i++ {
		x, err := toks.nextFloat()
		if err != nil {
			return nil, err
		}
		y, err := toks.nextFloat()
		if err != nil {
			return nil, err
		}
		flags, err := toks.nextInt()
		if err != nil {
			return nil, err
		}
		fan := make([]navmesh.FanEntry, flags)
		for j := 0; j < flags; j++ {
			pid, err := toks.nextInt()
			if err != nil {
				return nil, err
			}
			if pid < 0 {
				fan[j] = navmesh.ObstacleEntry
			} else {
				fan[j] = navmesh.PackRef(0, pid)
			}
		}
		vertices[i] = navmesh.Vertex{Point: geom.Point{X: x, Y: y}, Fan: fan}
	}

	polygons := make([]navmesh.Polygon, np)
	for i := 0; i < np; i++ {
		n, err := toks.nextInt()
		if err != nil {
			return nil, err
		}
		vs := make([]int32, n)
		for j := 0; j < n; j++ {
			vid, err := toks.nextInt()
			if err != nil {
				return nil, err
			}
			vs[j] = int32(vid)
		}
		neighborCount := 0
		for j := 0; j < n; j++ {
			q, err := toks.nextInt()
			if err != nil {
				return nil, err
			}
			if q >= 0 {
				neighborCount++
			}
		}
		polygons[i] = navmesh.Polygon{Vertices: vs, OneWay: neighborCount <= 1}
	}

	return navmesh.New(vertices, polygons)
}

type tokenizer struct {
	s *bufio.Scanner
}

func newTokenizer(r io.Reader) *tokenizer {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	s.Split(bufio.ScanWords)
	return &tokenizer{s: s}
}

func (t *tokenizer) next() (string, error) {
	if !t.s.Scan() {
		if err := t.s.Err(); err != nil {
			return "", err
		}
		return "", malformed(0, "unexpected end of input")
	}
	return t.s.Text(), nil
}

func (t *tokenizer) nextInt() (int, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, malformed(0, "expected integer, got %q", tok)
	}
	return n, nil
}

func (t *tokenizer) nextFloat() (float64, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, malformed(0, "expected number, got %q", tok)
	}
	return f, nil
}
