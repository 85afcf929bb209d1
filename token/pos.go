package token

import (
	"fmt"
	"sort"
	"strconv"
	"unicode/utf8"
)

// PosDoc records newline offsets of a document so that byte offsets can be
// turned into line and column numbers on demand.
type PosDoc struct {
	d []byte
	n []int
}

func NewPosDoc(d []byte) *PosDoc {
	return &PosDoc{d: d}
}

// LineCol returns the 1-based line and column of byte offset off. Columns
// count runes, not bytes.
func (p *PosDoc) LineCol(off int) (int, int) {
	off = min(max(off, 0), len(p.d))
	p.scanTo(off)
	N := len(p.n)
	di := sort.Search(N, func(i int) bool {
		return p.n[i] >= off
	})
	start := 0
	if di > 0 {
		start = p.n[di-1] + 1
	}
	return di + 1, utf8.RuneCount(p.d[start:off]) + 1
}

// scanTo makes sure every newline before off has been recorded.
func (p *PosDoc) scanTo(off int) {
	i := 0
	if len(p.n) > 0 {
		i = p.n[len(p.n)-1] + 1
	}
	for ; i < off; i++ {
		if p.d[i] == '\n' {
			p.n = append(p.n, i)
		}
	}
}

func (d *PosDoc) Pos(i int) *Pos {
	return &Pos{
		I: i,
		D: d,
	}
}

func (p *PosDoc) end() *Pos {
	return p.Pos(len(p.d))
}

type Pos struct {
	I int
	D *PosDoc
}

func (p *Pos) LineCol() (int, int) {
	return p.D.LineCol(p.I)
}

func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c
}

func (p Pos) String() string {
	sample := "?"
	if p.D != nil && len(p.D.d) > 0 {
		sample = string(p.D.d[max(0, p.I-5):min(p.I+5, len(p.D.d))])
	}
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, p.Line(), p.Col())
}
