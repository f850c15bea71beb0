// Package commitmeta assigns dense commit indices to committed oracles,
// grouped by their packed variable count in ascending order, and collects
// the dense witness vector those indices address.
package commitmeta

import (
	"fmt"

	"github.com/vybium/vybium-tensor-pcs/internal/vybium-tensor-pcs/pcs"
)

// CommitMeta records, for each packed variable count v, the number of
// committed multilinears having exactly v packed variables.
type CommitMeta struct {
	nMultilinsByVars []int
}

// New builds a CommitMeta from a per-variable-count bucket count slice.
func New(nMultilinsByVars []int) CommitMeta {
	cp := make([]int, len(nMultilinsByVars))
	copy(cp, nMultilinsByVars)
	return CommitMeta{nMultilinsByVars: cp}
}

// NMultilinsByVars returns the bucket counts, indexed by packed variable count.
func (m CommitMeta) NMultilinsByVars() []int {
	out := make([]int, len(m.nMultilinsByVars))
	copy(out, m.nMultilinsByVars)
	return out
}

// TotalMultilins returns the sum of all bucket counts.
func (m CommitMeta) TotalMultilins() int {
	total := 0
	for _, n := range m.nMultilinsByVars {
		total += n
	}
	return total
}

// RangeByVars returns the half-open commit-index range [start, end) assigned
// to polynomials with exactly v packed variables.
func (m CommitMeta) RangeByVars(v int) (start, end int) {
	for _, n := range m.nMultilinsByVars[:v] {
		start += n
	}
	end = start + m.nMultilinsByVars[v]
	return start, end
}

// OracleKind distinguishes committed oracles (which receive a commit index)
// from derived oracles such as repeating/virtual oracles (which do not).
type OracleKind int

const (
	// Committed oracles occupy a slot in the committed matrix and receive
	// a commit index.
	Committed OracleKind = iota
	// Derived oracles (e.g. a repeating-oracle view of a committed one)
	// never receive a commit index of their own.
	Derived
)

// OracleDescriptor describes one oracle in the order the broader protocol
// enumerates them.
type OracleDescriptor struct {
	ID         int
	NVars      int
	TowerLevel int
	Kind       OracleKind
}

func packedVars(o OracleDescriptor, topLevel int) (int, error) {
	deficit := topLevel - o.TowerLevel
	pv := o.NVars - deficit
	if pv < 0 {
		return 0, &pcs.Error{
			Code:    pcs.ErrOracleTooSmall,
			Message: fmt.Sprintf("oracle %d: n_vars %d smaller than tower-level deficit %d", o.ID, o.NVars, deficit),
		}
	}
	return pv, nil
}

// MakeOracleCommitMeta runs the two-pass bucket algorithm: pass one counts,
// per packed-variable-count bucket, how many committed oracles fall into
// it (recording each oracle's (bucket, index-within-bucket)); pass two,
// once every bucket's final offset is known, assigns commit_index =
// range_by_vars(bucket).start + index_in_bucket. topLevel is the highest
// tower level any oracle in the set is expressed at (the "top" of §3).
func MakeOracleCommitMeta(oracles []OracleDescriptor, topLevel int) (CommitMeta, map[int]int, error) {
	type slot struct {
		pv         int
		idxInBucket int
	}
	slots := make(map[int]slot, len(oracles))
	bucketCounts := make([]int, 0)

	for _, o := range oracles {
		if o.Kind != Committed {
			continue
		}
		pv, err := packedVars(o, topLevel)
		if err != nil {
			return CommitMeta{}, nil, err
		}
		for len(bucketCounts) <= pv {
			bucketCounts = append(bucketCounts, 0)
		}
		slots[o.ID] = slot{pv: pv, idxInBucket: bucketCounts[pv]}
		bucketCounts[pv]++
	}

	meta := New(bucketCounts)

	index := make(map[int]int, len(slots))
	for _, o := range oracles {
		s, ok := slots[o.ID]
		if !ok {
			continue
		}
		start, _ := meta.RangeByVars(s.pv)
		index[o.ID] = start + s.idxInBucket
	}

	return meta, index, nil
}
