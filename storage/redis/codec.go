package redis

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/poiesic/nyaya/core"
)

const keyspace = "lexvec"

// indexName returns the FT index name for a namespace.
func indexName(ns core.Namespace) string {
	return fmt.Sprintf("%s-%s", keyspace, ns)
}

// keyPrefix returns the hash key prefix the namespace index watches.
func keyPrefix(ns core.Namespace) string {
	return fmt.Sprintf("%s:%s:", keyspace, ns)
}

// documentKey returns the hash key for a document.
func documentKey(ns core.Namespace, id string) string {
	return keyPrefix(ns) + id
}

// vectorToBytes encodes a float32 vector as the little-endian blob
// RediSearch expects for FLOAT32 vector fields.
func vectorToBytes(v []float32) string {
	buf := make([]byte, len(v)*4)
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return string(buf)
}

func containsIgnoreCase(s, substr string) bool {
	ls := len(s)
	lsub := len(substr)
	if lsub > ls {
		return false
	}
	for i := 0; i <= ls-lsub; i++ {
		match := true
		for j := 0; j < lsub; j++ {
			sc := s[i+j]
			tc := substr[j]
			if sc >= 'A' && sc <= 'Z' {
				sc += 'a' - 'A'
			}
			if tc >= 'A' && tc <= 'Z' {
				tc += 'a' - 'A'
			}
			if sc != tc {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
