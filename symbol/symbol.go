// Package symbol manages symbols. Symbols are deduped strings represented as
// small integers, with precomputed hashes.
package symbol

import (
	"sync"

	"github.com/grailbio/base/log"
	"github.com/grailbio/lal/hash"
)

// ID represents an interned symbol.
type ID int32

const (
	// Invalid is a sentinel.
	Invalid = ID(0)
)

type idInfo struct {
	name string
	hash hash.Hash
}

// Singleton symbol intern table.
type table struct {
	mu   sync.RWMutex
	syms map[string]ID
	ids  []idInfo
}

var symbols = table{
	syms: map[string]ID{"(invalid)": 0},
	ids:  []idInfo{{"(invalid)", hash.String("(invalid)")}},
}

// Hash hashes a symbol.
func (id ID) Hash() hash.Hash {
	symbols.mu.RLock()
	h := symbols.ids[id].hash
	symbols.mu.RUnlock()
	return h
}

// Str returns a human-readable string.
//
// Note: we don't call it String() since it makes the code deadlock prone.
func (id ID) Str() string {
	symbols.mu.RLock()
	defer symbols.mu.RUnlock()
	if int(id) >= len(symbols.ids) {
		log.Panicf("symboltable: id %d not found", id)
	}
	name := symbols.ids[id].name
	if name == "" {
		log.Panicf("symboltable: id %d not found", id)
	}
	return name
}

// Intern finds or creates an ID for the given string.
func Intern(v string) ID {
	if v == "" {
		log.Panicf("Empty symbol")
	}
	symbols.mu.RLock()
	id, ok := symbols.syms[v]
	symbols.mu.RUnlock()
	if ok {
		return id
	}
	symbols.mu.Lock()
	defer symbols.mu.Unlock()
	if id, ok := symbols.syms[v]; ok {
		return id
	}
	id = ID(len(symbols.ids))
	symbols.ids = append(symbols.ids, idInfo{v, hash.String(v)})
	symbols.syms[v] = id
	return id
}
