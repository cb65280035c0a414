// Package id generates identifiers for events and recording sessions.
package id

import (
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/rs/xid"
)

// IDGenerator can generate IDs.
type IDGenerator interface {
	// Generate returns an ID that has not been returned before.
	Generate() string
}

var (
	generatorMutex sync.Mutex
	generator      IDGenerator
)

// NewSequentialIDGenerator returns a generator of decimal numbers starting
// from 1. Sequential IDs make replays deterministic.
func NewSequentialIDGenerator() IDGenerator {
	return &sequentialIDGenerator{}
}

// NewXIDGenerator returns a generator of globally unique xid strings.
func NewXIDGenerator() IDGenerator {
	return xidGenerator{}
}

// UseGenerator replaces the package-level generator used by Generate.
func UseGenerator(g IDGenerator) {
	generatorMutex.Lock()
	defer generatorMutex.Unlock()

	generator = g
}

// Generate returns an ID from the package-level generator, which is
// sequential unless replaced with UseGenerator.
func Generate() string {
	generatorMutex.Lock()
	if generator == nil {
		generator = NewSequentialIDGenerator()
	}
	g := generator
	generatorMutex.Unlock()

	return g.Generate()
}

type sequentialIDGenerator struct {
	nextID uint64
}

func (g *sequentialIDGenerator) Generate() string {
	idNumber := atomic.AddUint64(&g.nextID, 1)

	return strconv.FormatUint(idNumber, 10)
}

type xidGenerator struct{}

func (xidGenerator) Generate() string {
	return xid.New().String()
}
