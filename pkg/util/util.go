package util

import (
	"io"
	"log"
	"math/rand"
	"time"
)

// NewRand seed 为 0 时使用当前时间
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func Close(closer io.Closer) {
	err := closer.Close()
	if err != nil {
		log.Printf("close faild with error: %v\n", err)
	}
}
