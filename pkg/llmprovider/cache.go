package llmprovider

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// responseCache memoizes generation responses for identical prompts.
// Ranking the same unchanged task set, or re-extracting the same text,
// should not cost another model round trip.
type responseCache struct {
	lru *expirable.LRU[string, *Response]
}

func newResponseCache(size int, ttl time.Duration) *responseCache {
	if size <= 0 {
		size = 128
	}
	return &responseCache{
		lru: expirable.NewLRU[string, *Response](size, nil, ttl),
	}
}

func (c *responseCache) key(req *Request) string {
	h := sha256.New()
	h.Write([]byte(req.SystemInstruction))
	h.Write([]byte{0})
	h.Write([]byte(req.Prompt))
	return hex.EncodeToString(h.Sum(nil))
}

func (c *responseCache) get(req *Request) (*Response, bool) {
	return c.lru.Get(c.key(req))
}

func (c *responseCache) put(req *Request, resp *Response) {
	c.lru.Add(c.key(req), resp)
}
