package status

import "sync/atomic"

// MaxStringLen bounds stored strings; phase names and labels fit well within it
const MaxStringLen = 20

// AtomicString is a string cell safe for one writer and many readers
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store replaces the value, truncated to MaxStringLen bytes
func (s *AtomicString) Store(val string) {
	if len(val) > MaxStringLen {
		val = val[:MaxStringLen]
	}
	s.ptr.Store(&val)
}

// Load returns the last stored value or ""
func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
