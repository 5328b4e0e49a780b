package metrics

import (
	"sync/atomic"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	UsersSignedUp       uint64
	UsersLoggedIn       uint64
	LoginsRejected      uint64
	ReviewsSubmitted    uint64
	ReviewSamplesServed uint64
	OrdersConfirmed     uint64
	MailDispatchCount   uint64
	MailDispatchTotalNs int64
}

// InMemoryRecorder stores metrics in memory for tests.
type InMemoryRecorder struct {
	usersSignedUp       uint64
	usersLoggedIn       uint64
	loginsRejected      uint64
	reviewsSubmitted    uint64
	reviewSamplesServed uint64
	ordersConfirmed     uint64
	mailDispatchCount   uint64
	mailDispatchTotalNs int64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		UsersSignedUp:       atomic.LoadUint64(&m.usersSignedUp),
		UsersLoggedIn:       atomic.LoadUint64(&m.usersLoggedIn),
		LoginsRejected:      atomic.LoadUint64(&m.loginsRejected),
		ReviewsSubmitted:    atomic.LoadUint64(&m.reviewsSubmitted),
		ReviewSamplesServed: atomic.LoadUint64(&m.reviewSamplesServed),
		OrdersConfirmed:     atomic.LoadUint64(&m.ordersConfirmed),
		MailDispatchCount:   atomic.LoadUint64(&m.mailDispatchCount),
		MailDispatchTotalNs: atomic.LoadInt64(&m.mailDispatchTotalNs),
	}
}

// IncUserSignedUp increments the signup counter.
func (m *InMemoryRecorder) IncUserSignedUp() {
	atomic.AddUint64(&m.usersSignedUp, 1)
}

// IncUserLoggedIn increments the successful login counter.
func (m *InMemoryRecorder) IncUserLoggedIn() {
	atomic.AddUint64(&m.usersLoggedIn, 1)
}

// IncLoginRejected increments the rejected login counter.
func (m *InMemoryRecorder) IncLoginRejected() {
	atomic.AddUint64(&m.loginsRejected, 1)
}

// IncReviewSubmitted increments the review submission counter.
func (m *InMemoryRecorder) IncReviewSubmitted() {
	atomic.AddUint64(&m.reviewsSubmitted, 1)
}

// IncReviewSampleServed increments the review sample counter.
func (m *InMemoryRecorder) IncReviewSampleServed() {
	atomic.AddUint64(&m.reviewSamplesServed, 1)
}

// IncOrderConfirmed increments the confirmed order counter.
func (m *InMemoryRecorder) IncOrderConfirmed() {
	atomic.AddUint64(&m.ordersConfirmed, 1)
}

// ObserveMailDispatchDuration records one mail dispatch duration.
func (m *InMemoryRecorder) ObserveMailDispatchDuration(duration time.Duration) {
	atomic.AddUint64(&m.mailDispatchCount, 1)
	atomic.AddInt64(&m.mailDispatchTotalNs, duration.Nanoseconds())
}
