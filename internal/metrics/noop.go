package metrics

import "time"

// NoopRecorder discards all metric events.
type NoopRecorder struct{}

// NewNoop returns a Recorder that does nothing.
func NewNoop() *NoopRecorder {
	return &NoopRecorder{}
}

func (NoopRecorder) IncUserSignedUp()                                  {}
func (NoopRecorder) IncUserLoggedIn()                                  {}
func (NoopRecorder) IncLoginRejected()                                 {}
func (NoopRecorder) IncReviewSubmitted()                               {}
func (NoopRecorder) IncReviewSampleServed()                            {}
func (NoopRecorder) IncOrderConfirmed()                                {}
func (NoopRecorder) ObserveMailDispatchDuration(duration time.Duration) {}
