package tracing

import (
	"fmt"

	"github.com/sarchlab/ccd/datarecording"
)

// SampleTableName is the table that SampleRecorder writes to.
const SampleTableName = "toi_samples"

type sampleEntry struct {
	Query      string
	Index      int
	Time       float32
	Separation float32
}

// SampleRecorder records the separations sampled by time-of-impact searches.
// It implements collision.Probe.
type SampleRecorder struct {
	recorder datarecording.DataRecorder
	query    string
	index    int
	err      error
}

// NewSampleRecorder creates the sample table and returns the recorder.
func NewSampleRecorder(
	recorder datarecording.DataRecorder,
) (*SampleRecorder, error) {
	if err := recorder.CreateTable(SampleTableName, sampleEntry{}); err != nil {
		return nil, err
	}

	return &SampleRecorder{recorder: recorder}, nil
}

// BeginQuery labels the samples that follow.
func (r *SampleRecorder) BeginQuery(label string) {
	r.query = label
	r.index = 0
}

// Err returns the first error met while recording.
func (r *SampleRecorder) Err() error {
	return r.err
}

// Sample records one sample of the current query.
func (r *SampleRecorder) Sample(t, separation float32) {
	err := r.recorder.InsertData(SampleTableName, sampleEntry{
		Query:      r.query,
		Index:      r.index,
		Time:       t,
		Separation: separation,
	})
	if err != nil && r.err == nil {
		r.err = fmt.Errorf("tracing: record sample of %s: %w", r.query, err)
	}

	r.index++
}
