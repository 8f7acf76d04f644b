package cue

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/kuku/internal/session"
)

// recordingOutput captures every played cue.
type recordingOutput struct {
	played []Event
	err    error
	closed bool
}

func (r *recordingOutput) Play(ev Event) error {
	r.played = append(r.played, ev)
	return r.err
}

func (r *recordingOutput) Close() error {
	r.closed = true
	return nil
}

func countingOpener(out Output, err error) (Opener, *int) {
	calls := 0
	return func() (Output, error) {
		calls++
		if err != nil {
			return nil, err
		}
		return out, nil
	}, &calls
}

func TestFor(t *testing.T) {
	tests := []struct {
		outcome session.Outcome
		want    Event
		ok      bool
	}{
		{session.OutcomeRevealed, Event{800, 100 * time.Millisecond}, true},
		{session.OutcomeNext, Event{600, 100 * time.Millisecond}, true},
		{session.OutcomeWrapped, Event{1200, 200 * time.Millisecond}, true},
		{session.OutcomeFinished, Event{}, false},
		{session.OutcomeNone, Event{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.outcome.String(), func(t *testing.T) {
			got, ok := For(tt.outcome)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNamed(t *testing.T) {
	ev, ok := Named("complete")
	require.True(t, ok)
	assert.Equal(t, Complete, ev)

	_, ok = Named("fanfare")
	assert.False(t, ok)
}

func TestDispatch_SoundDisabledNeverOpens(t *testing.T) {
	out := &recordingOutput{}
	open, calls := countingOpener(out, nil)
	d := NewDispatcher(open, nil)

	d.Dispatch(Reveal, false)
	d.Dispatch(Complete, false)

	assert.Equal(t, 0, *calls, "no audio resources should be acquired while muted")
	assert.Empty(t, out.played)
}

func TestDispatch_PlaysWhenEnabled(t *testing.T) {
	out := &recordingOutput{}
	open, calls := countingOpener(out, nil)
	d := NewDispatcher(open, nil)

	d.Dispatch(Reveal, true)
	d.Dispatch(Next, true)
	d.Dispatch(Complete, false)

	assert.Equal(t, 1, *calls)
	assert.Equal(t, []Event{Reveal, Next}, out.played)
}

func TestDispatch_OpenFailureIsSilentAndNotRetried(t *testing.T) {
	open, calls := countingOpener(nil, errors.New("no device"))
	d := NewDispatcher(open, nil)

	assert.NotPanics(t, func() {
		d.Dispatch(Reveal, true)
		d.Dispatch(Next, true)
	})
	assert.Equal(t, 1, *calls)
}

func TestDispatch_PlayErrorSwallowed(t *testing.T) {
	out := &recordingOutput{err: errors.New("underrun")}
	open, _ := countingOpener(out, nil)
	d := NewDispatcher(open, nil)

	assert.NotPanics(t, func() { d.Dispatch(Reveal, true) })
	assert.Len(t, out.played, 1)
}

func TestDispatch_NilOpener(t *testing.T) {
	d := NewDispatcher(nil, nil)
	assert.NotPanics(t, func() { d.Dispatch(Reveal, true) })
}

func TestClose(t *testing.T) {
	out := &recordingOutput{}
	open, _ := countingOpener(out, nil)
	d := NewDispatcher(open, nil)

	require.NoError(t, d.Close(), "closing before any output is opened")

	d.Dispatch(Reveal, true)
	require.NoError(t, d.Close())
	assert.True(t, out.closed)
}
