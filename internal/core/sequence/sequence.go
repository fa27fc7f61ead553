// Package sequence holds the ordered collection of timers and the pure
// operations on it. None of the functions modify the slice they are given;
// results that change anything are freshly allocated.
package sequence

import "github.com/cosmichound/multitimer/internal/core/timer"

// Sequence is an ordered list of timers, unique by ID
type Sequence []timer.Timer

// Insert places t at position. A nil position or one past the end appends,
// a position <= 0 prepends.
func Insert(seq Sequence, t timer.Timer, position *int) Sequence {
	out := make(Sequence, 0, len(seq)+1)
	switch {
	case position == nil || *position >= len(seq):
		out = append(out, seq...)
		out = append(out, t)
	case *position <= 0:
		out = append(out, t)
		out = append(out, seq...)
	default:
		out = append(out, seq[:*position]...)
		out = append(out, t)
		out = append(out, seq[*position:]...)
	}
	return out
}

// Remove drops the timer with the given id. The result is always a new slice.
func Remove(seq Sequence, id string) Sequence {
	out := make(Sequence, 0, len(seq))
	for _, t := range seq {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}

// MoveTo relocates the timer with id to newPosition. The input is returned
// untouched when the id is unknown, the position is outside [0, len) or the
// timer is already there.
func MoveTo(seq Sequence, id string, newPosition int) Sequence {
	from := IndexOf(seq, id)
	if from == -1 || newPosition < 0 || newPosition >= len(seq) || from == newPosition {
		return seq
	}

	moved := seq[from]
	out := make(Sequence, 0, len(seq))
	out = append(out, seq[:from]...)
	out = append(out, seq[from+1:]...)

	out = append(out, timer.Timer{})
	copy(out[newPosition+1:], out[newPosition:])
	out[newPosition] = moved
	return out
}

// Reorder returns the timers in the order given by ids. Unless ids is an
// exact permutation of the sequence's ids the input is returned untouched.
func Reorder(seq Sequence, ids []string) Sequence {
	if len(ids) != len(seq) {
		return seq
	}

	byID := make(map[string]timer.Timer, len(seq))
	for _, t := range seq {
		byID[t.ID] = t
	}

	seen := make(map[string]struct{}, len(ids))
	out := make(Sequence, 0, len(ids))
	for _, id := range ids {
		t, ok := byID[id]
		if !ok {
			return seq
		}
		if _, dup := seen[id]; dup {
			return seq
		}
		seen[id] = struct{}{}
		out = append(out, t)
	}
	return out
}

// NextAfter returns the timer following currentID. With no current id, or one
// that is not in the sequence, the first timer is returned. The boolean is
// false for an empty sequence or when currentID is the last timer.
func NextAfter(seq Sequence, currentID *string) (timer.Timer, bool) {
	if len(seq) == 0 {
		return timer.Timer{}, false
	}
	if currentID == nil {
		return seq[0], true
	}

	idx := IndexOf(seq, *currentID)
	if idx == -1 {
		return seq[0], true
	}
	if idx+1 < len(seq) {
		return seq[idx+1], true
	}
	return timer.Timer{}, false
}

// IndexOf returns the position of id, or -1
func IndexOf(seq Sequence, id string) int {
	for i, t := range seq {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Find returns the timer with id
func Find(seq Sequence, id string) (timer.Timer, bool) {
	if idx := IndexOf(seq, id); idx != -1 {
		return seq[idx], true
	}
	return timer.Timer{}, false
}

// Replace swaps in t for the element sharing its ID. Unknown IDs leave the
// input untouched.
func Replace(seq Sequence, t timer.Timer) Sequence {
	idx := IndexOf(seq, t.ID)
	if idx == -1 {
		return seq
	}
	out := make(Sequence, len(seq))
	copy(out, seq)
	out[idx] = t
	return out
}

// Map applies fn to every timer
func Map(seq Sequence, fn func(timer.Timer) timer.Timer) Sequence {
	out := make(Sequence, len(seq))
	for i, t := range seq {
		out[i] = fn(t)
	}
	return out
}

// IDs lists the timer ids in order
func IDs(seq Sequence) []string {
	ids := make([]string, len(seq))
	for i, t := range seq {
		ids[i] = t.ID
	}
	return ids
}
