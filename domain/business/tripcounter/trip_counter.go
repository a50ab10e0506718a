package tripcounter

import (
	dataErrors "bikeshare/domain/errors"
	"fmt"
	"sort"
)

// TripCounter struct that counts the amount of trips for each distinct value of some field
// (station, hour, user type...). Values keep the order in which they were first seen, which
// is the order used to break ties.
// + counters: amount of trips per value
// + order: distinct values in first-seen order
// + total: amount of trips counted
type TripCounter[K comparable] struct {
	counters map[K]int
	order    []K
	total    int
}

// ValueCounter amount of trips of a single value
type ValueCounter[K comparable] struct {
	Value   K   `json:"value"`
	Counter int `json:"counter"`
}

func NewTripCounter[K comparable]() *TripCounter[K] {
	return &TripCounter[K]{
		counters: make(map[K]int),
	}
}

// NewTripCounterFrom counts every value of the slice
func NewTripCounterFrom[K comparable](values []K) *TripCounter[K] {
	tc := NewTripCounter[K]()
	for _, value := range values {
		tc.UpdateCounter(value)
	}
	return tc
}

func (tc *TripCounter[K]) UpdateCounter(value K) {
	if _, ok := tc.counters[value]; !ok {
		tc.order = append(tc.order, value)
	}
	tc.counters[value] += 1
	tc.total += 1
}

func (tc *TripCounter[K]) GetCounter(value K) int {
	return tc.counters[value]
}

// GetTotal returns the amount of trips counted
func (tc *TripCounter[K]) GetTotal() int {
	return tc.total
}

// GetDistinct returns the amount of distinct values
func (tc *TripCounter[K]) GetDistinct() int {
	return len(tc.order)
}

// Mode returns the value with the biggest counter. Among tied values the one seen first wins
func (tc *TripCounter[K]) Mode() (ValueCounter[K], error) {
	if tc.total == 0 {
		return ValueCounter[K]{}, fmt.Errorf("%w: cannot get mode, counter is zero", dataErrors.ErrEmptyResult)
	}

	mode := ValueCounter[K]{Value: tc.order[0], Counter: tc.counters[tc.order[0]]}
	for _, value := range tc.order[1:] {
		if counter := tc.counters[value]; counter > mode.Counter {
			mode = ValueCounter[K]{Value: value, Counter: counter}
		}
	}
	return mode, nil
}

// Counters returns every value with its counter, biggest counter first. Ties keep first-seen order
func (tc *TripCounter[K]) Counters() []ValueCounter[K] {
	result := make([]ValueCounter[K], 0, len(tc.order))
	for _, value := range tc.order {
		result = append(result, ValueCounter[K]{Value: value, Counter: tc.counters[value]})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Counter > result[j].Counter
	})
	return result
}
