package solver

import (
	"context"
	"fmt"
	"math"
	"strconv"
)

// Time advances the simulation clock in fixed steps from StartTime to EndTime
type Time struct {
	Value         float64
	Index         int
	StartTime     float64
	DeltaT        float64
	EndTime       float64
	WriteInterval int // write every WriteInterval steps, 0 writes only the final time
}

// NewTime starts the clock at startTime, which is zero for a new run or a written time level on restart
func NewTime(startTime, deltaT, endTime float64, writeInterval int) (tm *Time, err error) {
	if deltaT <= 0 || math.IsNaN(deltaT) || math.IsInf(deltaT, 0) {
		err = fmt.Errorf("time step must be positive and finite, have %g", deltaT)
		return
	}
	if endTime < 0 || math.IsNaN(endTime) || math.IsInf(endTime, 0) {
		err = fmt.Errorf("end time must be non negative and finite, have %g", endTime)
		return
	}
	if startTime < 0 || startTime > endTime || math.IsNaN(startTime) {
		err = fmt.Errorf("start time must lie in [0, %g], have %g", endTime, startTime)
		return
	}
	tm = &Time{StartTime: startTime, DeltaT: deltaT, EndTime: endTime, WriteInterval: writeInterval}
	tm.Value = startTime
	if startTime == endTime {
		tm.Index = tm.NSteps()
		return
	}
	tm.Index = int(math.Round(startTime / deltaT))
	if math.Abs(float64(tm.Index)*deltaT-startTime) > 1e-6*deltaT {
		return nil, fmt.Errorf("start time %g is not a time level of step %g", startTime, deltaT)
	}
	return
}

// NSteps is the number of steps needed to reach EndTime, the last step is shortened to land on it
func (tm *Time) NSteps() int {
	n := int(math.Ceil(tm.EndTime/tm.DeltaT - 1e-9))
	if n < 0 {
		n = 0
	}
	return n
}

func (tm *Time) Running() bool {
	return tm.Index < tm.NSteps()
}

// Advance moves to the next time level
func (tm *Time) Advance() {
	tm.Index++
	if tm.Index >= tm.NSteps() {
		tm.Value = tm.EndTime
		return
	}
	tm.Value = float64(tm.Index) * tm.DeltaT
}

func (tm *Time) WriteTime() bool {
	if !tm.Running() {
		return true
	}
	return tm.WriteInterval > 0 && tm.Index%tm.WriteInterval == 0
}

// Name is the time directory name, with enough significant digits to tell neighbouring time levels apart
func (tm *Time) Name() string {
	return strconv.FormatFloat(tm.Value, 'g', tm.nameDigits(), 64)
}

func (tm *Time) nameDigits() (p int) {
	exponent := func(x float64) int { return int(math.Floor(math.Log10(x))) }
	p = 2 + exponent(math.Max(math.Abs(tm.EndTime), tm.DeltaT)) - exponent(tm.DeltaT)
	switch {
	case p < 6:
		p = 6
	case p > 17:
		p = 17
	}
	return
}

// Run calls step at every time level, including StartTime, until EndTime or until ctx is cancelled
func (tm *Time) Run(ctx context.Context, step func(tm *Time) error) (err error) {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err = step(tm); err != nil {
			return fmt.Errorf("step %d, time %s: %w", tm.Index, tm.Name(), err)
		}
		if !tm.Running() {
			return
		}
		tm.Advance()
	}
}
