package sand

// PourResult captures telemetry from a deterministic pour-and-settle run.
type PourResult struct {
	// Poured is the number of grains that entered the grid. Deposits onto a
	// still-occupied spout cell are dropped, so this can be below the
	// number of pour ticks.
	Poured int
	// Grains is the occupied cell count at the end of the run.
	Grains int
	// SettleStep is the number of ticks after pouring stopped until a tick
	// moved nothing, or -1 when the pile was still moving at the step limit.
	SettleStep int
	// PeakHeight is the tallest column in cells.
	PeakHeight int
	// Footprint is the number of columns holding at least one grain.
	Footprint int
	// StepsSimulated counts every tick executed, pouring included.
	StepsSimulated int
}

// PourAndSettle drops one grain per tick at the top centre of an empty grid
// for pourTicks ticks, then keeps stepping until the pile comes to rest or
// maxSteps further ticks have run.
func PourAndSettle(cfg Config, pourTicks, maxSteps int) (PourResult, error) {
	e, err := NewWithConfig(cfg)
	if err != nil {
		return PourResult{}, err
	}
	e.Reset(0)

	result := PourResult{SettleStep: -1}
	spout := cfg.Width / 2
	for t := 0; t < pourTicks; t++ {
		n := e.Grains()
		e.Deposit(0, spout)
		if e.Grains() > n {
			result.Poured++
		}
		e.Step()
		result.StepsSimulated++
	}
	for s := 0; s < maxSteps; s++ {
		e.Step()
		result.StepsSimulated++
		if e.Settled() {
			result.SettleStep = s + 1
			break
		}
	}

	result.Grains = e.Grains()
	result.PeakHeight, result.Footprint = pileShape(e)
	return result, nil
}

func pileShape(e *Engine) (peak, footprint int) {
	size := e.Size()
	cells := e.Cells()
	for col := 0; col < size.W; col++ {
		for row := 0; row < size.H; row++ {
			if cells[row*size.W+col] != displaySand {
				continue
			}
			if height := size.H - row; height > peak {
				peak = height
			}
			footprint++
			break
		}
	}
	return peak, footprint
}
