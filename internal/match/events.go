package match

import (
	"github.com/jstittsworth/soccer-sim/internal/model"
	"github.com/jstittsworth/soccer-sim/internal/tactics"
)

// shotEvent runs one side's shot sub-event for the minute (spec.md §4.4).
// isHome adds the 0.02 home advantage before clamping p_shot.
func shotEvent(side, opp *model.TeamMatchState, isHome bool) {
	sumAg := 0.0
	for i := range side.Slots {
		if side.Slots[i].Active {
			sumAg += float64(side.Slots[i].Ag)
		}
	}
	sumShm, sumPsm := sumActiveField(side, fieldShm), sumActiveField(side, fieldPsm)
	sumOppTkm := sumActiveField(opp, fieldTkm)

	ratio := (sumShm + 2*sumPsm) / 3 / (sumOppTkm + 1)
	pShot := 1.8 * (sumAg/500000 + 0.08*ratio*ratio)
	if isHome {
		pShot += 0.02
	}
	pShot = clamp01(pShot)

	if !bernoulli(side.RNG, pShot) {
		return
	}

	shooterIdx := sampleActiveWeighted(side, fieldShm, -1)
	if shooterIdx < 0 {
		return
	}
	shooter := &side.Slots[shooterIdx]

	passerIdx := -1
	if bernoulli(side.RNG, 0.75) {
		passerIdx = sampleActiveWeighted(side, fieldPsm, shooterIdx)
		if passerIdx >= 0 && side.Slots[passerIdx].Pos.Side() != shooter.Pos.Side() {
			passerIdx = sampleActiveWeighted(side, fieldPsm, shooterIdx)
		}
		if passerIdx >= 0 {
			side.Slots[passerIdx].Kps++
		}
	}

	pTackle := clamp01(0.4 * 3 * sumOppTkm / (2*sumPsm + sumShm))
	if bernoulli(side.RNG, pTackle) {
		tacklerIdx := sampleActiveWeighted(opp, fieldTkm, -1)
		if tacklerIdx >= 0 {
			opp.Slots[tacklerIdx].Ktk++
		}
		return
	}

	shooter.Sht++

	onTarget := bernoulli(side.RNG, 0.58*shooter.Fatigue)
	if !onTarget {
		return
	}

	var oppGkSt int16
	if opp.Gk >= 0 {
		oppGkSt = opp.Slots[opp.Gk].St
	}
	pGoal := clamp(0.02*float64(shooter.Sh)*shooter.Fatigue-0.02*float64(oppGkSt)+0.35, 0.1, 0.9)

	if bernoulli(side.RNG, pGoal) {
		if bernoulli(side.RNG, 0.95) {
			shooter.Gls++
			if passerIdx >= 0 {
				side.Slots[passerIdx].Ass++
			}
		}
		return
	}

	if opp.Gk >= 0 {
		opp.Slots[opp.Gk].Sav++
	}
}

// foulEvent runs one side's foul/card/penalty sub-event (spec.md §4.4).
func foulEvent(side, opp *model.TeamMatchState) {
	sumAg := sumActiveAg(side)
	pFoul := clamp01(0.75 * sumAg / 10000)
	if !bernoulli(side.RNG, pFoul) {
		return
	}

	foulerIdx := sampleActiveWeightedAg(side, -1)
	if foulerIdx < 0 {
		return
	}
	fouler := &side.Slots[foulerIdx]

	isGK := fouler.Pos.Group() == model.GK

	if bernoulli(side.RNG, 0.6) {
		fouler.Yellow++
		if fouler.Yellow >= 2 {
			fouler.Active = false
		}
	} else if bernoulli(side.RNG, 0.04) {
		fouler.Red = true
		fouler.Active = false
	}

	if isGK || bernoulli(side.RNG, 0.05) {
		takerIdx := opp.Pk
		if takerIdx < 0 || takerIdx >= model.NLineup || !opp.Slots[takerIdx].Active {
			takerIdx = argmaxShFat(opp)
		}
		if takerIdx < 0 {
			return
		}
		taker := &opp.Slots[takerIdx]
		var keeperSt int16
		if side.Gk >= 0 {
			keeperSt = side.Slots[side.Gk].St
		}
		pPk := clamp01(0.8 + 0.01*(float64(taker.Sh)-float64(keeperSt)))
		if bernoulli(side.RNG, pPk) {
			taker.Gls++
		}
	}
}

// injuryEvent runs one side's injury sub-event, triggering the
// substitution state machine on the victim (spec.md §4.4).
func injuryEvent(side, opp *model.TeamMatchState, table *tactics.Table) {
	sumOppAg := sumActiveAg(opp)
	pInj := clamp01(0.15 * sumOppAg / 50000)
	if !bernoulli(side.RNG, pInj) {
		return
	}

	victimIdx := sampleActiveUniform(side)
	if victimIdx < 0 {
		return
	}
	victim := &side.Slots[victimIdx]
	victim.Active = false
	victim.Injured = true

	substitute(side, opp, victimIdx, table)
}

func sumActiveAg(ms *model.TeamMatchState) float64 {
	sum := 0.0
	for i := range ms.Slots {
		if ms.Slots[i].Active {
			sum += float64(ms.Slots[i].Ag)
		}
	}
	return sum
}

func argmaxShFat(ms *model.TeamMatchState) int {
	best := -1
	bestScore := -1.0
	for i := range ms.Slots {
		if !ms.Slots[i].Active {
			continue
		}
		score := float64(ms.Slots[i].Sh) * ms.Slots[i].Fatigue
		if score > bestScore {
			bestScore = score
			best = i
		}
	}
	return best
}
