package openinghours

import "sort"

// sortedPeriods returns a copy of the periods ordered by opening time.
// Zero-padded "HH:MM" strings order correctly under plain string comparison.
func sortedPeriods(periods []Period) []Period {
	sorted := make([]Period, len(periods))
	copy(sorted, periods)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Open < sorted[j].Open
	})
	return sorted
}

// IsTimeInPeriods reports whether current falls within any of the periods,
// inclusive on both ends: a period closing at 12:00 still counts as open at
// exactly 12:00. Overlapping periods behave as a simple union of open time.
func IsTimeInPeriods(current TimeOfDay, periods []Period) (bool, error) {
	currentMin, err := MinutesOfDay(current)
	if err != nil {
		return false, err
	}

	for _, p := range periods {
		openMin, err := MinutesOfDay(p.Open)
		if err != nil {
			return false, err
		}
		closeMin, err := MinutesOfDay(p.Close)
		if err != nil {
			return false, err
		}
		if currentMin >= openMin && currentMin <= closeMin {
			return true, nil
		}
	}
	return false, nil
}

// IsOpeningSoon reports whether the day has a period opening strictly after
// current and at most windowMinutes away. A period that is already open does
// not count as opening soon, and a closed day never opens soon.
func IsOpeningSoon(day DayHours, current TimeOfDay, windowMinutes int) (bool, error) {
	if !day.IsOpen {
		return false, nil
	}

	currentMin, err := MinutesOfDay(current)
	if err != nil {
		return false, err
	}

	for _, p := range day.Periods {
		openMin, err := MinutesOfDay(p.Open)
		if err != nil {
			return false, err
		}
		if openMin > currentMin && openMin <= currentMin+windowMinutes {
			return true, nil
		}
	}
	return false, nil
}

// MinutesUntilOpening returns the minutes until the earliest period opening
// strictly after current, or 0 when the day is closed or has no later period.
func MinutesUntilOpening(day DayHours, current TimeOfDay) (int, error) {
	if !day.IsOpen {
		return 0, nil
	}

	currentMin, err := MinutesOfDay(current)
	if err != nil {
		return 0, err
	}

	best := 0
	for _, p := range day.Periods {
		openMin, err := MinutesOfDay(p.Open)
		if err != nil {
			return 0, err
		}
		if openMin <= currentMin {
			continue
		}
		until := openMin - currentMin
		if best == 0 || until < best {
			best = until
		}
	}
	return best, nil
}

// CurrentAndNextPeriod resolves the period containing current (inclusive
// bounds, first match in opening-time order) and the earliest period opening
// strictly after current. Either or both may be nil; a closed day yields
// neither.
func CurrentAndNextPeriod(day DayHours, current TimeOfDay) (currentPeriod, nextPeriod *Period, err error) {
	if !day.IsOpen {
		return nil, nil, nil
	}

	currentMin, err := MinutesOfDay(current)
	if err != nil {
		return nil, nil, err
	}

	for _, p := range sortedPeriods(day.Periods) {
		openMin, err := MinutesOfDay(p.Open)
		if err != nil {
			return nil, nil, err
		}
		closeMin, err := MinutesOfDay(p.Close)
		if err != nil {
			return nil, nil, err
		}

		if currentPeriod == nil && currentMin >= openMin && currentMin <= closeMin {
			period := p
			currentPeriod = &period
		}
		if nextPeriod == nil && openMin > currentMin {
			period := p
			nextPeriod = &period
		}
	}
	return currentPeriod, nextPeriod, nil
}
