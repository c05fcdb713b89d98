package streak

// Stats is the snapshot achievements are evaluated against.
type Stats struct {
	TotalReads       int
	CurrentStreak    int
	SavedFromReading int
	HasCustomPattern bool
	UniquePsalmsRead int
}

// Achievement pairs an id with its unlock predicate. Predicates are
// independent of one another, so evaluation order does not matter.
type Achievement struct {
	ID    string
	Title string
	Check func(Stats) bool
}

var achievements = []Achievement{
	{"first-read", "Первое чтение", func(s Stats) bool { return s.TotalReads >= 1 }},
	{"week-streak", "Неделя подряд", func(s Stats) bool { return s.CurrentStreak >= 7 }},
	{"month-streak", "Месяц подряд", func(s Stats) bool { return s.CurrentStreak >= 30 }},
	{"faithful-hundred", "Сто чтений", func(s Stats) bool { return s.TotalReads >= 100 }},
	{"verse-collector", "Собиратель стихов", func(s Stats) bool { return s.SavedFromReading >= 10 }},
	{"pattern-seeker", "Свой путь", func(s Stats) bool { return s.HasCustomPattern }},
	{"psalm-explorer", "Знаток псалмов", func(s Stats) bool { return s.UniquePsalmsRead >= 50 }},
}

// Achievements returns the fixed achievement table.
func Achievements() []Achievement {
	out := make([]Achievement, len(achievements))
	copy(out, achievements)
	return out
}

// Unlock evaluates all predicates against stats and returns the ids
// that are newly true and not yet recorded in already. Calling it again
// with the updated set returns nothing, so unlocks happen exactly once.
func Unlock(stats Stats, already map[string]bool) []string {
	var unlocked []string
	for _, a := range achievements {
		if already[a.ID] {
			continue
		}
		if a.Check(stats) {
			unlocked = append(unlocked, a.ID)
		}
	}
	return unlocked
}
