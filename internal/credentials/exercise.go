package credentials

import "strings"

// Exercise is the self-reported exercise frequency on the account form.
type Exercise string

const (
	ExercisePlaceholder    Exercise = "placeholder"
	ExerciseFrequently     Exercise = "frequently"
	ExerciseOccasionally   Exercise = "occasionally"
	ExerciseRarely         Exercise = "rarely"
	ExerciseNever          Exercise = "never"
	ExercisePreferNotToSay Exercise = "prefer_not_to_say"
)

var exerciseLabels = map[Exercise]string{
	ExercisePlaceholder:    "Exercise Frequency",
	ExerciseFrequently:     "Frequently",
	ExerciseOccasionally:   "Occasionally",
	ExerciseRarely:         "Rarely",
	ExerciseNever:          "Never",
	ExercisePreferNotToSay: "Prefer not to say",
}

// ExerciseOptions lists the selector entries in display order, placeholder
// first.
func ExerciseOptions() []Exercise {
	return []Exercise{
		ExercisePlaceholder,
		ExerciseFrequently,
		ExerciseOccasionally,
		ExerciseRarely,
		ExerciseNever,
		ExercisePreferNotToSay,
	}
}

// ParseExercise maps a stored value to an option. Unknown values fall back to
// the placeholder.
func ParseExercise(s string) Exercise {
	e := Exercise(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := exerciseLabels[e]; ok {
		return e
	}
	return ExercisePlaceholder
}

func (e Exercise) Chosen() bool {
	_, known := exerciseLabels[e]
	return known && e != ExercisePlaceholder
}

func (e Exercise) Label() string {
	if l, ok := exerciseLabels[e]; ok {
		return l
	}
	return exerciseLabels[ExercisePlaceholder]
}

// Cycle moves delta steps through ExerciseOptions, wrapping around.
func (e Exercise) Cycle(delta int) Exercise {
	opts := ExerciseOptions()
	idx := 0
	for i, o := range opts {
		if o == e {
			idx = i
			break
		}
	}
	n := len(opts)
	return opts[((idx+delta)%n+n)%n]
}
