package catalog

// Goldmine grading scale, best to worst.
const (
	ConditionMint         = "M"
	ConditionNearMint     = "NM"
	ConditionVeryGoodPlus = "VG+"
	ConditionVeryGood     = "VG"
	ConditionGoodPlus     = "G+"
	ConditionGood         = "G"
	ConditionFair         = "F"
	ConditionPoor         = "P"
)

// Release years accepted for a vinyl.
const (
	MinYear = 1900
	MaxYear = 2100
)

var Conditions = []string{
	ConditionMint,
	ConditionNearMint,
	ConditionVeryGoodPlus,
	ConditionVeryGood,
	ConditionGoodPlus,
	ConditionGood,
	ConditionFair,
	ConditionPoor,
}

func ValidCondition(c string) bool {
	for _, v := range Conditions {
		if v == c {
			return true
		}
	}
	return false
}

func ValidYear(y int) bool {
	return y >= MinYear && y <= MaxYear
}
