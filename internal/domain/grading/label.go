package grading

// Grade tier labels.
const (
	LabelElite        = "Elite"
	LabelPlus         = "Plus"
	LabelAboveAverage = "Above Average"
	LabelAverage      = "Average"
	LabelBelowAverage = "Below Average"
	LabelPoor         = "Poor"
)

// Label names the tier of grade.
func Label(grade int) string {
	switch {
	case grade >= 80:
		return LabelElite
	case grade >= 70:
		return LabelPlus
	case grade >= 60:
		return LabelAboveAverage
	case grade >= 50:
		return LabelAverage
	case grade >= 40:
		return LabelBelowAverage
	default:
		return LabelPoor
	}
}

// Strength and weakness cut lines for category grades.
const (
	StrengthGrade = 70
	WeaknessGrade = 45
)

// IsStrength reports a category grade worth calling out.
func IsStrength(grade int) bool { return grade >= StrengthGrade }

// IsWeakness reports a category grade that needs work.
func IsWeakness(grade int) bool { return grade < WeaknessGrade }
