package analyzer

import "fmt"

// Level describes how well a score reads to a person.
type Level struct {
	Label   string `json:"label"`
	Message string `json:"message"`
}

// LevelFor maps a match score to its label and message.
func LevelFor(score int) Level {
	return Level{Label: levelLabel(score), Message: levelMessage(score)}
}

func levelLabel(score int) string {
	switch {
	case score >= 90:
		return "Excellent Match"
	case score >= 75:
		return "Strong Match"
	case score >= 60:
		return "Good Match"
	case score >= 40:
		return "Fair Match"
	case score > 0:
		return "Poor Match"
	default:
		return "No Match"
	}
}

func levelMessage(score int) string {
	switch {
	case score >= 75:
		return "Your resume is well-aligned with this job."
	case score >= 50:
		return "Your resume needs some adjustments."
	case score > 0:
		return "Significant improvements needed."
	default:
		return "Analyze your resume to see the match score."
	}
}

// Summary is the one-line outcome shown after an analysis completes.
func Summary(score int) string {
	if score >= 70 {
		return fmt.Sprintf("Match score: %d%%. Great job! Your resume matches well.", score)
	}
	return fmt.Sprintf("Match score: %d%%. We've identified some improvements.", score)
}
