package dto

// PostQuestionRequest serves both POST /questions modes: a non-empty
// SearchTerm selects the search path, otherwise the payload is a new question.
type PostQuestionRequest struct {
	SearchTerm string `json:"searchTerm"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   uint   `json:"category"`
	Difficulty int    `json:"difficulty"`
}

type QuizCategory struct {
	ID uint `json:"id"`
}

type QuizRequest struct {
	PreviousQuestions []uint       `json:"previous_questions"`
	QuizCategory      QuizCategory `json:"quiz_category"`
}
