package opentdb

import "github.com/eliaath/triviahoard/internal/htmltext"

// Question is one trivia question as served by the API. Batches come out
// of the client with every field already unescaped.
type Question struct {
	Category         string   `json:"category"`
	Type             string   `json:"type"`
	Difficulty       string   `json:"difficulty"`
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

// unescaped returns a copy of q with HTML entities decoded in every field.
func (q Question) unescaped() Question {
	return Question{
		Category:         htmltext.UnescapeString(q.Category),
		Type:             htmltext.UnescapeString(q.Type),
		Difficulty:       htmltext.UnescapeString(q.Difficulty),
		Question:         htmltext.UnescapeString(q.Question),
		CorrectAnswer:    htmltext.UnescapeString(q.CorrectAnswer),
		IncorrectAnswers: htmltext.UnescapeStrings(q.IncorrectAnswers),
	}
}
