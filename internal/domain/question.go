package domain

// OptionsPerQuestion is the number of candidate answers every question carries.
const OptionsPerQuestion = 4

// Question is a single multiple-choice prompt. CorrectAnswer is a 0-based
// index into Options.
type Question struct {
	Text          string   `json:"text" validate:"required,notblank"`
	Options       []string `json:"options" validate:"len=4,dive,required,notblank"`
	CorrectAnswer int      `json:"correctAnswer" validate:"min=0,max=3"`
	Hash          string   `json:"hash,omitempty"`
}
